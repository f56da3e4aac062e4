// Package analyzer builds and incrementally maintains a file dependency
// graph. It reads files through a filesystem collaborator, obtains raw
// imports from an injected Extractor, resolves them to graph edges, and
// answers impact and statistics queries.
package analyzer

import (
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/depscope/depscope/cycles"
	"github.com/depscope/depscope/depgraph"
	"github.com/depscope/depscope/errdefs"
	"github.com/depscope/depscope/fsio"
)

// Analyzer owns one dependency graph instance and a per-file cache keyed by
// modification time. All graph and cache mutation happens under one coarse
// lock; edge-list clear-and-rebuild is not safely splittable into finer
// locks.
type Analyzer struct {
	cfg       Config
	fs        fsio.FileSystem
	extractor Extractor
	log       *logrus.Logger

	mu    sync.Mutex
	graph *depgraph.Graph
	cache *lru.Cache[string, *FileDependencies]
}

// New creates an Analyzer. The extractor and filesystem are required
// collaborators; a nil logger falls back to the logrus default.
func New(cfg Config, fileSystem fsio.FileSystem, extractor Extractor, log *logrus.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fileSystem == nil {
		return nil, errdefs.Validationf("filesystem is required")
	}
	if extractor == nil {
		return nil, errdefs.Validationf("extractor is required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	cache, err := lru.New[string, *FileDependencies](cfg.CacheSize)
	if err != nil {
		return nil, errdefs.Validationf("cache setup failed: %v", err)
	}

	return &Analyzer{
		cfg:       cfg,
		fs:        fileSystem,
		extractor: extractor,
		log:       log,
		graph:     depgraph.NewGraph(),
		cache:     cache,
	}, nil
}

// AnalyzeFile analyzes one file, serving from cache when the file has not
// been modified since the cached entry was produced. On a miss the file's
// entire outgoing edge set is cleared and rebuilt from the fresh dependency
// list, so stale edges can never survive a re-analysis.
func (a *Analyzer) AnalyzeFile(path string) (*FileDependencies, error) {
	normalized, err := a.normalizePath(path)
	if err != nil {
		return nil, err
	}

	info, err := a.fs.Stat(normalized)
	if err != nil {
		return nil, errdefs.NotFoundf("file %s: %v", normalized, err)
	}
	if info.IsDir() {
		return nil, errdefs.Validationf("%s is a directory, not a file", normalized)
	}

	a.mu.Lock()
	if entry, ok := a.cache.Get(normalized); ok {
		// Valid iff the on-disk mtime does not exceed the cached timestamp.
		if !info.ModTime().After(entry.LastModified) {
			a.mu.Unlock()
			return entry, nil
		}
		a.cache.Remove(normalized)
	}
	a.mu.Unlock()

	content, readErr := a.fs.ReadFile(normalized)

	var deps []Dependency
	if readErr != nil {
		a.log.WithFields(logrus.Fields{"file": normalized, "error": readErr}).
			Warn("read failed, recording file with no dependencies")
	} else {
		raws, extractErr := a.extractor.Extract(content, normalized)
		if extractErr != nil {
			// Malformed content degrades to an empty dependency list.
			a.log.WithFields(logrus.Fields{"file": normalized, "error": extractErr}).
				Warn("extraction failed, recording file with no dependencies")
		} else {
			deps = a.resolveAll(normalized, raws)
		}
	}

	result := &FileDependencies{
		FilePath:     normalized,
		Dependencies: deps,
		LastModified: info.ModTime(),
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.cache.Add(normalized, result)
	a.graph.AddNode(normalized)
	a.graph.ClearDependencies(normalized)
	for _, dep := range deps {
		if dep.IsExternal && !a.cfg.IncludeNodeModules {
			continue
		}
		a.graph.AddDependencyKind(normalized, dep.Path, dep.Kind)
	}

	return result, nil
}

// InvalidateFile drops a file's cache entry, forcing re-analysis on the next
// request. The graph keeps its current edges until then.
func (a *Analyzer) InvalidateFile(path string) {
	normalized, err := a.normalizePath(path)
	if err != nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cache.Remove(normalized)
}

// RemoveFile deletes a file from cache and graph, removing every edge that
// touches it.
func (a *Analyzer) RemoveFile(path string) {
	normalized, err := a.normalizePath(path)
	if err != nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cache.Remove(normalized)
	a.graph.RemoveNode(normalized)
}

// GetDependencies returns the direct dependencies of path.
func (a *Analyzer) GetDependencies(path string) []string {
	return a.delegate(path, func(g *depgraph.Graph, p string) []string { return g.Dependencies(p) })
}

// GetDependents returns the direct dependents of path.
func (a *Analyzer) GetDependents(path string) []string {
	return a.delegate(path, func(g *depgraph.Graph, p string) []string { return g.Dependents(p) })
}

// GetTransitiveDependencies returns everything path depends on, transitively.
func (a *Analyzer) GetTransitiveDependencies(path string) []string {
	return a.delegate(path, func(g *depgraph.Graph, p string) []string { return g.TransitiveDependencies(p) })
}

// GetTransitiveDependents returns everything that depends on path, transitively.
func (a *Analyzer) GetTransitiveDependents(path string) []string {
	return a.delegate(path, func(g *depgraph.Graph, p string) []string { return g.TransitiveDependents(p) })
}

// GetImpactedFiles is the set of files that would be affected by a change to
// path: its transitive dependents.
func (a *Analyzer) GetImpactedFiles(path string) []string {
	return a.GetTransitiveDependents(path)
}

// GraphSnapshot returns a serializable snapshot of the current graph.
func (a *Analyzer) GraphSnapshot() depgraph.SerializedGraph {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.graph.Snapshot()
}

// DetectCycles runs cycle detection over a snapshot of the current graph.
func (a *Analyzer) DetectCycles(opts cycles.Options) ([]cycles.Cycle, error) {
	a.mu.Lock()
	snapshot, err := a.graph.Clone()
	a.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return cycles.DetectCycles(snapshot, opts)
}

func (a *Analyzer) delegate(path string, query func(*depgraph.Graph, string) []string) []string {
	normalized, err := a.normalizePath(path)
	if err != nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return query(a.graph, normalized)
}

func (a *Analyzer) normalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errdefs.Validationf("path must not be blank")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errdefs.Validationf("cannot normalize path %q: %v", path, err)
	}
	return filepath.Clean(abs), nil
}
