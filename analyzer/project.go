package analyzer

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/depscope/depscope/errdefs"
)

// AnalyzeProject discovers candidate files under root and analyzes them in
// bounded-size groups: each group's files run concurrently and the group is
// fully awaited before the next one starts, bounding simultaneous I/O. A
// root that is itself a file analyzes just that file. One file's failure
// never aborts the whole traversal.
func (a *Analyzer) AnalyzeProject(ctx context.Context, root string) (*ProjectDependencies, error) {
	normalized, err := a.normalizePath(root)
	if err != nil {
		return nil, err
	}

	info, err := a.fs.Stat(normalized)
	if err != nil {
		return nil, errdefs.NotFoundf("project root %s: %v", normalized, err)
	}

	var candidates []string
	if info.IsDir() {
		candidates = a.discover(normalized)
	} else {
		candidates = []string{normalized}
	}

	project := &ProjectDependencies{
		ID:         uuid.NewString(),
		Root:       normalized,
		Files:      make(map[string]*FileDependencies, len(candidates)),
		AnalyzedAt: time.Now().UTC(),
	}

	var resultMu sync.Mutex
	groupSize := a.cfg.Concurrency

	for start := 0; start < len(candidates); start += groupSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + groupSize
		if end > len(candidates) {
			end = len(candidates)
		}

		eg, _ := errgroup.WithContext(ctx)
		for _, path := range candidates[start:end] {
			path := path
			eg.Go(func() error {
				deps, err := a.AnalyzeFile(path)
				if err != nil {
					a.log.WithFields(logrus.Fields{"file": path, "error": err}).
						Warn("skipping file")
					return nil
				}
				resultMu.Lock()
				project.Files[deps.FilePath] = deps
				resultMu.Unlock()
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	a.log.WithFields(logrus.Fields{
		"root":  normalized,
		"files": len(project.Files),
	}).Info("project analysis complete")

	return project, nil
}

// discover walks the tree iteratively, honoring include/exclude patterns,
// the depth bound, and the symlink setting. Unreadable directories are
// logged and skipped.
func (a *Analyzer) discover(root string) []string {
	type dirFrame struct {
		path  string
		depth int
	}

	var files []string
	stack := []dirFrame{{path: root, depth: 0}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := a.fs.ReadDir(frame.path)
		if err != nil {
			a.log.WithFields(logrus.Fields{"dir": frame.path, "error": err}).
				Warn("skipping unreadable directory")
			continue
		}

		for _, entry := range entries {
			fullPath := filepath.Join(frame.path, entry.Name())
			rel, relErr := filepath.Rel(root, fullPath)
			if relErr != nil {
				rel = entry.Name()
			}

			if entry.IsDir() {
				if frame.depth+1 >= a.cfg.MaxDepth {
					continue
				}
				if a.excluded(rel, entry.Name()) {
					continue
				}
				if !a.cfg.FollowSymlinks && a.isSymlink(entry, fullPath) {
					continue
				}
				stack = append(stack, dirFrame{path: fullPath, depth: frame.depth + 1})
				continue
			}

			if a.excluded(rel, entry.Name()) {
				continue
			}
			if a.included(rel, entry.Name()) {
				files = append(files, fullPath)
			}
		}
	}

	sort.Strings(files)
	return files
}

func (a *Analyzer) excluded(rel, base string) bool {
	for _, pattern := range a.cfg.ExcludePatterns {
		if matchPattern(pattern, rel, base) {
			return true
		}
	}
	return false
}

func (a *Analyzer) included(rel, base string) bool {
	for _, pattern := range a.cfg.IncludePatterns {
		if matchPattern(pattern, rel, base) {
			return true
		}
	}
	return false
}

func (a *Analyzer) isSymlink(entry fs.DirEntry, fullPath string) bool {
	if entry.Type()&fs.ModeSymlink != 0 {
		return true
	}
	lstater, ok := a.fs.(interface {
		Lstat(path string) (fs.FileInfo, error)
	})
	if !ok {
		return false
	}
	info, err := lstater.Lstat(fullPath)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}
