package analyzer

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/depscope/depscope/depgraph"
)

// resolveAll maps raw import statements to resolved dependencies.
func (a *Analyzer) resolveAll(fromFile string, raws []RawImport) []Dependency {
	seen := make(map[string]bool, len(raws))
	deps := make([]Dependency, 0, len(raws))

	for _, raw := range raws {
		if raw.Path == "" {
			continue
		}
		dep := a.resolveImport(fromFile, raw)
		if seen[dep.Path] {
			continue
		}
		seen[dep.Path] = true
		deps = append(deps, dep)
	}
	return deps
}

// resolveImport applies the path resolution policy:
//   - relative imports resolve against the importing file's directory,
//     probing candidate extensions until one exists on disk, falling back to
//     the literal resolved path;
//   - alias imports resolve by longest-prefix match against the alias table,
//     then behave like relative imports;
//   - everything else is an external module.
func (a *Analyzer) resolveImport(fromFile string, raw RawImport) Dependency {
	kind := depgraph.KindImport
	if raw.Dynamic {
		kind = depgraph.KindRequire
	}

	if isRelativeImport(raw.Path) {
		base := filepath.Clean(filepath.Join(filepath.Dir(fromFile), raw.Path))
		return Dependency{
			Path:            a.probe(base),
			Kind:            kind,
			IsRelative:      true,
			ImportedSymbols: raw.Symbols,
		}
	}

	if target, ok := a.resolveAlias(raw.Path); ok {
		return Dependency{
			Path:            a.probe(target),
			Kind:            kind,
			ImportedSymbols: raw.Symbols,
		}
	}

	return Dependency{
		Path:            raw.Path,
		Kind:            kind,
		IsExternal:      true,
		ImportedSymbols: raw.Symbols,
	}
}

// probe finds the on-disk file a resolved import refers to. The literal path
// wins when it exists; otherwise candidate extensions are tried in
// configured order, then index files inside a directory of that name. When
// nothing matches the unresolved literal path is returned.
func (a *Analyzer) probe(base string) string {
	if a.fileExists(base) {
		return base
	}

	for _, ext := range a.cfg.Extensions {
		if candidate := base + ext; a.fileExists(candidate) {
			return candidate
		}
	}

	for _, ext := range a.cfg.Extensions {
		if candidate := filepath.Join(base, "index"+ext); a.fileExists(candidate) {
			return candidate
		}
	}

	return base
}

func (a *Analyzer) fileExists(path string) bool {
	info, err := a.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// resolveAlias matches the import against the alias table, longest prefix
// first, and returns the aliased filesystem path.
func (a *Analyzer) resolveAlias(importPath string) (string, bool) {
	if len(a.cfg.Aliases) == 0 {
		return "", false
	}

	prefixes := make([]string, 0, len(a.cfg.Aliases))
	for prefix := range a.cfg.Aliases {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })

	for _, prefix := range prefixes {
		if importPath == prefix {
			return a.cfg.Aliases[prefix], true
		}
		if strings.HasPrefix(importPath, prefix+"/") {
			rest := strings.TrimPrefix(importPath, prefix+"/")
			return filepath.Join(a.cfg.Aliases[prefix], rest), true
		}
	}
	return "", false
}

func isRelativeImport(importPath string) bool {
	return importPath == "." || importPath == ".." ||
		strings.HasPrefix(importPath, "./") || strings.HasPrefix(importPath, "../")
}
