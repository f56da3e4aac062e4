package analyzer

import "github.com/depscope/depscope/errdefs"

// Config holds analyzer options. Zero values are filled in by
// DefaultConfig; Validate runs at construction and fails fast on
// out-of-range fields.
type Config struct {
	// IncludeNodeModules adds external module specifiers as graph nodes.
	IncludeNodeModules bool `yaml:"includeNodeModules"`

	// FollowSymlinks descends into symlinked directories during discovery.
	FollowSymlinks bool `yaml:"followSymlinks"`

	// MaxDepth bounds directory traversal depth relative to the root.
	MaxDepth int `yaml:"maxDepth"`

	// IncludePatterns selects candidate files; a file must match at least
	// one. ExcludePatterns wins over IncludePatterns.
	IncludePatterns []string `yaml:"includePatterns"`
	ExcludePatterns []string `yaml:"excludePatterns"`

	// Concurrency is the analysis group size for AnalyzeProject. Each group
	// runs concurrently and is fully awaited before the next begins.
	Concurrency int `yaml:"concurrency"`

	// Extensions is the probe order when resolving extensionless relative
	// imports against the disk.
	Extensions []string `yaml:"extensions"`

	// Aliases maps import-path prefixes to project directories, resolved by
	// longest-prefix match ("@app" -> "src").
	Aliases map[string]string `yaml:"aliases"`

	// CacheSize bounds the per-file dependency cache. Evicted files are
	// simply re-analyzed on next request.
	CacheSize int `yaml:"cacheSize"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:        10,
		IncludePatterns: []string{"*.ts", "*.tsx", "*.js", "*.jsx", "*.go"},
		ExcludePatterns: []string{"node_modules", ".git", "dist", "build", "vendor"},
		Concurrency:     4,
		Extensions:      []string{".ts", ".tsx", ".js", ".jsx"},
		CacheSize:       4096,
	}
}

// Validate checks option ranges.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return errdefs.Validationf("concurrency must be >= 1, got %d", c.Concurrency)
	}
	if c.MaxDepth < 1 {
		return errdefs.Validationf("maxDepth must be >= 1, got %d", c.MaxDepth)
	}
	if c.CacheSize < 1 {
		return errdefs.Validationf("cacheSize must be >= 1, got %d", c.CacheSize)
	}
	if len(c.IncludePatterns) == 0 {
		return errdefs.Validationf("at least one include pattern is required")
	}
	return nil
}
