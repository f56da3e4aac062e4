package analyzer

import (
	"time"

	"github.com/depscope/depscope/depgraph"
)

// RawImport is a single import statement as reported by an Extractor:
// the literal path string, whether it was expressed dynamically, and any
// named symbols the statement pulls in.
type RawImport struct {
	Path    string
	Dynamic bool
	Symbols []string
}

// Extractor turns file content into raw import statements. Implementations
// are per source language and injected into the Analyzer; the analyzer has
// no knowledge of any language grammar.
type Extractor interface {
	Extract(content []byte, filePath string) ([]RawImport, error)
}

// Dependency is one resolved import of a file.
type Dependency struct {
	// Path is the resolved absolute path for project files, or the literal
	// module specifier for external modules.
	Path string `json:"path"`

	Kind depgraph.EdgeKind `json:"kind"`

	// IsRelative marks imports written as ./ or ../ paths.
	IsRelative bool `json:"isRelative"`

	// IsExternal marks imports of modules outside the project. External
	// dependencies are recorded here but excluded from graph nodes unless
	// includeNodeModules is enabled.
	IsExternal bool `json:"isExternal"`

	ImportedSymbols []string `json:"importedSymbols,omitempty"`
}

// FileDependencies is the immutable result of analyzing one file. A
// re-analysis produces a new value; existing ones are never mutated.
type FileDependencies struct {
	FilePath     string       `json:"filePath"`
	Dependencies []Dependency `json:"dependencies"`
	LastModified time.Time    `json:"lastModified"`
}

// ProjectDependencies aggregates one whole-project analysis pass.
type ProjectDependencies struct {
	ID         string                       `json:"id"`
	Root       string                       `json:"root"`
	Files      map[string]*FileDependencies `json:"files"`
	AnalyzedAt time.Time                    `json:"analyzedAt"`
}

// ImpactAnalysisResult answers "what breaks if this file changes?".
type ImpactAnalysisResult struct {
	TargetFile           string   `json:"targetFile"`
	DirectlyAffected     []string `json:"directlyAffected"`
	TransitivelyAffected []string `json:"transitivelyAffected"`
	AffectedTests        []string `json:"affectedTests"`
	ImpactScore          float64  `json:"impactScore"`
}

// DependencyStats summarizes the current graph.
type DependencyStats struct {
	TotalFiles                 int     `json:"totalFiles"`
	TotalDependencies          int     `json:"totalDependencies"`
	AverageDependenciesPerFile float64 `json:"averageDependenciesPerFile"`
	MaxDependenciesInFile      int     `json:"maxDependenciesInFile"`
	CircularDependencies       int     `json:"circularDependencies"`
	OrphanedFiles              int     `json:"orphanedFiles"`
}
