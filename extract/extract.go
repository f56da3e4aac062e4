// Package extract wires per-language extractors into one dispatcher that
// can be injected into the analyzer. There is no process-wide registry:
// callers construct exactly the set of languages they want.
package extract

import (
	"path/filepath"

	"github.com/depscope/depscope/analyzer"
)

// LanguageExtractor is an analyzer.Extractor that declares which file
// extensions it understands.
type LanguageExtractor interface {
	analyzer.Extractor
	Extensions() []string
}

// Dispatcher routes extraction to the extractor registered for the file's
// extension. Files with no registered extractor yield no imports, so
// unsupported files still become graph nodes with an empty dependency list.
type Dispatcher struct {
	byExt map[string]analyzer.Extractor
}

// NewDispatcher builds a dispatcher over the given language extractors.
func NewDispatcher(extractors ...LanguageExtractor) *Dispatcher {
	byExt := make(map[string]analyzer.Extractor)
	for _, e := range extractors {
		for _, ext := range e.Extensions() {
			byExt[ext] = e
		}
	}
	return &Dispatcher{byExt: byExt}
}

// Extract dispatches on the file extension.
func (d *Dispatcher) Extract(content []byte, filePath string) ([]analyzer.RawImport, error) {
	e, ok := d.byExt[filepath.Ext(filePath)]
	if !ok {
		return nil, nil
	}
	return e.Extract(content, filePath)
}

// Supports reports whether a file extension has a registered extractor.
func (d *Dispatcher) Supports(ext string) bool {
	_, ok := d.byExt[ext]
	return ok
}
