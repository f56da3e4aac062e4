// Package golang extracts import declarations from Go sources using
// tree-sitter.
package golang

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsgolang "github.com/smacker/go-tree-sitter/golang"

	"github.com/depscope/depscope/analyzer"
	"github.com/depscope/depscope/errdefs"
)

const importQueryPattern = `
(import_spec
  path: (interpreted_string_literal) @import.path)
`

// Extractor extracts Go import paths.
type Extractor struct{}

// New returns a Go extractor.
func New() Extractor {
	return Extractor{}
}

// Extensions lists the file extensions this extractor understands.
func (Extractor) Extensions() []string {
	return []string{".go"}
}

// Extract parses Go source and returns its import paths. Go has no dynamic
// import form, so every import is static.
func (Extractor) Extract(content []byte, filePath string) ([]analyzer.RawImport, error) {
	lang := tsgolang.GetLanguage()

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, errdefs.Extractionf("failed to parse %s: %v", filePath, err)
	}
	defer tree.Close()

	query, err := sitter.NewQuery([]byte(importQueryPattern), lang)
	if err != nil {
		return nil, errdefs.Extractionf("import query failed: %v", err)
	}
	defer query.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, tree.RootNode())

	var imports []analyzer.RawImport
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match = cursor.FilterPredicates(match, content)

		for _, capture := range match.Captures {
			path := strings.TrimSpace(strings.Trim(capture.Node.Content(content), "`\""))
			if path != "" {
				imports = append(imports, analyzer.RawImport{Path: path})
			}
		}
	}
	return imports, nil
}
