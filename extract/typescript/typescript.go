// Package typescript extracts import statements from TypeScript, TSX, and
// JavaScript sources using tree-sitter. It implements the analyzer's
// Extractor contract; resolution and graph building stay in the analyzer.
package typescript

import (
	"context"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/depscope/depscope/analyzer"
	"github.com/depscope/depscope/errdefs"
)

// Extractor extracts TypeScript/TSX/JavaScript imports.
type Extractor struct{}

// New returns a TypeScript extractor.
func New() Extractor {
	return Extractor{}
}

// Extensions lists the file extensions this extractor understands.
func (Extractor) Extensions() []string {
	return []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}
}

// Extract parses source content and returns every import in document order:
// static import/export-from statements plus dynamic import() and require()
// calls. Named symbols from import clauses are captured when present.
func (Extractor) Extract(content []byte, filePath string) ([]analyzer.RawImport, error) {
	lang := languageForPath(filePath)

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, errdefs.Extractionf("failed to parse %s: %v", filePath, err)
	}
	defer tree.Close()

	var imports []analyzer.RawImport
	collect(tree.RootNode(), content, &imports)
	return imports, nil
}

func languageForPath(filePath string) *sitter.Language {
	switch filepath.Ext(filePath) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage()
	default:
		return typescript.GetLanguage()
	}
}

// collect walks the syntax tree gathering import statements. A manual walk
// covers the TS, TSX, and JS grammars uniformly; the node types involved are
// identical across the three.
func collect(node *sitter.Node, source []byte, imports *[]analyzer.RawImport) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "import_statement", "export_statement":
		if raw, ok := staticImport(node, source); ok {
			*imports = append(*imports, raw)
		}
	case "call_expression":
		if raw, ok := dynamicImport(node, source); ok {
			*imports = append(*imports, raw)
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collect(node.Child(i), source, imports)
	}
}

// staticImport reads `import ... from 'x'` and `export ... from 'x'`.
func staticImport(node *sitter.Node, source []byte) (analyzer.RawImport, bool) {
	sourceNode := node.ChildByFieldName("source")
	if sourceNode == nil {
		return analyzer.RawImport{}, false
	}

	path := cleanImportPath(sourceNode.Content(source))
	if path == "" {
		return analyzer.RawImport{}, false
	}

	return analyzer.RawImport{
		Path:    path,
		Symbols: importedSymbols(node, source),
	}, true
}

// dynamicImport reads `import('x')` and `require('x')` calls.
func dynamicImport(node *sitter.Node, source []byte) (analyzer.RawImport, bool) {
	fn := node.ChildByFieldName("function")
	if fn == nil {
		return analyzer.RawImport{}, false
	}

	callee := fn.Content(source)
	if callee != "import" && callee != "require" {
		return analyzer.RawImport{}, false
	}

	args := node.ChildByFieldName("arguments")
	if args == nil {
		return analyzer.RawImport{}, false
	}

	for i := 0; i < int(args.ChildCount()); i++ {
		arg := args.Child(i)
		if arg == nil || arg.Type() != "string" {
			continue
		}
		path := cleanImportPath(arg.Content(source))
		if path == "" {
			return analyzer.RawImport{}, false
		}
		return analyzer.RawImport{Path: path, Dynamic: true}, true
	}
	return analyzer.RawImport{}, false
}

// importedSymbols gathers named and default bindings from an import clause.
func importedSymbols(node *sitter.Node, source []byte) []string {
	var symbols []string

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		switch n.Type() {
		case "import_specifier":
			if name := n.ChildByFieldName("name"); name != nil {
				symbols = append(symbols, name.Content(source))
				return
			}
		case "namespace_import":
			// `* as ns`: record the binding name.
			for i := 0; i < int(n.ChildCount()); i++ {
				if child := n.Child(i); child != nil && child.Type() == "identifier" {
					symbols = append(symbols, child.Content(source))
				}
			}
			return
		case "import_clause":
			for i := 0; i < int(n.ChildCount()); i++ {
				if child := n.Child(i); child != nil && child.Type() == "identifier" {
					symbols = append(symbols, child.Content(source))
				}
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child != nil && child.Type() == "import_clause" {
			walk(child)
		}
	}
	return symbols
}

func cleanImportPath(raw string) string {
	return strings.TrimSpace(strings.Trim(raw, "'\"`"))
}
