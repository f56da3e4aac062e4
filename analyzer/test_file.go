package analyzer

import (
	"path/filepath"
	"strings"
)

// IsTestFile reports whether a file path follows test naming conventions:
// Go _test files, .test./.spec. infixes, or a __tests__/tests directory
// anywhere on the path.
func IsTestFile(path string) bool {
	base := filepath.Base(path)

	if strings.HasSuffix(base, "_test.go") {
		return true
	}
	if strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") {
		return true
	}

	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == "__tests__" || segment == "tests" {
			return true
		}
	}
	return false
}
