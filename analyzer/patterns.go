package analyzer

import (
	"path/filepath"
	"strings"
)

// matchPattern reports whether a glob pattern matches a file. Patterns are
// matched against the base name and the root-relative path; "**" segments
// match any number of directories; a pattern without metacharacters also
// matches as a whole path segment, so "node_modules" excludes the directory
// anywhere in the tree.
func matchPattern(pattern, rel, base string) bool {
	pattern = filepath.ToSlash(pattern)
	rel = filepath.ToSlash(rel)

	if strings.Contains(pattern, "**") {
		return matchSegments(strings.Split(pattern, "/"), strings.Split(rel, "/"))
	}

	if ok, err := filepath.Match(pattern, base); err == nil && ok {
		return true
	}
	if ok, err := filepath.Match(pattern, rel); err == nil && ok {
		return true
	}

	if !strings.ContainsAny(pattern, "*?[") {
		for _, segment := range strings.Split(rel, "/") {
			if segment == pattern {
				return true
			}
		}
	}
	return false
}

// matchSegments matches pattern segments against path segments, where a
// "**" segment consumes zero or more path segments.
func matchSegments(pattern, path []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}

	if pattern[0] == "**" {
		// Zero segments consumed, or one more.
		if matchSegments(pattern[1:], path) {
			return true
		}
		return len(path) > 0 && matchSegments(pattern, path[1:])
	}

	if len(path) == 0 {
		return false
	}
	if ok, err := filepath.Match(pattern[0], path[0]); err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], path[1:])
}
