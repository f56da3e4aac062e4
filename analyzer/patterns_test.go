package analyzer

import "testing"

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		rel     string
		want    bool
	}{
		{"*.ts", "src/app.ts", true},
		{"*.ts", "src/app.go", false},
		{"src/*.ts", "src/app.ts", true},
		{"src/*.ts", "src/nested/app.ts", false},
		{"**/*.ts", "deeply/nested/app.ts", true},
		{"**/*.ts", "app.ts", true},
		{"node_modules", "node_modules/lodash/index.js", true},
		{"node_modules", "src/app.ts", false},
		{"src/**/*.spec.ts", "src/a/b/c.spec.ts", true},
		{"src/**/*.spec.ts", "lib/a.spec.ts", false},
		{"dist", "src/dist/out.js", true},
	}

	for _, tt := range tests {
		base := tt.rel
		if idx := lastSlash(tt.rel); idx >= 0 {
			base = tt.rel[idx+1:]
		}
		got := matchPattern(tt.pattern, tt.rel, base)
		if got != tt.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.rel, got, tt.want)
		}
	}
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
