package opensearch

import "testing"

func TestWildcardPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
		ok      bool
	}{
		{"prefix anchor", "^foo", "foo*", true},
		{"suffix anchor", "foo$", "*foo", true},
		{"both anchors", "^foo$", "foo", true},
		{"unanchored", "foo", "", false},
		{"empty pattern", "", "", false},
		{"only caret", "^", "*", true},
		{"only dollar", "$", "*", true},
		{"literal star", `^a*b`, `a\*b*`, true},
		{"literal question mark", `^a?b$`, `a\?b`, true},
		{"backslash before star", `^a\*b$`, `a\\\*b`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := wildcardPattern(tt.pattern)
			if ok != tt.ok {
				t.Fatalf("wildcardPattern(%q) ok = %v, want %v", tt.pattern, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("wildcardPattern(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestEscapeWildcard_BackslashFirst(t *testing.T) {
	// If * were escaped before backslashes, the introduced \ would be
	// escaped again and the pattern would drift.
	got := escapeWildcard(`\*`)
	if got != `\\\*` {
		t.Errorf("escapeWildcard(`\\*`) = %q, want %q", got, `\\\*`)
	}
}
