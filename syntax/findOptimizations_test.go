package syntax

import "testing"

func TestFindOptimizations(t *testing.T) {
	tests := []struct {
		pattern  string
		anchored bool
		prefix   string
	}{
		{"abc", false, "abc"},
		{"a", false, "a"},
		{"^abc", true, "abc"},
		{"^", true, ""},
		{"ab+c", false, "a"},
		{"ab?c", false, "a"},
		{"(a)b", false, ""},
		{"[ab]c", false, ""},
		{`\d`, false, ""},
		{".x", false, ""},
		{"", false, ""},
	}

	for _, tc := range tests {
		tree, err := Parse(tc.pattern)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.pattern, err)
		}
		f := tree.FindOptimizations
		if got := f.LeadingAnchor == NtBol; got != tc.anchored {
			t.Errorf("%q: anchored: want %v, got %v", tc.pattern, tc.anchored, got)
		}
		if got := string(f.LeadingPrefix); got != tc.prefix {
			t.Errorf("%q: prefix: want %q, got %q", tc.pattern, tc.prefix, got)
		}
	}
}
