package regrep

import "testing"

func TestMatch_Literals(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"cat", "cat", true},
		{"cat", "a cat sat", true},
		{"cat", "cart", false},
		{"cat", "", false},
		{"", "anything", true},
		{"", "", true},
		{`x\.y`, "x.y", true},
		{`x\.y`, "xzy", false},
	}
	runMatchTests(t, tests)
}

func TestMatch_ClassesAndWildcard(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{`\d`, "apple123", true},
		{`\d`, "apple", false},
		{`\w`, "_", true},
		{`\w`, " %.", false},
		{`\d apple`, "sally has 3 apples", true},
		{`\d apple`, "sally has 1 orange", false},
		{"c.t", "cat", true},
		{"c.t", "ct", false},
		{"[abcd]", "dog", true},
		{"[abcd]", "day", true},
		{"[^xyz]", "a", true},
		{"[^xyz]", "x", false},
		{"[^xyz]", "", false},
		{"[a-cx-z]", "y", true},
		{"[a-cx-z]", "m", false},
		{"[a-]", "-", true},
	}
	runMatchTests(t, tests)
}

func TestMatch_Anchors(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"^abc$", "abc", true},
		{"^abc$", " abc", false},
		{"^abc$", "abc ", false},
		{"^x", "xy", true},
		{"^x", "yx", false},
		{"x$", "yx", true},
		{"x$", "xy", false},
		{"^$", "", true},
		{"^$", "a", false},

		// ^ and $ are ordinary characters away from the pattern's edges
		{"a$b", "a$b", true},
		{"b^a", "b^a", true},
		{"a^b", "ab", false},
	}
	runMatchTests(t, tests)
}

func TestMatch_Quantifiers(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a+", "", false},
		{"a*", "", true},
		{"a+", "aaa", true},
		{"a+a", "aaa", true}, // backtracking surrenders one a
		{"ca+t", "caaats", true},
		{"ca+t", "ct", false},
		{"ca?t", "ct", true},
		{"ca?t", "cat", true},
		{"ca?t", "caat", false},
		{"ca*t", "ct", true},
		{"ca*t", "caaaat", true},
		{"a*aaa", "aaa", true},
		{`\d+`, "123", true},
		{"[abc]+z", "cabz", true},
		{"^a*$", "aab", false},
	}
	runMatchTests(t, tests)
}

func TestMatch_Groups(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"(cat|dog)", "I have a cat", true},
		{"(cat|dog)", "I have a cow", false},
		{"(a|ab)c", "abc", true}, // second branch after the first fails the rest
		{"a(b|c)d", "abd", true},
		{"a(b|c)d", "acd", true},
		{"a(b|c)d", "aed", false},
		{"(ab)+", "ababab", true},
		{"(ab)+c", "ababc", true},
		{"(a|b)+c", "abbac", true},
		{"(a|b)+c", "abxc", false},
		{"(puppy|kitten)?s", "s", true},
		{"(x)*y", "y", true},
		{"((a|b)c)+d", "acbcd", true},
		{"(a|)", "anything", true},
	}
	runMatchTests(t, tests)
}

func TestMatch_BackReferences(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{`(\w+) and \1`, "cat and cat", true},
		{`(\w+) and \1`, "cat and dog", false},
		{`(cat) and \1`, "cat and cat", true},
		{`(a)\1`, "aa", true},
		{`(a)\1`, "ab", false},
		{`(\d+)-\1`, "12-12", true},
		{`(\d+)-\1`, "12-13", false},

		// the capture must shrink until the reference can be satisfied
		{`(a+)\1`, "aaaa", true},
		{`(a+)b\1`, "aaabaa", true},
		{`(a+)b\1`, "aab", false},

		// quantified reference repeats the captured text
		{`(ab)\1+`, "ababab", true},
		{`(ab)\1+`, "abx", false},

		// multiple and nested references
		{`(\d+) (\w+) squares and \1 \2 circles`, "3 red squares and 3 red circles", true},
		{`(\d+) (\w+) squares and \1 \2 circles`, "3 red squares and 4 red circles", false},
		{`('(cat) and \2') is the same as \1`, "'cat and cat' is the same as 'cat and cat'", true},
		{`('(cat) and \2') is the same as \1`, "'cat and cat' is the same as 'cat and dog'", false},

		// a reference inside its own group can never see a closed capture
		{`(\1a)`, "aa", false},
		{`\1(a)`, "aa", false},
		{`(a)\1`, "aa", true},
	}
	runMatchTests(t, tests)
}

func TestMatch_CaptureRebinding(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		// a repeated group captures its last iteration
		{`(a|b)+\1`, "abb", true},
		{`(a|b)+\1`, "ab", false},
		{`(ab|cd)+\1`, "abcdcd", true},
		{`(ab|cd)+\1`, "abcdab", false}, // no split leaves the reference satisfiable

		// a capture written in an abandoned branch is invisible to the
		// branch tried after it
		{`((a)x|\2a)`, "aa", false},
		{`((a)x|aa)`, "aa", true},
	}
	runMatchTests(t, tests)
}

func TestMatch_EmptyLoops(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"(a*)+", "", true},
		{"(a*)*", "", true},
		{"(a*)+b", "b", true},
		{"(a*)+b", "aab", true},
		{"(|x)+y", "y", true},
	}
	runMatchTests(t, tests)
}

func TestMatch_TopLevelPipeIsLiteral(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a|b", "a", false},
		{"a|b", "b", false},
		{"a|b", "a|b", true},
	}
	runMatchTests(t, tests)
}

func runMatchTests(t *testing.T, tests []struct {
	pattern string
	input   string
	want    bool
}) {
	t.Helper()
	for _, tc := range tests {
		re, err := Compile(tc.pattern)
		if err != nil {
			t.Errorf("Compile(%q): unexpected error: %v", tc.pattern, err)
			continue
		}
		if got := re.MatchString(tc.input); got != tc.want {
			t.Errorf("MatchString(%q, %q): want %v, got %v", tc.pattern, tc.input, tc.want, got)
		}
	}
}
