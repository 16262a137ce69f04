/*
Package regrep is a small backtracking regular-expression engine. It decides
whether a pattern matches any substring of an input line, with support for
literals, `.`, `\d`, `\w`, bracket expressions (including negation and
ranges), `?` `+` `*` quantifiers, capturing groups with alternation, back-
references \1..\9, and the `^` and `$` anchors.

It makes no constant-time guarantees: matching explores alternatives by
backtracking, greedily preferring longer matches, and an adversarial pattern
can take exponential time. Captures exist only to satisfy back-references
within a match attempt; they are not reported to callers.
*/
package regrep

import (
	"strconv"
	"sync"

	"github.com/regrep/regrep/syntax"
)

// Regexp is the representation of a compiled regular expression.
// A Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	// read-only after Compile
	pattern string // as passed to Compile
	captop  int    // number of capturing groups
	tree    *syntax.RegexTree

	// cache of runners for running matches
	mu      sync.Mutex
	runners []*runner
}

// Compile parses a regular expression and returns, if successful,
// a Regexp object that can be used to match against text.
func Compile(expr string) (*Regexp, error) {
	tree, err := syntax.Parse(expr)
	if err != nil {
		return nil, err
	}

	return &Regexp{
		pattern: expr,
		captop:  tree.Captop,
		tree:    tree,
	}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables holding compiled regular
// expressions.
func MustCompile(str string) *Regexp {
	regexp, err := Compile(str)
	if err != nil {
		panic(`regrep: Compile(` + quote(str) + `): ` + err.Error())
	}
	return regexp
}

// Match reports whether the pattern matches anywhere in the input,
// compiling it first. For repeated use, Compile once and reuse the Regexp.
func Match(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(input), nil
}

// String returns the source text used to compile the regular expression.
func (re *Regexp) String() string {
	return re.pattern
}

// MatchString reports whether the pattern matches any substring of s.
func (re *Regexp) MatchString(s string) bool {
	return re.run(s)
}

// Match reports whether the pattern matches any substring of b.
func (re *Regexp) Match(b []byte) bool {
	return re.run(string(b))
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
