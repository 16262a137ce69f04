package syntax

import (
	"bytes"
	"fmt"
)

// CharSet combines start-end rune ranges to form a character class, with an
// optional negation applied to the whole set. Ranges are kept in the order
// they appeared in the pattern; sets are tiny, so membership is a linear
// scan rather than anything clever.
type CharSet struct {
	ranges []singleRange
	negate bool
}

type singleRange struct {
	first rune
	last  rune
}

var (
	digitSet = &CharSet{ranges: []singleRange{{'0', '9'}}}
	wordSet  = &CharSet{ranges: []singleRange{{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'}}}
)

// DigitClass is the set behind \d: the ASCII digits.
func DigitClass() *CharSet { return digitSet }

// WordClass is the set behind \w: ASCII letters, digits and underscore.
func WordClass() *CharSet { return wordSet }

func (c *CharSet) addChar(ch rune) {
	c.addRange(ch, ch)
}

func (c *CharSet) addRange(first, last rune) {
	c.ranges = append(c.ranges, singleRange{first: first, last: last})
}

// IsNegated indicates whether the set matches the complement of its ranges.
func (c *CharSet) IsNegated() bool { return c.negate }

// CharIn reports whether ch is matched by the set, honoring negation.
func (c *CharSet) CharIn(ch rune) bool {
	in := false
	for _, r := range c.ranges {
		if r.first <= ch && ch <= r.last {
			in = true
			break
		}
	}
	return in != c.negate
}

// String produces a human-readable description of the set, roughly in the
// syntax it was written in.
func (c *CharSet) String() string {
	buf := &bytes.Buffer{}
	buf.WriteRune('[')
	if c.negate {
		buf.WriteRune('^')
	}
	for _, r := range c.ranges {
		buf.WriteString(CharDescription(r.first))
		if r.last != r.first {
			buf.WriteRune('-')
			buf.WriteString(CharDescription(r.last))
		}
	}
	buf.WriteRune(']')
	return buf.String()
}

// CharDescription produces a human-readable description for a single character.
func CharDescription(ch rune) string {
	if ch == '\\' {
		return "\\\\"
	}
	if ch >= ' ' && ch <= '~' {
		return string(ch)
	}
	return fmt.Sprintf("%U", ch)
}
