package syntax

import (
	"bytes"
	"fmt"
	"strconv"
)

// RegexTree is the parsed form of a pattern. It is built once by Parse and
// is read-only afterwards; matchers walk it without modifying it.
type RegexTree struct {
	Root              *RegexNode
	Captop            int // number of capturing groups; indices run 1..Captop
	FindOptimizations *FindOptimizations
}

// RegexNode is one node of the parse tree.
//
// Implementation notes:
//
// RegexNodes come in as many types as there are constructs in a pattern:
// "one" (a literal), "set", "ref", "capture", and the compositing nodes
// "concatenate", "alternate" and "loop". Quantifiers are not stored on the
// quantified node; the parser wraps the node in an NtLoop carrying the
// repetition bounds, so a matcher only ever sees loops with explicit
// min/max.
//
// The tree is designed for clarity rather than space efficiency; it is
// small (bounded by the pattern length) and shared by every match.
type RegexNode struct {
	T        NodeType
	Children []*RegexNode
	Ch       rune     // NtOne
	Set      *CharSet // NtSet
	M        int      // NtCapture, NtRef: group index; NtLoop: min count
	N        int      // NtLoop: max count, -1 when unbounded
}

type NodeType int32

const (
	NtUnknown NodeType = -1

	// The following are leaves, and correspond to primitive operations

	NtOne   NodeType = iota // char         a
	NtAny                   //              .
	NtSet                   // set          [a-z] \d \w
	NtRef                   // group        \1..\9
	NtBol                   //              ^
	NtEol                   //              $
	NtEmpty                 //              an empty branch, as in (a|)

	// Interior nodes do not correspond to primitive operations, but
	// control structures compositing other operations

	NtConcatenate //              ab
	NtAlternate   //              a|b
	NtLoop        // min,max      * + ?
	NtCapture     // group        (...)
)

func newRegexNodeCh(t NodeType, ch rune) *RegexNode {
	return &RegexNode{T: t, Ch: ch}
}

func newRegexNodeSet(set *CharSet) *RegexNode {
	return &RegexNode{T: NtSet, Set: set}
}

func newRegexNodeLoop(child *RegexNode, min, max int) *RegexNode {
	return &RegexNode{T: NtLoop, Children: []*RegexNode{child}, M: min, N: max}
}

// reduceConcatenation collapses a would-be concatenation: no parts is an
// empty match, one part is that part itself.
func reduceConcatenation(parts []*RegexNode) *RegexNode {
	switch len(parts) {
	case 0:
		return &RegexNode{T: NtEmpty}
	case 1:
		return parts[0]
	}
	return &RegexNode{T: NtConcatenate, Children: parts}
}

// Dump returns a compact single-line description of the subtree. Used in
// tests and for debugging.
func (n *RegexNode) Dump() string {
	buf := &bytes.Buffer{}
	n.dumpTo(buf)
	return buf.String()
}

func (n *RegexNode) dumpTo(buf *bytes.Buffer) {
	switch n.T {
	case NtOne:
		buf.WriteString("One(" + string(n.Ch) + ")")
	case NtAny:
		buf.WriteString("Any")
	case NtSet:
		buf.WriteString("Set(" + n.Set.String() + ")")
	case NtRef:
		buf.WriteString("Ref(" + strconv.Itoa(n.M) + ")")
	case NtBol:
		buf.WriteString("Bol")
	case NtEol:
		buf.WriteString("Eol")
	case NtEmpty:
		buf.WriteString("Empty")
	case NtConcatenate:
		n.dumpChildren(buf, "Cat")
	case NtAlternate:
		n.dumpChildren(buf, "Alt")
	case NtLoop:
		fmt.Fprintf(buf, "Loop(%d,%d ", n.M, n.N)
		n.Children[0].dumpTo(buf)
		buf.WriteRune(')')
	case NtCapture:
		fmt.Fprintf(buf, "Cap(%d ", n.M)
		n.Children[0].dumpTo(buf)
		buf.WriteRune(')')
	default:
		fmt.Fprintf(buf, "Unknown(%d)", n.T)
	}
}

func (n *RegexNode) dumpChildren(buf *bytes.Buffer, name string) {
	buf.WriteString(name + "(")
	for i, c := range n.Children {
		if i > 0 {
			buf.WriteRune(' ')
		}
		c.dumpTo(buf)
	}
	buf.WriteRune(')')
}
