package regrep

import (
	"slices"

	"github.com/regrep/regrep/syntax"
)

// runner executes one match at a time. It holds the per-call state: the
// input text and the capture table for the current attempt. A Regexp keeps
// finished runners in a cache so repeated matches don't reallocate.
type runner struct {
	re      *Regexp
	runtext []rune

	// runcaps is the capture table, indexed by group number 1..captop.
	// Entries alias runtext and are rebound or cleared as the search
	// backtracks; slot 0 is unused.
	runcaps []capture
}

type capture struct {
	ok   bool
	text []rune
}

// run tries the match at each starting position in order, stopping at the
// first success. A leading `^` pins the start to position 0, and a leading
// literal prefix lets the scan skip positions that cannot begin a match.
func (re *Regexp) run(s string) bool {
	r := re.getRunner()
	defer re.putRunner(r)

	r.runtext = []rune(s)
	f := re.tree.FindOptimizations

	for start := 0; start <= len(r.runtext); start++ {
		if f.LeadingAnchor != syntax.NtBol && len(f.LeadingPrefix) > 0 {
			skip := indexRunes(r.runtext[start:], f.LeadingPrefix)
			if skip < 0 {
				return false
			}
			start += skip
		}

		for i := range r.runcaps {
			r.runcaps[i] = capture{}
		}
		if r.tryNode(re.tree.Root, start, r.accept) {
			return true
		}

		if f.LeadingAnchor == syntax.NtBol {
			break
		}
	}
	return false
}

// accept is the outermost continuation: reaching it means the whole
// pattern has been consumed.
func (r *runner) accept(pos int) bool {
	return true
}

// tryNode attempts node at pos, calling cont with each candidate end
// position in preferred order until one leads to an overall match. It
// reports whether any did; on failure the capture table is left as it was.
func (r *runner) tryNode(node *syntax.RegexNode, pos int, cont func(int) bool) bool {
	switch node.T {
	case syntax.NtOne:
		if pos < len(r.runtext) && r.runtext[pos] == node.Ch {
			return cont(pos + 1)
		}
		return false

	case syntax.NtAny:
		if pos < len(r.runtext) {
			return cont(pos + 1)
		}
		return false

	case syntax.NtSet:
		if pos < len(r.runtext) && node.Set.CharIn(r.runtext[pos]) {
			return cont(pos + 1)
		}
		return false

	case syntax.NtBol:
		if pos == 0 {
			return cont(pos)
		}
		return false

	case syntax.NtEol:
		if pos == len(r.runtext) {
			return cont(pos)
		}
		return false

	case syntax.NtEmpty:
		return cont(pos)

	case syntax.NtRef:
		c := r.runcaps[node.M]
		if !c.ok || pos+len(c.text) > len(r.runtext) {
			return false
		}
		for i, ch := range c.text {
			if r.runtext[pos+i] != ch {
				return false
			}
		}
		return cont(pos + len(c.text))

	case syntax.NtConcatenate:
		return r.tryConcatenation(node.Children, 0, pos, cont)

	case syntax.NtAlternate:
		for _, branch := range node.Children {
			snap := r.snapshot()
			if r.tryNode(branch, pos, cont) {
				return true
			}
			r.restore(snap)
		}
		return false

	case syntax.NtCapture:
		return r.tryNode(node.Children[0], pos, func(end int) bool {
			prev := r.runcaps[node.M]
			r.runcaps[node.M] = capture{ok: true, text: r.runtext[pos:end]}
			if cont(end) {
				return true
			}
			r.runcaps[node.M] = prev
			return false
		})

	case syntax.NtLoop:
		return r.tryLoop(node, pos, 0, cont)
	}
	return false
}

// tryConcatenation matches nodes[i:] starting at pos, then cont.
func (r *runner) tryConcatenation(nodes []*syntax.RegexNode, i, pos int, cont func(int) bool) bool {
	if i == len(nodes) {
		return cont(pos)
	}
	return r.tryNode(nodes[i], pos, func(end int) bool {
		return r.tryConcatenation(nodes, i+1, end, cont)
	})
}

// tryLoop matches the count-th and following repetitions of a quantified
// node. Repetition is greedy: another iteration is attempted before the
// loop is allowed to stop, so candidate lengths come out longest-first.
//
// An iteration that consumes nothing is admitted only while the loop is
// below its minimum (so `(a*)+` can satisfy its one mandatory repetition
// against an empty tail); past the minimum it is cut off, since it can
// repeat forever without advancing.
func (r *runner) tryLoop(node *syntax.RegexNode, pos, count int, cont func(int) bool) bool {
	if node.N < 0 || count < node.N {
		snap := r.snapshot()
		ok := r.tryNode(node.Children[0], pos, func(end int) bool {
			if end == pos && count >= node.M {
				return false
			}
			return r.tryLoop(node, end, count+1, cont)
		})
		if ok {
			return true
		}
		r.restore(snap)
	}

	if count >= node.M {
		return cont(pos)
	}
	return false
}

// snapshot and restore bracket a choice point so capture writes made while
// exploring one branch stay invisible to the branches tried after it.
func (r *runner) snapshot() []capture {
	return slices.Clone(r.runcaps)
}

func (r *runner) restore(snap []capture) {
	copy(r.runcaps, snap)
}

func indexRunes(text, prefix []rune) int {
	for i := 0; i+len(prefix) <= len(text); i++ {
		j := 0
		for j < len(prefix) && text[i+j] == prefix[j] {
			j++
		}
		if j == len(prefix) {
			return i
		}
	}
	return -1
}

func (re *Regexp) getRunner() *runner {
	re.mu.Lock()
	if n := len(re.runners); n > 0 {
		r := re.runners[n-1]
		re.runners = re.runners[:n-1]
		re.mu.Unlock()
		return r
	}
	re.mu.Unlock()
	return &runner{
		re:      re,
		runcaps: make([]capture, re.captop+1),
	}
}

func (re *Regexp) putRunner(r *runner) {
	r.runtext = nil
	re.mu.Lock()
	re.runners = append(re.runners, r)
	re.mu.Unlock()
}
