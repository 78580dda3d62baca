package syntax

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// compiler holds the state threaded through the recursive Thompson
// construction. The fresh-state counter is implicit in len(states) and is
// never reset mid-build, so every fragment gets non-colliding identifiers.
type compiler struct {
	states   []stateArcs
	alphabet *treeset.Set
}

// frag is one automaton fragment. Every fragment exposes exactly one entry
// and one exit state to its caller.
type frag struct {
	start  int
	accept int
}

// Compile translates an expression tree into an NFA via Thompson's
// construction. It cannot fail on a tree produced by Parse; an unknown
// node kind is a programming fault and panics.
func Compile(tree *RegexTree) *NFA {
	c := &compiler{alphabet: newAlphabet()}
	f := c.compile(tree.Root)
	nfa := newNFA(f.start, f.accept, c.states, c.alphabet)
	CT().Debugf("compiled %q into %d states, %d transitions",
		tree.Pattern, nfa.NumStates(), len(nfa.Transitions()))
	return nfa
}

func (c *compiler) compile(n *RegexNode) frag {
	switch n.T {
	case NtLiteral:
		// s --ch--> e
		s, e := c.newState(), c.newState()
		c.addArc(s, n.Ch, e)
		c.alphabet.Add(n.Ch)
		return frag{start: s, accept: e}
	case NtConcat:
		// L.exit --ε--> R.entry
		left := c.compile(n.Left)
		right := c.compile(n.Right)
		c.addEpsilon(left.accept, right.start)
		return frag{start: left.start, accept: right.accept}
	case NtAlternate:
		// fresh entry forks into both fragments, both exits join a fresh exit
		left := c.compile(n.Left)
		right := c.compile(n.Right)
		s, e := c.newState(), c.newState()
		c.addEpsilon(s, left.start)
		c.addEpsilon(s, right.start)
		c.addEpsilon(left.accept, e)
		c.addEpsilon(right.accept, e)
		return frag{start: s, accept: e}
	case NtStar:
		// skip for zero occurrences, loop back for repetition
		child := c.compile(n.Left)
		s, e := c.newState(), c.newState()
		c.addEpsilon(s, child.start)
		c.addEpsilon(s, e)
		c.addEpsilon(child.accept, child.start)
		c.addEpsilon(child.accept, e)
		return frag{start: s, accept: e}
	default:
		panic(fmt.Sprintf("unexpected node type in automaton generation: %v", n.T))
	}
}

func (c *compiler) newState() int {
	c.states = append(c.states, stateArcs{})
	return len(c.states) - 1
}

func (c *compiler) addArc(from int, r rune, to int) {
	st := &c.states[from]
	if st.arcs == nil {
		st.arcs = make(map[rune][]int)
	}
	st.arcs[r] = append(st.arcs[r], to)
}

func (c *compiler) addEpsilon(from, to int) {
	c.states[from].eps = append(c.states[from].eps, to)
}
