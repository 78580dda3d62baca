package syntax

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Epsilon labels a transition that consumes no input.
const Epsilon rune = -1

// Transition is one element of the transition relation. Label is either an
// alphabet symbol or Epsilon.
type Transition struct {
	From  int
	Label rune
	To    int
}

// NFA is a nondeterministic finite automaton over dense integer states.
// State identifiers start at 0 and index directly into the arc table, so
// states own nothing and the Star back-edge cycles cost no bookkeeping.
//
// An NFA is immutable once Compile returns it and is safe for any number
// of concurrent match runs.
type NFA struct {
	start    int
	accept   int
	states   []stateArcs
	alphabet *treeset.Set // of rune, sorted
}

type stateArcs struct {
	eps  []int         // epsilon targets
	arcs map[rune][]int // labeled targets, nil until first arc
}

// NumStates returns the number of states; identifiers are 0..NumStates()-1.
func (n *NFA) NumStates() int { return len(n.states) }

// StartState returns the single initial state.
func (n *NFA) StartState() int { return n.start }

// AcceptState returns the single accepting state.
func (n *NFA) AcceptState() int { return n.accept }

// Alphabet returns the symbols seen in the pattern, in sorted order.
func (n *NFA) Alphabet() []rune {
	vals := n.alphabet.Values()
	out := make([]rune, len(vals))
	for i, v := range vals {
		out[i] = v.(rune)
	}
	return out
}

// EpsilonTargets returns the states reachable from s along one epsilon
// transition. The returned slice is owned by the NFA; callers must not
// modify it.
func (n *NFA) EpsilonTargets(s int) []int { return n.states[s].eps }

// SymbolTargets returns the states reachable from s along one transition
// labeled r. The returned slice is owned by the NFA; callers must not
// modify it.
func (n *NFA) SymbolTargets(s int, r rune) []int { return n.states[s].arcs[r] }

// Transitions lists the full transition relation, ordered by source state,
// labeled arcs (sorted by label) before epsilon arcs.
func (n *NFA) Transitions() []Transition {
	list := arraylist.New()
	for from := range n.states {
		st := &n.states[from]
		for _, r := range st.sortedLabels() {
			for _, to := range st.arcs[r] {
				list.Add(Transition{From: from, Label: r, To: to})
			}
		}
		for _, to := range st.eps {
			list.Add(Transition{From: from, Label: Epsilon, To: to})
		}
	}
	out := make([]Transition, 0, list.Size())
	for _, v := range list.Values() {
		out = append(out, v.(Transition))
	}
	return out
}

func (st *stateArcs) sortedLabels() []rune {
	labels := make([]rune, 0, len(st.arcs))
	for r := range st.arcs {
		labels = append(labels, r)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// EpsilonClosure returns the smallest superset of states closed under
// epsilon transitions, as a sorted slice without duplicates. The work-list
// marks visited states, so epsilon cycles (the Star back-edge) terminate.
// Closing an already-closed set returns the same set.
func (n *NFA) EpsilonClosure(states []int) []int {
	seen := make([]bool, len(n.states))
	closure := make([]int, 0, len(n.states))
	for _, s := range states {
		if !seen[s] {
			seen[s] = true
			closure = append(closure, s)
		}
	}
	for i := 0; i < len(closure); i++ {
		for _, t := range n.states[closure[i]].eps {
			if !seen[t] {
				seen[t] = true
				closure = append(closure, t)
			}
		}
	}
	sort.Ints(closure)
	return closure
}

// Move returns the states reachable from any state in the given set along
// one transition labeled r, sorted and without duplicates. No epsilon
// closure is applied.
func (n *NFA) Move(states []int, r rune) []int {
	seen := make([]bool, len(n.states))
	out := make([]int, 0, len(n.states))
	for _, s := range states {
		for _, t := range n.states[s].arcs[r] {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Ints(out)
	return out
}

// Dump renders the automaton as a human-readable listing.
func (n *NFA) Dump() string {
	trans := n.Transitions()
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "Initial State: (%d)\n", n.start)
	fmt.Fprintf(buf, "Final State: ((%d))\n", n.accept)
	fmt.Fprintf(buf, "States(%d): 0..%d\n", len(n.states), len(n.states)-1)
	alpha := n.Alphabet()
	fmt.Fprintf(buf, "Alphabet(%d):", len(alpha))
	for _, r := range alpha {
		fmt.Fprintf(buf, " %c", r)
	}
	buf.WriteRune('\n')
	fmt.Fprintf(buf, "Transition Function(%d):\n", len(trans))
	for _, t := range trans {
		if t.Label == Epsilon {
			fmt.Fprintf(buf, "  (%d, ε) --> %d\n", t.From, t.To)
		} else {
			fmt.Fprintf(buf, "  (%d, %c) --> %d\n", t.From, t.Label, t.To)
		}
	}
	return buf.String()
}

func newNFA(start, accept int, states []stateArcs, alphabet *treeset.Set) *NFA {
	return &NFA{start: start, accept: accept, states: states, alphabet: alphabet}
}

func newAlphabet() *treeset.Set {
	return treeset.NewWith(utils.RuneComparator)
}
