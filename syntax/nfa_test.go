package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEpsilonClosure_Idempotent(t *testing.T) {
	// the star back-edge gives the epsilon graph a cycle; the closure must
	// still terminate, and closing a closed set must be a no-op
	nfa := compileTestPattern(t, "(a|b)*")
	closed := nfa.EpsilonClosure([]int{nfa.StartState()})
	again := nfa.EpsilonClosure(closed)
	require.Equal(t, closed, again)
}

func TestEpsilonClosure_Literal(t *testing.T) {
	// a literal has no epsilon arcs at all
	nfa := compileTestPattern(t, "a")
	if want, got := 1, len(nfa.EpsilonClosure([]int{nfa.StartState()})); want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
}

func TestEpsilonClosure_ReachesAccept(t *testing.T) {
	// a* accepts the empty word, so the accept state is epsilon-reachable
	// from the start state
	nfa := compileTestPattern(t, "a*")
	closed := nfa.EpsilonClosure([]int{nfa.StartState()})
	found := false
	for _, s := range closed {
		if s == nfa.AcceptState() {
			found = true
		}
	}
	if !found {
		t.Fatalf("accept state %d not in closure %v", nfa.AcceptState(), closed)
	}
}

func TestMove_NoImplicitClosure(t *testing.T) {
	nfa := compileTestPattern(t, "ab")
	cur := nfa.EpsilonClosure([]int{nfa.StartState()})
	onA := nfa.Move(cur, 'a')
	if want, got := 1, len(onA); want != got {
		t.Fatalf("Move on 'a': got %v, want a single state", onA)
	}
	// no 'b' arc leaves the start closure
	if got := nfa.Move(cur, 'b'); len(got) != 0 {
		t.Fatalf("Move on 'b' from start closure: got %v, want none", got)
	}
}

func TestTransitions_Ordering(t *testing.T) {
	// listing is ordered by source state with labeled arcs before epsilon,
	// so two walks over the same automaton render identically
	nfa := compileTestPattern(t, "(a|b)c*")
	first := nfa.Transitions()
	second := nfa.Transitions()
	require.Equal(t, first, second)
	last := -1
	for _, tr := range first {
		if tr.From < last {
			t.Fatalf("transitions not ordered by source state: %v", first)
		}
		last = tr.From
	}
}

func TestDump_Listing(t *testing.T) {
	nfa := compileTestPattern(t, "a")
	dump := nfa.Dump()
	for _, want := range []string{
		"Initial State: (0)",
		"Final State: ((1))",
		"States(2): 0..1",
		"Alphabet(1): a",
		"Transition Function(1):",
		"(0, a) --> 1",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q:\n%s", want, dump)
		}
	}
}
