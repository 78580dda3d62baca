package nfaregex

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/dlclark/nfaregex/syntax"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// runner simulates one NFA against one word. It keeps the active-state
// sets and visited marks as reusable scratch, so a runner is cheap to use
// for many words in a row. The NFA itself is never written to.
type runner struct {
	nfa  *syntax.NFA
	cur  []int  // active states
	next []int  // states reached on the current symbol
	mark []bool // membership marks for the set under construction
}

func (r *runner) reset(nfa *syntax.NFA) {
	r.nfa = nfa
	if cap(r.mark) < nfa.NumStates() {
		r.mark = make([]bool, nfa.NumStates())
		r.cur = make([]int, 0, nfa.NumStates())
		r.next = make([]int, 0, nfa.NumStates())
	}
	r.mark = r.mark[:nfa.NumStates()]
}

func (r *runner) clearMarks() {
	for i := range r.mark {
		r.mark[i] = false
	}
}

// match decides whole-word acceptance. The active set starts as the
// epsilon-closure of the start state; each symbol steps along matching
// labeled arcs and closes again. An empty set can never grow back, so it
// rejects immediately.
func (r *runner) match(word []rune) bool {
	cur := r.cur[:0]
	r.clearMarks()
	start := r.nfa.StartState()
	r.mark[start] = true
	cur = append(cur, start)
	cur = r.closure(cur)

	for _, sym := range word {
		next := r.next[:0]
		r.clearMarks()
		for _, s := range cur {
			for _, t := range r.nfa.SymbolTargets(s, sym) {
				if !r.mark[t] {
					r.mark[t] = true
					next = append(next, t)
				}
			}
		}
		if len(next) == 0 {
			CT().Debugf("no active states left after %q, rejecting", sym)
			r.cur, r.next = cur[:0], next
			return false
		}
		next = r.closure(next)
		cur, r.next = next, cur
	}

	r.cur = cur
	return r.mark[r.nfa.AcceptState()]
}

// closure extends set to its epsilon-closure in place. set already carries
// marks for its members; the work-list only appends unmarked states, so
// the Star back-edge cycles terminate.
func (r *runner) closure(set []int) []int {
	for i := 0; i < len(set); i++ {
		for _, t := range r.nfa.EpsilonTargets(set[i]) {
			if !r.mark[t] {
				r.mark[t] = true
				set = append(set, t)
			}
		}
	}
	return set
}

// Runners are short-lived scratch objects. To avoid re-allocating the
// active-set buffers on every match we pool them.
type runnerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRunnerPool *runnerPool

func init() {
	globalRunnerPool = &runnerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &runner{}, nil
		})
	globalRunnerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRunnerPool.opool = pool.NewObjectPool(globalRunnerPool.ctx, factory, config)
}

// borrowRunner returns a runner sized for the given automaton, taken from
// the pool.
func borrowRunner(nfa *syntax.NFA) *runner {
	o, _ := globalRunnerPool.opool.BorrowObject(globalRunnerPool.ctx)
	r := o.(*runner)
	r.reset(nfa)
	return r
}

// release detaches the runner from its automaton and puts it back into the
// pool. The scratch buffers are kept for reuse.
func (r *runner) release() {
	r.nfa = nil
	_ = globalRunnerPool.opool.ReturnObject(globalRunnerPool.ctx, r)
}
