/*
Package syntax implements the three stages behind nfaregex.Compile: a
normalizing tokenizer, a recursive-descent parser producing an expression
tree, and a Thompson-construction compiler producing a nondeterministic
finite automaton. The NFA is immutable once built; matching against it is
the job of the parent package.
*/
package syntax

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
