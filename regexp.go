/*
Package nfaregex compiles infix regular expressions into nondeterministic
finite automata via Thompson's construction and decides word membership by
epsilon-closure simulation.

The supported operators are '*' (Kleene star), '|' (alternation), implicit
concatenation, grouping with parentheses, and '\' to escape an operator.
There are no backreferences, capture groups, or character classes; a match
always covers the whole word. If you need a feature-complete engine, use
the regexp package from the standard library instead.
*/
package nfaregex

import (
	"strconv"

	"github.com/dlclark/nfaregex/syntax"
)

// Regexp is the representation of a compiled regular expression.
// A Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	// read-only after Compile
	pattern string            // as passed to Compile
	tree    *syntax.RegexTree // kept for renderers
	nfa     *syntax.NFA       // compiled automaton
}

// Compile parses a regular expression and returns, if successful, a Regexp
// object that can be used to test words against it. On a malformed pattern
// the error is a *syntax.Error and no partial automaton is returned.
func Compile(expr string) (*Regexp, error) {
	// parse it
	tree, err := syntax.Parse(expr)
	if err != nil {
		return nil, err
	}

	// translate it to an automaton
	nfa := syntax.Compile(tree)

	// return it
	return &Regexp{
		pattern: expr,
		tree:    tree,
		nfa:     nfa,
	}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables holding compiled regular
// expressions.
func MustCompile(str string) *Regexp {
	regexp, error := Compile(str)
	if error != nil {
		panic(`nfaregex: Compile(` + quote(str) + `): ` + error.Error())
	}
	return regexp
}

// Escape returns a pattern that matches input literally.
func Escape(input string) string {
	return syntax.Escape(input)
}

// String returns the source text used to compile the regular expression.
func (re *Regexp) String() string {
	return re.pattern
}

// Tree returns the parsed expression tree, for renderers.
func (re *Regexp) Tree() *syntax.RegexTree {
	return re.tree
}

// NFA returns the compiled automaton, for renderers.
func (re *Regexp) NFA() *syntax.NFA {
	return re.nfa
}

// MatchString reports whether the word, taken as a whole, belongs to the
// language of the regular expression. It never fails.
func (re *Regexp) MatchString(word string) bool {
	return re.MatchRunes([]rune(word))
}

// MatchRunes reports whether the word, taken as a whole, belongs to the
// language of the regular expression. It never fails.
func (re *Regexp) MatchRunes(word []rune) bool {
	r := borrowRunner(re.nfa)
	defer r.release()
	return r.match(word)
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
