package syntax

import "fmt"

// ErrorCode identifies the kind of pattern error. The codes double as the
// human-readable message.
type ErrorCode string

const (
	// ErrMalformedEscape is returned for an escape marker at the end of
	// the pattern with nothing following it.
	ErrMalformedEscape ErrorCode = "dangling escape at end of pattern"
	// ErrUnbalancedParens is returned for an open group without a matching
	// close, or a close without a matching open.
	ErrUnbalancedParens ErrorCode = "unbalanced parenthesis"
	// ErrEmptyExpression is returned when there is nothing to parse: an
	// empty pattern, a pattern of only whitespace or empty-word markers,
	// or an empty group.
	ErrEmptyExpression ErrorCode = "empty expression"
	// ErrUnexpectedOperator is returned for an operator appearing where an
	// operand is required.
	ErrUnexpectedOperator ErrorCode = "operator is missing an operand"
)

// An Error describes a failure to parse a regular expression and gives the
// offending pattern. All parse failures indicate a malformed pattern, not a
// program fault, and are recoverable by the caller.
type Error struct {
	Code ErrorCode
	Expr string
}

func (e *Error) Error() string {
	return fmt.Sprintf("error parsing regexp: %v in `%v`", string(e.Code), e.Expr)
}

// parser is a recursive-descent parser with a single token of lookahead,
// one method per precedence level:
//
//	Expr   := Term ('|' Term)*
//	Term   := Factor (Factor)*        concatenation is juxtaposition
//	Factor := Base ('*')*
//	Base   := literal | '(' Expr ')'
type parser struct {
	lex     *lexer
	look    token
	pattern string
	depth   int // open groups surrounding the current position
}

// Parse converts a pattern in infix notation into an expression tree.
func Parse(pattern string) (*RegexTree, error) {
	p := &parser{lex: newLexer(pattern), pattern: pattern}
	if err := p.scan(); err != nil {
		return nil, err
	}
	if p.look.typ == tEOF {
		return nil, p.newError(ErrEmptyExpression)
	}
	root, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.look.typ == tRParen {
		return nil, p.newError(ErrUnbalancedParens)
	}
	return &RegexTree{Root: root, Pattern: pattern}, nil
}

func (p *parser) scan() error {
	tok, lerr := p.lex.next()
	if lerr != nil {
		return lerr
	}
	p.look = tok
	return nil
}

func (p *parser) newError(code ErrorCode) *Error {
	return &Error{Code: code, Expr: p.pattern}
}

func (p *parser) parseAlternation() (*RegexNode, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tUnion {
		if err := p.scan(); err != nil {
			return nil, err
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = newBinaryNode(NtAlternate, left, right)
	}
	return left, nil
}

func (p *parser) parseConcat() (*RegexNode, error) {
	left, err := p.parseStar()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tChar || p.look.typ == tLParen {
		right, err := p.parseStar()
		if err != nil {
			return nil, err
		}
		left = newBinaryNode(NtConcat, left, right)
	}
	return left, nil
}

func (p *parser) parseStar() (*RegexNode, error) {
	base, err := p.parseBase()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tStar {
		// a** denotes the same language as a*; fold repeated stars
		if base.T != NtStar {
			base = newUnaryNode(NtStar, base)
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
	}
	return base, nil
}

func (p *parser) parseBase() (*RegexNode, error) {
	switch p.look.typ {
	case tChar:
		n := newLiteralNode(p.look.ch)
		if err := p.scan(); err != nil {
			return nil, err
		}
		return n, nil
	case tLParen:
		if err := p.scan(); err != nil {
			return nil, err
		}
		if p.look.typ == tRParen {
			return nil, p.newError(ErrEmptyExpression)
		}
		p.depth++
		inner, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, p.newError(ErrUnbalancedParens)
		}
		p.depth--
		if err := p.scan(); err != nil {
			return nil, err
		}
		return inner, nil
	case tRParen:
		// inside an open group the ')' closes an operand position that was
		// never filled, as in (a|); only at depth zero is it a stray close
		if p.depth > 0 {
			return nil, p.newError(ErrUnexpectedOperator)
		}
		return nil, p.newError(ErrUnbalancedParens)
	default:
		// tStar, tUnion, or EOF after '|': an operand is required here
		return nil, p.newError(ErrUnexpectedOperator)
	}
}
