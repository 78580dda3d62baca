package syntax

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune
	tStar             // *
	tUnion            // |
	tLParen           // (
	tRParen           // )
)

type token struct {
	typ tokenType
	ch  rune // for tChar
}

// The empty-word marker may be spelled either way; the normalizer strips both.
const (
	emptyWordMarker      = 'ε'
	emptyWordMarkerASCII = '#'
)

// lexer normalizes the raw pattern while tokenizing it: whitespace and
// empty-word markers are dropped, and an escape reclassifies the following
// rune as a literal.
type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) next() (token, *Error) {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += size
		if unicode.IsSpace(r) || r == emptyWordMarker || r == emptyWordMarkerASCII {
			continue
		}
		switch r {
		case '(':
			return token{typ: tLParen}, nil
		case ')':
			return token{typ: tRParen}, nil
		case '*':
			return token{typ: tStar}, nil
		case '|':
			return token{typ: tUnion}, nil
		case '\\':
			if l.pos >= len(l.input) {
				return token{}, &Error{Code: ErrMalformedEscape, Expr: l.input}
			}
			r2, s2 := utf8.DecodeRuneInString(l.input[l.pos:])
			l.pos += s2
			return token{typ: tChar, ch: r2}, nil
		default:
			return token{typ: tChar, ch: r}, nil
		}
	}
	return token{typ: tEOF}, nil
}

// isMetachar reports whether r cannot stand for itself in a pattern.
func isMetachar(r rune) bool {
	switch r {
	case '*', '|', '(', ')', '\\', emptyWordMarker, emptyWordMarkerASCII:
		return true
	}
	return unicode.IsSpace(r)
}

// Normalize returns the pattern as the parser will see it: whitespace and
// empty-word markers stripped, escapes preserved only where the literal
// would otherwise read as an operator.
func Normalize(pattern string) (string, error) {
	l := newLexer(pattern)
	var sb strings.Builder
	for {
		tok, err := l.next()
		if err != nil {
			return "", err
		}
		switch tok.typ {
		case tEOF:
			return sb.String(), nil
		case tLParen:
			sb.WriteRune('(')
		case tRParen:
			sb.WriteRune(')')
		case tStar:
			sb.WriteRune('*')
		case tUnion:
			sb.WriteRune('|')
		case tChar:
			if isMetachar(tok.ch) {
				sb.WriteRune('\\')
			}
			sb.WriteRune(tok.ch)
		}
	}
}

// Escape returns a pattern that matches input literally, escaping every
// rune the lexer would otherwise treat as an operator or strip.
func Escape(input string) string {
	b := &bytes.Buffer{}
	for _, r := range input {
		if isMetachar(r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
