package syntax

import "testing"

func TestNormalize_Basic(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"ab", "ab"},
		{"a b", "ab"},
		{" a\tb \n", "ab"},
		{"εa", "a"},
		{"#a", "a"},
		{"ε", ""},
		{`\*a`, `\*a`},
		{`\|`, `\|`},
		{`\(\)`, `\(\)`},
		{`\a`, "a"}, // escape on an ordinary rune is dropped
		{`\\`, `\\`},
		{`\ `, `\ `}, // escaped whitespace survives normalization
		{`\ε`, `\ε`},
		{"(a|b)*", "(a|b)*"},
	}
	for _, c := range cases {
		got, err := Normalize(c.pattern)
		if err != nil {
			t.Errorf("Normalize(%q): unexpected error: %v", c.pattern, err)
			continue
		}
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.pattern, got, c.want)
		}
	}
}

func TestNormalize_DanglingEscape(t *testing.T) {
	_, err := Normalize(`ab\`)
	if err == nil {
		t.Fatal("expected error for dangling escape")
	}
	if want, got := ErrMalformedEscape, err.(*Error).Code; want != got {
		t.Fatalf("Wanted '%v'\nGot '%v'", want, got)
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"a*b", `a\*b`},
		{"(a|b)", `\(a\|b\)`},
		{"a b", `a\ b`},
		{`a\b`, `a\\b`},
		{"εab#", `\εab\#`},
	}
	for _, c := range cases {
		if got := Escape(c.input); got != c.want {
			t.Errorf("Escape(%q) = %q, want %q", c.input, got, c.want)
		}
		// escaping and re-normalizing must preserve every original rune
		norm, err := Normalize(Escape(c.input))
		if err != nil {
			t.Errorf("Normalize(Escape(%q)): unexpected error: %v", c.input, err)
		} else if want := Escape(c.input); norm != want {
			t.Errorf("Normalize(Escape(%q)) = %q, want %q", c.input, norm, want)
		}
	}
}

func TestLexer_TokenStream(t *testing.T) {
	l := newLexer(`a(b|c)* \*`)
	want := []token{
		{typ: tChar, ch: 'a'},
		{typ: tLParen},
		{typ: tChar, ch: 'b'},
		{typ: tUnion},
		{typ: tChar, ch: 'c'},
		{typ: tRParen},
		{typ: tStar},
		{typ: tChar, ch: '*'},
		{typ: tEOF},
	}
	for i, w := range want {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok != w {
			t.Fatalf("token %d: got %+v, want %+v", i, tok, w)
		}
	}
}
