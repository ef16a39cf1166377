package intexpr

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// lexall scans src to EOF or the first error.
func lexall(src string) ([]lexToken, error) {
	scan := lex(src)
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []lexToken
	}{
		// spaces
		{"empty", "", []lexToken{{kind: tokenEOF}}},
		{"spaces", " \t \r\n ", []lexToken{{kind: tokenEOF, pos: 6}}},
		// numbers
		{"zero", "0", []lexToken{{text: "0", kind: tokenConst, pos: 0}, {kind: tokenEOF, pos: 1}}},
		{"max", "2147483647", []lexToken{{text: "2147483647", kind: tokenConst, val: 2147483647}, {kind: tokenEOF, pos: 10}}},
		{"min", "-2147483648", []lexToken{{text: "-2147483648", kind: tokenConst, val: -2147483648}, {kind: tokenEOF, pos: 11}}},
		{"negconst", "-1", []lexToken{{text: "-1", kind: tokenConst, val: -1}, {kind: tokenEOF, pos: 2}}},
		{"negspace", "- 1", []lexToken{{text: "-", kind: tokenNeg}, {text: "1", kind: tokenConst, val: 1, pos: 2}, {kind: tokenEOF, pos: 3}}},
		{"negneg", "--1", []lexToken{{text: "-", kind: tokenNeg}, {text: "-1", kind: tokenConst, val: -1, pos: 1}, {kind: tokenEOF, pos: 3}}},
		// variables
		{"x", "x", []lexToken{{text: "x", kind: tokenVar}, {kind: tokenEOF, pos: 1}}},
		{"negx", "-x", []lexToken{{text: "-", kind: tokenNeg}, {text: "x", kind: tokenVar, pos: 1}, {kind: tokenEOF, pos: 2}}},
		// operators
		{"add", "1+z", []lexToken{
			{text: "1", kind: tokenConst, val: 1},
			{text: "+", kind: tokenAdd, pos: 1},
			{text: "z", kind: tokenVar, pos: 2},
			{kind: tokenEOF, pos: 3},
		}},
		{"sub", "y-1", []lexToken{
			{text: "y", kind: tokenVar},
			{text: "-", kind: tokenSub, pos: 1},
			{text: "1", kind: tokenConst, val: 1, pos: 2},
			{kind: tokenEOF, pos: 3},
		}},
		{"subneg", "x--1", []lexToken{
			{text: "x", kind: tokenVar},
			{text: "-", kind: tokenSub, pos: 1},
			{text: "-1", kind: tokenConst, val: -1, pos: 2},
			{kind: tokenEOF, pos: 4},
		}},
		{"subnegx", "1--x", []lexToken{
			{text: "1", kind: tokenConst, val: 1},
			{text: "-", kind: tokenSub, pos: 1},
			{text: "-", kind: tokenNeg, pos: 2},
			{text: "x", kind: tokenVar, pos: 3},
			{kind: tokenEOF, pos: 4},
		}},
		{"closesub", "(x)-1", []lexToken{
			{text: "(", kind: tokenOpen},
			{text: "x", kind: tokenVar, pos: 1},
			{text: ")", kind: tokenClose, pos: 2},
			{text: "-", kind: tokenSub, pos: 3},
			{text: "1", kind: tokenConst, val: 1, pos: 4},
			{kind: tokenEOF, pos: 5},
		}},
		{"mul-div", "x*y/z", []lexToken{
			{text: "x", kind: tokenVar},
			{text: "*", kind: tokenMul, pos: 1},
			{text: "y", kind: tokenVar, pos: 2},
			{text: "/", kind: tokenDiv, pos: 3},
			{text: "z", kind: tokenVar, pos: 4},
			{kind: tokenEOF, pos: 5},
		}},
		// keywords
		{"high", "high x", []lexToken{{text: "high", kind: tokenHigh}, {text: "x", kind: tokenVar, pos: 5}, {kind: tokenEOF, pos: 6}}},
		{"low-paren", "low(x)", []lexToken{
			{text: "low", kind: tokenLow},
			{text: "(", kind: tokenOpen, pos: 3},
			{text: "x", kind: tokenVar, pos: 4},
			{text: ")", kind: tokenClose, pos: 5},
			{kind: tokenEOF, pos: 6},
		}},
		{"high-neg", "high-1", []lexToken{{text: "high", kind: tokenHigh}, {text: "-1", kind: tokenConst, val: -1, pos: 4}, {kind: tokenEOF, pos: 6}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := lexall(c.src)
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
			if diff := cmp.Diff(c.tokens, got, cmp.AllowUnexported(lexToken{})); diff != "" {
				t.Errorf("scanning %q: wrong tokens (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  *SyntaxError
	}{
		{"symbol", "$", &SyntaxError{Kind: UnknownSymbol, Offset: 0, Text: "$", Snippet: "$", SnippetOffset: 0}},
		{"variable", "x + a", &SyntaxError{Kind: UnknownSymbol, Offset: 4, Text: "a", Snippet: "x + a", SnippetOffset: 4}},
		{"highlight", "highlight(x)", &SyntaxError{Kind: UnknownOperation, Offset: 0, Text: "highlight", Snippet: "highlight(", SnippetOffset: 0}},
		{"hig", "1 + hig", &SyntaxError{Kind: UnknownOperation, Offset: 4, Text: "hig", Snippet: "1 + hig", SnippetOffset: 4}},
		{"lo", "lo", &SyntaxError{Kind: UnknownOperation, Offset: 0, Text: "lo", Snippet: "lo", SnippetOffset: 0}},
		{"high-digit", "high5", &SyntaxError{Kind: UnknownOperation, Offset: 0, Text: "high5", Snippet: "high5", SnippetOffset: 0}},
		{"high-eof", "high", &SyntaxError{Kind: MissingOperand, Offset: 4, Text: "high", Snippet: "high", SnippetOffset: 4}},
		{"minus-eof", "1*-", &SyntaxError{Kind: MissingOperand, Offset: 2, Text: "-", Snippet: "1*-", SnippetOffset: 2}},
		{"const-big", "2147483648", &SyntaxError{Kind: IncorrectConst, Offset: 0, Text: "2147483648", Snippet: "2147483648", SnippetOffset: 0}},
		{"const-small", "x*-2147483649", &SyntaxError{Kind: IncorrectConst, Offset: 2, Text: "-2147483649", Snippet: "x*-214748364", SnippetOffset: 2}},
		{"extra-close", "x)", &SyntaxError{Kind: ExtraClosingBracket, Offset: 1, Text: ")", Snippet: "x)", SnippetOffset: 1}},
		{"const-const", "3 4", &SyntaxError{Kind: MissingOperation, Offset: 2, Text: "4", Snippet: "3 4", SnippetOffset: 2}},
		{"var-var", "xy", &SyntaxError{Kind: MissingOperation, Offset: 1, Text: "y", Snippet: "xy", SnippetOffset: 1}},
		{"close-open", "(x)(y)", &SyntaxError{Kind: MissingOperation, Offset: 3, Text: "(", Snippet: "(x)(y)", SnippetOffset: 3}},
		{"var-high", "x high y", &SyntaxError{Kind: MissingOperation, Offset: 2, Text: "high", Snippet: "x high y", SnippetOffset: 2}},
		{"snippet-clip", "0123456789 + 0123456789 $ 0123456789", &SyntaxError{
			Kind:          UnknownSymbol,
			Offset:        24,
			Text:          "$",
			Snippet:       "123456789 $ 01234567",
			SnippetOffset: 10,
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := lexall(c.src)
			if err == nil {
				t.Fatalf("scanning %q gave no error", c.src)
			}
			var got *SyntaxError
			if !errors.As(err, &got) {
				t.Fatalf("scanning %q: error %#v is not *SyntaxError", c.src, err)
			}
			if diff := cmp.Diff(c.err, got); diff != "" {
				t.Errorf("scanning %q: wrong error (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestLexBracketDepth(t *testing.T) {
	scan := lex("((x)))")
	for i := 0; i < 5; i++ {
		if _, err := scan.next(); err != nil {
			t.Fatalf("token %d: unexpected error %v", i, err)
		}
	}
	if scan.depth != 0 {
		t.Errorf("depth should be 0 after balanced brackets, not %d", scan.depth)
	}
	_, err := scan.next()
	if !errors.Is(err, ExtraClosingBracket) {
		t.Errorf("want extra closing bracket, got %v", err)
	}
}
