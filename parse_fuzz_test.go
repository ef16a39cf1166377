//go:build go1.18
// +build go1.18

package intexpr_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/intexpr"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("x--1")
	f.Add("high -low(y) * z")
	f.Add("highlight(x)")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := intexpr.Parse(s)
		if err != nil {
			var serr *intexpr.SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("%q: error %#v is not *SyntaxError", s, err)
			}
			if serr.SnippetOffset < 0 || serr.SnippetOffset > len([]rune(serr.Snippet)) {
				t.Errorf("%q: snippet offset %d outside %q", s, serr.SnippetOffset, serr.Snippet)
			}
			return
		}
		b, err := intexpr.Parse(a.String())
		if err != nil {
			t.Fatalf("%q -> %q failed to parse: %v", s, a.String(), err)
		}
		if a.String() != b.String() {
			t.Errorf("%q formats as %q, which formats as %q", s, a.String(), b.String())
		}
	})
}
