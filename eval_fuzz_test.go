//go:build go1.18
// +build go1.18

package intexpr_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/intexpr"
)

func FuzzEval(f *testing.F) {
	f.Add("x", int32(1), int32(2), int32(3))
	f.Add("x*y*z", int32(2147483647), int32(2), int32(1))
	f.Add("x/y", int32(-2147483648), int32(-1), int32(0))
	f.Fuzz(func(t *testing.T, s string, x, y, z int32) {
		a, err := intexpr.Parse(s)
		if err != nil {
			return
		}
		r, err := a.Eval(x, y, z)
		if err != nil {
			if !errors.Is(err, intexpr.ErrOverflow) {
				t.Fatalf("%q at (%d, %d, %d): error %v is not overflow", s, x, y, z, err)
			}
			return
		}
		if q, _ := a.Eval(x, y, z); q != r {
			t.Errorf("%q at (%d, %d, %d): evaluated to %d then %d", s, x, y, z, r, q)
		}
	})
}
