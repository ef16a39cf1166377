package intexpr

import (
	"errors"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Add returns x + y, or an error if the sum does not fit in 32 bits.
func Add(x, y int32) (int32, error) {
	if x > 0 && y > math.MaxInt32-x {
		return 0, overflow("+", "sum of two positive arguments", x, y)
	}
	if x < 0 && y < math.MinInt32-x {
		return 0, overflow("+", "sum of two negative arguments", x, y)
	}
	return x + y, nil
}

// Sub returns x - y, or an error if the difference does not fit in 32 bits.
func Sub(x, y int32) (int32, error) {
	if x >= 0 && y < 0 && y < x-math.MaxInt32 {
		return 0, overflow("-", "subtracting a negative argument from a non-negative one", x, y)
	}
	if x <= 0 && y > 0 && -y < math.MinInt32-x {
		return 0, overflow("-", "subtracting a positive argument from a non-positive one", x, y)
	}
	return x - y, nil
}

// Mul returns x * y, or an error if the product does not fit in 32 bits.
func Mul(x, y int32) (int32, error) {
	switch {
	case x > 0 && y > 0 && y > math.MaxInt32/x:
		return 0, overflow("*", "product of two positive arguments", x, y)
	case x > 0 && y < 0 && y < math.MinInt32/x:
		return 0, overflow("*", "product of a positive and a negative argument", x, y)
	case x < 0 && y > 0 && x < math.MinInt32/y:
		return 0, overflow("*", "product of a negative and a positive argument", x, y)
	case x < 0 && y < 0 && y < math.MaxInt32/x:
		return 0, overflow("*", "product of two negative arguments", x, y)
	}
	return x * y, nil
}

// Div returns x / y truncated toward zero. It returns an error if y is zero
// or the quotient does not fit in 32 bits, which happens only for
// math.MinInt32 / -1.
func Div(x, y int32) (int32, error) {
	if y == 0 {
		return 0, overflow("/", "division by zero", x, y)
	}
	if x == math.MinInt32 && y == -1 {
		return 0, overflow("/", "quotient of the minimum integer and -1", x, y)
	}
	return x / y, nil
}

// Negate returns -x, or an error if x is math.MinInt32.
func Negate(x int32) (int32, error) {
	if x == math.MinInt32 {
		return 0, overflow("-", "negation of the minimum integer", x)
	}
	return -x, nil
}

// High returns x with all but its highest set bit cleared. For negative x,
// that is the sign bit, so the result is math.MinInt32. High(0) is 0.
func High(x int32) int32 {
	if x == 0 {
		return 0
	}
	return int32(uint32(1) << (31 - bits.LeadingZeros32(uint32(x))))
}

// Low returns x with all but its lowest set bit cleared. Low(0) is 0.
func Low(x int32) int32 {
	return x & -x
}

// ErrOverflow is the error that every *OverflowError unwraps to.
var ErrOverflow = errors.New("integer overflow")

// OverflowError is an error indicating that an operation's result does not
// fit in 32 bits. OverflowError unwraps to ErrOverflow.
type OverflowError struct {
	// Op is the operator, one of + - * / for binary operations or - for
	// negation.
	Op string
	// Args is the operands: two for binary operations, one for negation.
	Args []int32
	// Cause describes the combination of operands that overflowed.
	Cause string
}

func overflow(op, cause string, args ...int32) error {
	return &OverflowError{Op: op, Args: args, Cause: cause}
}

func (err *OverflowError) Error() string {
	var b strings.Builder
	b.WriteString("overflow: ")
	b.WriteString(err.Cause)
	switch len(err.Args) {
	case 1:
		b.WriteString(" (")
		b.WriteString(err.Op)
		b.WriteByte('(')
		b.WriteString(strconv.FormatInt(int64(err.Args[0]), 10))
		b.WriteString("))")
	case 2:
		b.WriteString(" (")
		b.WriteString(strconv.FormatInt(int64(err.Args[0]), 10))
		b.WriteByte(' ')
		b.WriteString(err.Op)
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(int64(err.Args[1]), 10))
		b.WriteByte(')')
	}
	return b.String()
}

func (err *OverflowError) Unwrap() error {
	return ErrOverflow
}
