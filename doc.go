// Package intexpr implements a 32-bit integer calculator over the variables
// x, y, and z which refuses to overflow.
//
// Expressions use the usual infix operators + - * / with parentheses, plus the
// prefix operators - (negation), "high" (keep only the highest set bit), and
// "low" (keep only the lowest set bit). "x--1" is "x - (-1)", and "-x*y" is
// "(-x) * y", because prefix operators bind tighter than any binary operator.
//
// Parse an expression once and evaluate it for as many inputs as you like.
// Every arithmetic step is checked, so evaluation either produces the exact
// mathematical result or an *OverflowError.
//
package intexpr
