package intexpr

import (
	"sort"
	"strings"
)

// Expr = Add
// Add = Mul { ('+' | '-') Mul }
// Mul = Unary { ('*' | '/') Unary }
// Unary = '(' Add ')' | const | var | '-' Unary | 'high' Unary | 'low' Unary
// var = 'x' | 'y' | 'z'

// Expr is a parsed expression that can be evaluated for any x, y, and z.
// An Expr is immutable and safe to evaluate concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names used in the expression.
	names []string
}

// Parse parses an expression so it can be evaluated. The entire input must be
// a single expression. Errors from invalid input are *SyntaxError.
func Parse(src string) (*Expr, error) {
	scan := lex(src)
	n, err := parseadd(scan)
	if err != nil {
		return nil, err
	}
	if tok := scan.tok; tok.kind != tokenEOF {
		return nil, scan.error(InvalidExpression, tok.pos, tok.text)
	}
	seen := make(map[rune]bool, 3)
	n.vars(seen)
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(seen)),
	}
	for k := range seen {
		ex.names = append(ex.names, string(k))
	}
	sort.Strings(ex.names)
	return &ex, nil
}

// parseadd parses a sum of products. When it returns without error, the
// current token is the first one not part of the sum.
func parseadd(scan *lexer) (*node, error) {
	n, err := parsemul(scan)
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch scan.tok.kind {
		case tokenAdd:
			kind = nodeAdd
		case tokenSub:
			kind = nodeSub
		default:
			return n, nil
		}
		rhs, err := parsemul(scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parsemul parses a product of unary terms.
func parsemul(scan *lexer) (*node, error) {
	n, err := parseunary(scan)
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch scan.tok.kind {
		case tokenMul:
			kind = nodeMul
		case tokenDiv:
			kind = nodeDiv
		default:
			return n, nil
		}
		rhs, err := parseunary(scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parseunary scans the next token and parses the operand it begins, leaving
// the token after the operand current.
func parseunary(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenOpen:
		n, err = parseadd(scan)
		if err != nil {
			return nil, err
		}
		if end := scan.tok; end.kind != tokenClose {
			return nil, scan.error(MissingClosingBracket, end.pos, end.text)
		}
	case tokenConst:
		n = &node{kind: nodeConst, val: tok.val}
	case tokenVar:
		n = &node{kind: nodeVar, name: []rune(tok.text)[0]}
	case tokenNeg, tokenHigh, tokenLow:
		// Prefix operators bind to the next operand only: -x*y is (-x)*y.
		rhs, err := parseunary(scan)
		if err != nil {
			return nil, err
		}
		return &node{kind: unop(tok.kind), left: rhs}, nil
	case tokenEOF, tokenClose:
		return nil, scan.error(MissingOperand, tok.pos, tok.text)
	default:
		return nil, scan.error(InvalidExpression, tok.pos, tok.text)
	}
	if _, err := scan.next(); err != nil {
		return nil, err
	}
	return n, nil
}

// unop gets the node kind for a prefix operator token.
func unop(k tokenKind) nodeKind {
	switch k {
	case tokenNeg:
		return nodeNeg
	case tokenHigh:
		return nodeHigh
	case tokenLow:
		return nodeLow
	default:
		panic("intexpr: not a unary operator: " + k.String())
	}
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression with every
// operation bracketed. Parsing the result produces an identical expression.
func (e *Expr) String() string {
	return e.n.String()
}

// Prefix formats the expression in prefix notation, e.g. "(+ x (negate y))".
func (e *Expr) Prefix() string {
	var b strings.Builder
	e.n.polish(&b, false)
	return b.String()
}

// Postfix formats the expression in postfix notation, e.g. "(x (y negate) +)".
func (e *Expr) Postfix() string {
	var b strings.Builder
	e.n.polish(&b, true)
	return b.String()
}
