package intexpr

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// val is the value of a nodeConst.
	val int32
	// name is the variable of a nodeVar.
	name rune

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // val
	nodeVar   // lookup(name)

	nodeNeg  // evaluate left, then negate
	nodeHigh // evaluate left, keep highest set bit
	nodeLow  // evaluate left, keep lowest set bit

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

var nodeNames = [...]string{
	nodeNone:  "None",
	nodeConst: "Const",
	nodeVar:   "Var",
	nodeNeg:   "Neg",
	nodeHigh:  "High",
	nodeLow:   "Low",
	nodeAdd:   "Add",
	nodeSub:   "Sub",
	nodeMul:   "Mul",
	nodeDiv:   "Div",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeNames[k]
}

// unary returns whether nodes of kind k use only left.
func (k nodeKind) unary() bool {
	return k == nodeNeg || k == nodeHigh || k == nodeLow
}

// binary returns whether nodes of kind k use both left and right.
func (k nodeKind) binary() bool {
	return nodeAdd <= k && k <= nodeDiv
}

// op returns the operator text for k.
func (k nodeKind) op() string {
	switch k {
	case nodeNeg:
		return "-"
	case nodeHigh:
		return "high"
	case nodeLow:
		return "low"
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	default:
		panic("intexpr: no operator for node kind " + k.String())
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n in infix form such that parsing the result produces the same
// tree. Binary operations and negative constants are always parenthesized.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeConst:
		if n.val < 0 {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		b.WriteString(strconv.FormatInt(int64(n.val), 10))
	case nodeVar:
		b.WriteRune(n.name)
	case nodeNeg, nodeHigh, nodeLow:
		b.WriteString(n.kind.op())
		if n.left.parenthesized() {
			n.left.fmt(b)
			return
		}
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.op())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("intexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// parenthesized returns whether fmt wraps n in brackets.
func (n *node) parenthesized() bool {
	return n.kind.binary() || n.kind == nodeConst && n.val < 0
}

// polish writes n in prefix or postfix form, with every operation
// parenthesized and unary minus spelled "negate".
func (n *node) polish(b *strings.Builder, post bool) {
	switch n.kind {
	case nodeConst:
		b.WriteString(strconv.FormatInt(int64(n.val), 10))
	case nodeVar:
		b.WriteRune(n.name)
	case nodeNeg, nodeHigh, nodeLow, nodeAdd, nodeSub, nodeMul, nodeDiv:
		op := n.kind.op()
		if n.kind == nodeNeg {
			op = "negate"
		}
		b.WriteByte('(')
		if !post {
			b.WriteString(op)
			b.WriteByte(' ')
		}
		n.left.polish(b, post)
		if n.right != nil {
			b.WriteByte(' ')
			n.right.polish(b, post)
		}
		if post {
			b.WriteByte(' ')
			b.WriteString(op)
		}
		b.WriteByte(')')
	default:
		panic("intexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// vars marks the variables used in the tree rooted at n.
func (n *node) vars(seen map[rune]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeVar {
		seen[n.name] = true
	}
	n.left.vars(seen)
	n.right.vars(seen)
}
