package intexpr

// Eval evaluates the expression with the given variable values. If any
// operation overflows, the result is 0 and an *OverflowError.
func (e *Expr) Eval(x, y, z int32) (int32, error) {
	return e.n.eval(x, y, z)
}

// eval computes the node's value. Operands are evaluated left to right, and
// the first error stops evaluation.
func (n *node) eval(x, y, z int32) (int32, error) {
	switch n.kind {
	case nodeConst:
		return n.val, nil
	case nodeVar:
		switch n.name {
		case 'x':
			return x, nil
		case 'y':
			return y, nil
		case 'z':
			return z, nil
		default:
			panic("intexpr: invalid variable " + string(n.name))
		}
	case nodeNeg:
		v, err := n.left.eval(x, y, z)
		if err != nil {
			return 0, err
		}
		return Negate(v)
	case nodeHigh:
		v, err := n.left.eval(x, y, z)
		if err != nil {
			return 0, err
		}
		return High(v), nil
	case nodeLow:
		v, err := n.left.eval(x, y, z)
		if err != nil {
			return 0, err
		}
		return Low(v), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		l, err := n.left.eval(x, y, z)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(x, y, z)
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return Add(l, r)
		case nodeSub:
			return Sub(l, r)
		case nodeMul:
			return Mul(l, r)
		default:
			return Div(l, r)
		}
	default:
		panic("intexpr: invalid AST node " + n.kind.String())
	}
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, x, y, z int32) (int32, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(x, y, z)
}
