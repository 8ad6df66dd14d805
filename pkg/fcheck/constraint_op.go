package fcheck

// OpConstraint enforces v0 op (v1 + offset) for op in
// {=, !=, >=, >, <=, <}.
type OpConstraint struct {
	V0, V1 VarId
	Op     Op
	Offset int
}

// NewOp constructs an OpConstraint enforcing v0 op (v1 + offset).
func NewOp(v0 VarId, op Op, v1 VarId, offset int) OpConstraint {
	return OpConstraint{V0: v0, V1: v1, Op: op, Offset: offset}
}

func (c OpConstraint) Vars() []VarId { return []VarId{c.V0, c.V1} }

func compareOp(op Op, lhs, rhs int) bool {
	switch op {
	case OpEqual:
		return lhs == rhs
	case OpNotEqual:
		return lhs != rhs
	case OpGreaterEqual:
		return lhs >= rhs
	case OpGreater:
		return lhs > rhs
	case OpLessEqual:
		return lhs <= rhs
	case OpLess:
		return lhs < rhs
	default:
		return false
	}
}

func mirrorOp(op Op) Op {
	switch op {
	case OpGreaterEqual:
		return OpLessEqual
	case OpGreater:
		return OpLess
	case OpLessEqual:
		return OpGreaterEqual
	case OpLess:
		return OpGreater
	default:
		return op // Equal/NotEqual are self-mirroring
	}
}

// narrowToBound returns the domain of values satisfying "x op bound".
func narrowToBound(dom Domain, op Op, bound int) Domain {
	switch op {
	case OpEqual:
		return dom.Intersect(bound)
	case OpNotEqual:
		return dom.Exclude(bound)
	case OpGreaterEqual:
		return dom.ExcludeInf(bound)
	case OpGreater:
		return dom.ExcludeInf(bound + 1)
	case OpLessEqual:
		return dom.ExcludeSup(bound + 1)
	case OpLess:
		return dom.ExcludeSup(bound)
	default:
		return dom
	}
}

func (c OpConstraint) Evaluate(instVars []int, _ VarId) Eval {
	v0, v1 := instVars[c.V0], instVars[c.V1]
	if v0 == Unassigned || v1 == Unassigned {
		return NA
	}
	return evalBool(compareOp(c.Op, v0, v1+c.Offset))
}

func (c OpConstraint) Propagate(a *Assignment, _ VarId) bool {
	v0, v1 := a.instValue(c.V0), a.instValue(c.V1)
	if v0 == Unassigned && v1 == Unassigned {
		return true
	}
	if v0 == Unassigned {
		bound := v1 + c.Offset
		return a.narrow(c.V0, narrowToBound(a.currentDomains[c.V0], c.Op, bound))
	}
	if v1 == Unassigned {
		bound := v0 - c.Offset
		return a.narrow(c.V1, narrowToBound(a.currentDomains[c.V1], mirrorOp(c.Op), bound))
	}
	return true
}
