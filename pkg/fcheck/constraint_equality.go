package fcheck

// EqualityConstraint enforces v0 = v1. It is a specialization of
// OpConstraint(v0, v1, OpEqual, 0) kept as its own kind because the
// narrowing it needs is symmetric and simpler to express directly.
type EqualityConstraint struct {
	V0, V1 VarId
}

// NewEquality constructs an EqualityConstraint enforcing v0 = v1.
func NewEquality(v0, v1 VarId) EqualityConstraint {
	return EqualityConstraint{V0: v0, V1: v1}
}

func (c EqualityConstraint) Vars() []VarId { return []VarId{c.V0, c.V1} }

func (c EqualityConstraint) Evaluate(instVars []int, _ VarId) Eval {
	v0, v1 := instVars[c.V0], instVars[c.V1]
	if v0 == Unassigned || v1 == Unassigned {
		return NA
	}
	return evalBool(v0 == v1)
}

func (c EqualityConstraint) Propagate(a *Assignment, _ VarId) bool {
	v0, v1 := a.instValue(c.V0), a.instValue(c.V1)
	if v0 == Unassigned && v1 != Unassigned {
		return a.narrow(c.V0, a.currentDomains[c.V0].Intersect(v1))
	}
	if v1 == Unassigned && v0 != Unassigned {
		return a.narrow(c.V1, a.currentDomains[c.V1].Intersect(v0))
	}
	return true
}
