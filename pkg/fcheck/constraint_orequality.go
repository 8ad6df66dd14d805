package fcheck

// OrEqualityConstraint enforces v0 = v1 OR v0 = v2.
type OrEqualityConstraint struct {
	V0, V1, V2 VarId
}

// NewOrEquality constructs an OrEqualityConstraint enforcing
// v0 = v1 or v0 = v2.
func NewOrEquality(v0, v1, v2 VarId) OrEqualityConstraint {
	return OrEqualityConstraint{V0: v0, V1: v1, V2: v2}
}

func (c OrEqualityConstraint) Vars() []VarId { return []VarId{c.V0, c.V1, c.V2} }

func (c OrEqualityConstraint) Evaluate(instVars []int, _ VarId) Eval {
	v0, v1, v2 := instVars[c.V0], instVars[c.V1], instVars[c.V2]
	if v0 == Unassigned || v1 == Unassigned || v2 == Unassigned {
		return NA
	}
	return evalBool(v0 == v1 || v0 == v2)
}

// Propagate only narrows v0 when v1 and v2 are both assigned but v0 is
// not; the other assignment patterns would require disjunctive reasoning
// the engine does not attempt.
func (c OrEqualityConstraint) Propagate(a *Assignment, _ VarId) bool {
	v0, v1, v2 := a.instValue(c.V0), a.instValue(c.V1), a.instValue(c.V2)
	if v0 == Unassigned && v1 != Unassigned && v2 != Unassigned {
		return a.narrow(c.V0, a.currentDomains[c.V0].Intersect2(v1, v2))
	}
	return true
}
