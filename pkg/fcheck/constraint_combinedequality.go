package fcheck

// CombinedEqualityConstraint enforces v0 = v1 + v2 - v3.
//
// Propagation must read v3's own instantiated value when computing the
// bound for v0; substituting v2's value for v3's is a distinct bug from
// the arithmetic this constraint documents, so the two are kept clearly
// separate below.
type CombinedEqualityConstraint struct {
	V0, V1, V2, V3 VarId
}

// NewCombinedEquality constructs a CombinedEqualityConstraint enforcing
// v0 = v1 + v2 - v3.
func NewCombinedEquality(v0, v1, v2, v3 VarId) CombinedEqualityConstraint {
	return CombinedEqualityConstraint{V0: v0, V1: v1, V2: v2, V3: v3}
}

func (c CombinedEqualityConstraint) Vars() []VarId {
	return []VarId{c.V0, c.V1, c.V2, c.V3}
}

func (c CombinedEqualityConstraint) Evaluate(instVars []int, _ VarId) Eval {
	v0, v1, v2, v3 := instVars[c.V0], instVars[c.V1], instVars[c.V2], instVars[c.V3]
	if v0 == Unassigned || v1 == Unassigned || v2 == Unassigned || v3 == Unassigned {
		return NA
	}
	return evalBool(v0 == v1+v2-v3)
}

// Propagate only narrows v0 when v1, v2, v3 are all assigned but v0 is
// not; the other three-assigned patterns are left unhandled.
func (c CombinedEqualityConstraint) Propagate(a *Assignment, _ VarId) bool {
	v0 := a.instValue(c.V0)
	v1, v2, v3 := a.instValue(c.V1), a.instValue(c.V2), a.instValue(c.V3)
	if v0 == Unassigned && v1 != Unassigned && v2 != Unassigned && v3 != Unassigned {
		return a.narrow(c.V0, a.currentDomains[c.V0].Intersect(v1+v2-v3))
	}
	return true
}
