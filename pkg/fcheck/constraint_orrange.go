package fcheck

// OrRangeConstraint enforces v0 in [lo, hi) OR v1 in [lo, hi).
//
// Propagation is intentionally a no-op: arc consistency over a
// disjunction of range memberships requires case-splitting reasoning this
// engine does not perform. Evaluation is still exact; this is documented
// to prevent misreading the no-op as a bug.
type OrRangeConstraint struct {
	V0, V1 VarId
	Lo, Hi int
}

// NewOrRange constructs an OrRangeConstraint enforcing
// v0 in [lo, hi) or v1 in [lo, hi).
func NewOrRange(v0, v1 VarId, lo, hi int) OrRangeConstraint {
	return OrRangeConstraint{V0: v0, V1: v1, Lo: lo, Hi: hi}
}

func (c OrRangeConstraint) Vars() []VarId { return []VarId{c.V0, c.V1} }

func inRange(v, lo, hi int) bool { return v >= lo && v < hi }

func (c OrRangeConstraint) Evaluate(instVars []int, _ VarId) Eval {
	v0, v1 := instVars[c.V0], instVars[c.V1]
	if v0 == Unassigned || v1 == Unassigned {
		return NA
	}
	return evalBool(inRange(v0, c.Lo, c.Hi) || inRange(v1, c.Lo, c.Hi))
}

func (c OrRangeConstraint) Propagate(_ *Assignment, _ VarId) bool { return true }
