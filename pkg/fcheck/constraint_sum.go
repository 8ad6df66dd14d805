package fcheck

// SumConstraint enforces sum(Addends) = Target. Propagation is bound
// consistency, not full domain consistency: it narrows each unassigned
// participant using the min/max achievable sum of the others rather than
// enumerating every combination.
type SumConstraint struct {
	Addends []VarId
	Target  VarId
}

// NewSum constructs a SumConstraint enforcing sum(addends) = target.
func NewSum(target VarId, addends ...VarId) SumConstraint {
	a := make([]VarId, len(addends))
	copy(a, addends)
	return SumConstraint{Addends: a, Target: target}
}

func (c SumConstraint) Vars() []VarId {
	vs := make([]VarId, 0, len(c.Addends)+1)
	vs = append(vs, c.Addends...)
	vs = append(vs, c.Target)
	return vs
}

func (c SumConstraint) Evaluate(instVars []int, _ VarId) Eval {
	total := 0
	for _, v := range c.Addends {
		val := instVars[v]
		if val == Unassigned {
			return NA
		}
		total += val
	}
	tgt := instVars[c.Target]
	if tgt == Unassigned {
		return NA
	}
	return evalBool(total == tgt)
}

func (c SumConstraint) Propagate(a *Assignment, _ VarId) bool {
	minTotal, maxTotal := 0, 0
	for _, v := range c.Addends {
		d := a.currentDomains[v]
		minTotal += d.Min()
		maxTotal += d.Max()
	}

	if a.instValue(c.Target) == Unassigned {
		tgtDom := a.currentDomains[c.Target]
		if !a.narrow(c.Target, tgtDom.IntersectRange(minTotal, maxTotal+1)) {
			return false
		}
	}

	tgt := a.instValue(c.Target)
	if tgt == Unassigned {
		return true
	}

	for _, v := range c.Addends {
		if a.instValue(v) != Unassigned {
			continue
		}
		d := a.currentDomains[v]
		lo := tgt - (maxTotal - d.Max())
		hi := tgt - (minTotal - d.Min()) + 1
		if !a.narrow(v, d.IntersectRange(lo, hi)) {
			return false
		}
	}
	return true
}
