package fcheck

// AllDifferentConstraint enforces that every participant takes a
// pairwise-distinct value. Propagation is plain pairwise exclusion (not
// the Hall-interval / Régin algorithm) — sufficient for forward checking.
type AllDifferentConstraint struct {
	VarIds []VarId
}

// NewAllDifferent constructs an AllDifferentConstraint over vars.
func NewAllDifferent(vars ...VarId) AllDifferentConstraint {
	vs := make([]VarId, len(vars))
	copy(vs, vars)
	return AllDifferentConstraint{VarIds: vs}
}

func (c AllDifferentConstraint) Vars() []VarId { return c.VarIds }

// Evaluate checks the variable named by lastAssigned against every other
// currently-assigned participant: unlike most kinds it does not wait for
// every participant to be instantiated, so it can reject a contradiction
// (e.g. two fixed variables sharing a value) as soon as the second one is
// assigned rather than waiting for the whole group.
func (c AllDifferentConstraint) Evaluate(instVars []int, lastAssigned VarId) Eval {
	lastVal := instVars[lastAssigned]
	if lastVal == Unassigned {
		return NA
	}
	for _, w := range c.VarIds {
		if w == lastAssigned {
			continue
		}
		if instVars[w] != Unassigned && instVars[w] == lastVal {
			return Failed
		}
	}
	return Passed
}

func (c AllDifferentConstraint) Propagate(a *Assignment, lastAssigned VarId) bool {
	val := a.instValue(lastAssigned)
	if val == Unassigned {
		return true
	}
	for _, w := range c.VarIds {
		if w == lastAssigned {
			continue
		}
		if a.instValue(w) == Unassigned {
			if !a.narrow(w, a.currentDomains[w].Exclude(val)) {
				return false
			}
		}
	}
	return true
}
