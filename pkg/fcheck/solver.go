package fcheck

// ForwardCheckingStep is the recursive search engine: chronological
// backtracking where each tentative assignment is validated against every
// linked constraint and, on success, propagated through the same
// constraints to narrow the domains of still-unassigned neighbours before
// recursing.
//
// It returns true iff a is left holding a complete satisfying assignment.
// A false return means the instance rooted at a's current state is
// unsatisfiable; a is left with every variable unassigned and an empty
// saved-domain stack when called at the top level.
//
// It returns ErrNotFinalized if m has not been finalized, and
// ErrInvalidVarID if a was not reset from m.
func (m *Model) ForwardCheckingStep(a *Assignment) (bool, error) {
	if !m.finalized {
		return false, ErrNotFinalized
	}
	if a.model != m {
		return false, ErrInvalidVarID
	}
	return m.step(a), nil
}

func (m *Model) step(a *Assignment) bool {
	if a.IsComplete() {
		return true
	}

	a.pushStep()

	vid := a.NextUnassignedVar()
	dom := a.currentDomains[vid]
	v := &m.variables[vid]

	found := false
	dom.ForEach(func(val int) bool {
		a.assignVar(vid, val)

		if !m.validateConstraints(a, v, vid) {
			a.unassignVar(vid)
			return true // next candidate
		}

		if !m.propagateConstraints(a, v, vid) {
			a.unassignVar(vid)
			a.RestoreSavedDomainStep()
			if a.statsEnabled {
				a.Stats.Backtracks++
			}
			return true // next candidate
		}

		if m.step(a) {
			found = true
			return false // stop: success bubbles up, assignment stays in place
		}

		a.unassignVar(vid)
		a.RestoreSavedDomainStep()
		if a.statsEnabled {
			a.Stats.Backtracks++
		}
		return true // next candidate
	})

	if found {
		return true
	}

	a.popStep()
	return false
}

// validateConstraints evaluates every constraint linked to v, in
// insertion order, against the current (already-assigned) instVars.
func (m *Model) validateConstraints(a *Assignment, v *variable, vid VarId) bool {
	for _, cid := range v.linkedConstraint {
		con := m.constraints[cid]
		if a.statsEnabled {
			a.Stats.ValidatedConstraints++
		}
		if con.Evaluate(a.instVars, vid) == Failed {
			return false
		}
	}
	return true
}

// propagateConstraints runs arc consistency through every constraint
// linked to v, in insertion order, narrowing still-unassigned neighbours.
func (m *Model) propagateConstraints(a *Assignment, v *variable, vid VarId) bool {
	for _, cid := range v.linkedConstraint {
		con := m.constraints[cid]
		if a.statsEnabled {
			a.Stats.AppliedPropagations++
		}
		if !con.Propagate(a, vid) {
			return false
		}
	}
	return true
}
