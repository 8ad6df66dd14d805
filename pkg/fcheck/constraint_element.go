package fcheck

// ElementConstraint enforces Elements[Index] = Target, where Index and
// Target are finite-domain variables and Elements is a fixed slice of
// variables (not constants), narrowing both index and target
// bidirectionally as their domains and Elements' domains shrink.
type ElementConstraint struct {
	Index    VarId
	Elements []VarId
	Target   VarId
}

// NewElement constructs an ElementConstraint enforcing
// elements[index] = target.
func NewElement(index VarId, elements []VarId, target VarId) ElementConstraint {
	es := make([]VarId, len(elements))
	copy(es, elements)
	return ElementConstraint{Index: index, Elements: es, Target: target}
}

func (c ElementConstraint) Vars() []VarId {
	vs := make([]VarId, 0, len(c.Elements)+2)
	vs = append(vs, c.Index)
	vs = append(vs, c.Elements...)
	vs = append(vs, c.Target)
	return vs
}

func (c ElementConstraint) Evaluate(instVars []int, _ VarId) Eval {
	idx := instVars[c.Index]
	if idx == Unassigned {
		return NA
	}
	if idx < 0 || idx >= len(c.Elements) {
		return Failed
	}
	elemVal := instVars[c.Elements[idx]]
	tgtVal := instVars[c.Target]
	if elemVal == Unassigned || tgtVal == Unassigned {
		return NA
	}
	return evalBool(elemVal == tgtVal)
}

func (c ElementConstraint) Propagate(a *Assignment, _ VarId) bool {
	if !a.narrow(c.Index, a.currentDomains[c.Index].IntersectRange(0, len(c.Elements))) {
		return false
	}

	idx := a.instValue(c.Index)
	if idx != Unassigned {
		elem := c.Elements[idx]
		elemVal, tgtVal := a.instValue(elem), a.instValue(c.Target)
		if elemVal == Unassigned && tgtVal != Unassigned {
			return a.narrow(elem, a.currentDomains[elem].Intersect(tgtVal))
		}
		if tgtVal == Unassigned && elemVal != Unassigned {
			return a.narrow(c.Target, a.currentDomains[c.Target].Intersect(elemVal))
		}
		return true
	}

	// Index still unassigned: keep only positions whose element domain
	// overlaps the target domain, and narrow the target to the union of
	// the domains the surviving positions could still produce.
	tgtDom := a.currentDomains[c.Target]
	idxDom := a.currentDomains[c.Index]

	survivors := make([]Domain, 0, idxDom.Size())
	newIdxDom := filterDomain(idxDom, func(pos int) bool {
		elemDom := a.currentDomains[c.Elements[pos]]
		return domainsOverlap(elemDom, tgtDom)
	})
	if !a.narrow(c.Index, newIdxDom) {
		return false
	}
	newIdxDom.ForEach(func(pos int) bool {
		survivors = append(survivors, a.currentDomains[c.Elements[pos]])
		return true
	})

	union := unionDomain(survivors)
	return a.narrow(c.Target, filterDomain(tgtDom, func(v int) bool { return union.Contains(v) }))
}
