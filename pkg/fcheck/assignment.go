package fcheck

import (
	"math/rand"
	"sort"
)

// savedDomain is a full snapshot of one variable's domain prior to its
// first modification within a search level.
type savedDomain struct {
	varID VarId
	dom   Domain
}

// savedDomainStep is the per-level collection of domain snapshots that
// lets the solver restore state on backtrack. At most one savedDomain per
// variable per level: the first modification snapshots, later ones in the
// same level are no-ops because ensureSavedDomain already has an entry.
type savedDomainStep struct {
	domains []savedDomain
}

// Stats are optional cumulative counters maintained across a solve when
// enabled on the owning Model.
type Stats struct {
	ValidatedConstraints uint64
	AppliedPropagations  uint64
	AssignedVars         uint64
	DomainWipeouts       uint64
	Backtracks           uint64
}

// Assignment is the mutable search state for one solve against an
// immutable Model. A Model may back several Assignments concurrently
// provided each runs on a distinct goroutine; within one Assignment no
// sharing across goroutines is permitted.
type Assignment struct {
	model *Model

	assignedCount  int
	instVars       []int
	currentDomains []Domain
	savedDomains   []savedDomainStep
	assignOrder    []VarId

	statsEnabled bool
	Stats        Stats
}

// NewAssignment constructs an Assignment bound to m and immediately resets
// it. m must already be finalized.
func NewAssignment(m *Model) (*Assignment, error) {
	a := &Assignment{}
	if err := a.Reset(m); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset clears the assignment and reinitializes it from m's initial
// domains, computing the static first-fail assign order: ascending
// initial domain size, VarId as tie-breaker.
func (a *Assignment) Reset(m *Model) error {
	if !m.finalized {
		return ErrNotFinalized
	}
	n := len(m.variables)

	a.model = m
	a.assignedCount = 0
	a.statsEnabled = m.statsEnabled
	a.Stats = Stats{}

	a.instVars = make([]int, n)
	for i := range a.instVars {
		a.instVars[i] = Unassigned
	}

	a.currentDomains = make([]Domain, n)
	for i, v := range m.initialDomains {
		a.currentDomains[i] = v.Clone()
	}

	a.savedDomains = a.savedDomains[:0]

	order := make([]VarId, n)
	for i := range order {
		order[i] = VarId(i)
	}
	sort.Slice(order, func(i, j int) bool {
		si, sj := m.initialDomains[order[i]].Size(), m.initialDomains[order[j]].Size()
		if si != sj {
			return si < sj
		}
		return order[i] < order[j]
	})
	a.assignOrder = order

	return nil
}

// ShuffleAssignOrder perturbs the static first-fail assign order with a
// seeded shuffle, leaving the rest of the Assignment untouched. Used by
// SolvePortfolio to give each concurrent attempt over the same Model a
// distinct search trajectory.
func (a *Assignment) ShuffleAssignOrder(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(a.assignOrder), func(i, j int) {
		a.assignOrder[i], a.assignOrder[j] = a.assignOrder[j], a.assignOrder[i]
	})
}

// IsComplete reports whether every variable has been assigned.
func (a *Assignment) IsComplete() bool { return a.assignedCount == len(a.instVars) }

// NextUnassignedVar returns the variable the solver should branch on next,
// per the frozen assign order computed at Reset. O(1): the search always
// assigns at its current depth before recursing, so assignOrder[assignedCount]
// is always the right answer.
func (a *Assignment) NextUnassignedVar() VarId {
	return a.assignOrder[a.assignedCount]
}

// GetValue returns the instantiated value of vid, or ErrNotAssigned if it
// has not been assigned yet, or ErrInvalidVarID if vid is out of range.
func (a *Assignment) GetValue(vid VarId) (int, error) {
	if int(vid) < 0 || int(vid) >= len(a.instVars) {
		return 0, ErrInvalidVarID
	}
	v := a.instVars[vid]
	if v == Unassigned {
		return 0, ErrNotAssigned
	}
	return v, nil
}

// GetCurrentDomain returns the live, narrowed domain of vid.
func (a *Assignment) GetCurrentDomain(vid VarId) Domain {
	return a.currentDomains[vid]
}

// instValue returns vid's current instantiation, or Unassigned.
func (a *Assignment) instValue(vid VarId) int { return a.instVars[vid] }

// assignVar instantiates vid to val.
func (a *Assignment) assignVar(vid VarId, val int) {
	a.instVars[vid] = val
	a.assignedCount++
	if a.statsEnabled {
		a.Stats.AssignedVars++
	}
}

// unassignVar reverts vid to Unassigned.
func (a *Assignment) unassignVar(vid VarId) {
	a.instVars[vid] = Unassigned
	a.assignedCount--
}

// pushStep opens a new saved-domain frame for the search level about to
// start.
func (a *Assignment) pushStep() {
	a.savedDomains = append(a.savedDomains, savedDomainStep{})
}

// popStep discards the current saved-domain frame without restoring it
// (used when a level's search space is exhausted without ever committing
// to a deeper level).
func (a *Assignment) popStep() {
	a.savedDomains = a.savedDomains[:len(a.savedDomains)-1]
}

// ensureSavedDomain snapshots vid's domain into the top frame the first
// time vid is touched at this level; later touches at the same level are
// no-ops.
func (a *Assignment) ensureSavedDomain(vid VarId, dom Domain) {
	top := &a.savedDomains[len(a.savedDomains)-1]
	for i := range top.domains {
		if top.domains[i].varID == vid {
			return
		}
	}
	top.domains = append(top.domains, savedDomain{varID: vid, dom: dom.Clone()})
}

// RestoreSavedDomainStep overwrites current_domains with every snapshot in
// the top frame. Idempotent: calling it twice for the same frame leaves
// current_domains unchanged on the second call.
func (a *Assignment) RestoreSavedDomainStep() {
	top := a.savedDomains[len(a.savedDomains)-1]
	for _, sd := range top.domains {
		a.currentDomains[sd.varID] = sd.dom
	}
}

// narrow is the shared arc-consistency primitive every constraint kind's
// Propagate calls: it snapshots vid's pre-narrow domain into the current
// level (lazily, once), installs newDom, and reports whether the domain
// survived. A false return means a domain wipe-out; the caller (the
// solver) is responsible for restoring the level via
// RestoreSavedDomainStep.
func (a *Assignment) narrow(vid VarId, newDom Domain) bool {
	a.ensureSavedDomain(vid, a.currentDomains[vid])
	a.currentDomains[vid] = newDom
	if newDom.IsEmpty() {
		if a.statsEnabled {
			a.Stats.DomainWipeouts++
		}
		return false
	}
	return true
}
