package fcheck

import "unsafe"

// builtinConstraintSize is the inline size (in bytes) of the largest
// built-in constraint kind. A slice of a small interface already gives
// cache-friendly, no-extra-indirection-per-element storage for value-sized
// kinds like these, so the arena here is simply []Constraint —
// WithConstraintSizeLimit still validates against this floor so a caller
// can't configure a limit too small to hold any built-in kind.
var builtinConstraintSize = maxOf(
	int(unsafe.Sizeof(OpConstraint{})),
	int(unsafe.Sizeof(EqualityConstraint{})),
	int(unsafe.Sizeof(OrEqualityConstraint{})),
	int(unsafe.Sizeof(CombinedEqualityConstraint{})),
	int(unsafe.Sizeof(OrRangeConstraint{})),
	int(unsafe.Sizeof(AllDifferentConstraint{})),
	int(unsafe.Sizeof(SumConstraint{})),
	int(unsafe.Sizeof(ElementConstraint{})),
)

func maxOf(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Sequence names a backing growable-container implementation (the
// use_standard_array configuration knob). A Model records the Sequence it
// was given, but nothing in this package consults it: domain value lists
// and saved-domain snapshots are always plain []int slices, whichever
// Sequence is supplied.
type Sequence interface {
	// Kind names the concrete sequence implementation for diagnostics.
	Kind() string
}

// sliceSequence is the default Sequence: a plain growable []int, which is
// exactly what Domain already uses internally.
type sliceSequence struct{}

func (sliceSequence) Kind() string { return "slice" }

// Option configures a Model at construction time.
type Option func(*Model)

// WithConstraintSizeLimit sets the maximum byte size of any constraint
// slot. If n is smaller than the largest built-in constraint kind, the
// Model records ErrConstraintTooLarge, reported by Model.Err — the limit
// exists to let a host reason about
// arena footprint, not to silently drop kinds.
func WithConstraintSizeLimit(n int) Option {
	return func(m *Model) {
		if n < builtinConstraintSize {
			m.constructErr = ErrConstraintTooLarge
			return
		}
		m.constraintSizeLimit = n
	}
}

// WithStats enables or disables the cumulative Stats counters maintained
// on every Assignment reset from this Model. Disabled by default.
func WithStats(enabled bool) Option {
	return func(m *Model) { m.statsEnabled = enabled }
}

// WithSequence records seq as the Model's Sequence (default
// sliceSequence). The choice does not change how domain value lists or
// saved-domain snapshots are stored.
func WithSequence(seq Sequence) Option {
	return func(m *Model) { m.sequence = seq }
}

// Model owns a CSP's variables, their initial domains, and the constraint
// arena. It is immutable once Finalize has been called; a single Model
// may back multiple concurrent Assignments (see SolvePortfolio) because
// all mutable search state lives in the Assignment.
type Model struct {
	variables      []variable
	initialDomains []Domain
	constraints    []Constraint

	finalized bool

	constraintSizeLimit int
	statsEnabled        bool
	sequence            Sequence
	constructErr        error
}

// NewModel constructs an empty Model with the given options applied.
func NewModel(opts ...Option) *Model {
	m := &Model{
		constraintSizeLimit: builtinConstraintSize,
		sequence:            sliceSequence{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Err returns any error recorded by a rejected Option (e.g.
// WithConstraintSizeLimit with too small a limit). Checking it is
// optional but recommended before building further on the Model.
func (m *Model) Err() error { return m.constructErr }

func (m *Model) addVar(dom Domain) (VarId, error) {
	if m.finalized {
		return InvalidVarID, ErrAlreadyFinalized
	}
	if dom.IsEmpty() {
		return InvalidVarID, ErrEmptyDomain
	}
	id := VarId(len(m.variables))
	m.variables = append(m.variables, variable{id: id})
	m.initialDomains = append(m.initialDomains, dom)
	return id, nil
}

// AddIntVar declares a variable with initial domain [lo, hi) and returns
// its VarId. Requires lo < hi.
func (m *Model) AddIntVar(lo, hi int) (VarId, error) {
	if lo >= hi {
		return InvalidVarID, ErrInvalidRange
	}
	return m.addVar(NewRangeDomain(lo, hi))
}

// AddIntVarDomain declares a variable with the caller-supplied initial
// domain and returns its VarId.
func (m *Model) AddIntVarDomain(dom Domain) (VarId, error) {
	return m.addVar(dom.Clone())
}

// AddFixedVar declares a variable whose initial domain is the singleton
// {v} and returns its VarId.
func (m *Model) AddFixedVar(v int) (VarId, error) {
	return m.addVar(NewValuesDomain(v))
}

// AddBoolVar declares a variable with initial domain {0, 1} and returns
// its VarId.
func (m *Model) AddBoolVar() (VarId, error) {
	return m.addVar(NewValuesDomain(0, 1))
}

// AddConstraint appends c to the arena. Every VarId c.Vars() names must
// already exist. Adding a constraint after Finalize is rejected with
// ErrAlreadyFinalized.
func (m *Model) AddConstraint(c Constraint) error {
	if m.finalized {
		return ErrAlreadyFinalized
	}
	for _, vid := range c.Vars() {
		if vid == InvalidVarID {
			continue
		}
		if int(vid) < 0 || int(vid) >= len(m.variables) {
			return ErrInvalidVarID
		}
	}
	m.constraints = append(m.constraints, c)
	return nil
}

// Finalize links every constraint in the arena into each participating
// variable's linked-constraint list and freezes the Model against further
// constraint insertion. It must be called exactly once, after all
// variables and constraints have been added and before the first solve.
func (m *Model) Finalize() error {
	if m.finalized {
		return ErrAlreadyFinalized
	}
	for cid, c := range m.constraints {
		for _, vid := range c.Vars() {
			if vid == InvalidVarID {
				continue
			}
			m.variables[vid].linkedConstraint = append(m.variables[vid].linkedConstraint, cid)
		}
	}
	m.finalized = true
	return nil
}

// NumVars returns the number of variables declared on m.
func (m *Model) NumVars() int { return len(m.variables) }

// VarDomain returns the initial (pre-search) domain of vid.
func (m *Model) VarDomain(vid VarId) Domain { return m.initialDomains[vid] }
