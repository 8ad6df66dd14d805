package fcheck

// Eval is the three-valued verdict a Constraint.Evaluate returns.
type Eval int

const (
	// NA means the current instantiations are not enough to decide the
	// constraint yet.
	NA Eval = iota
	// Passed means the constraint's boolean condition holds for the
	// current instantiations. Most kinds report it only once every
	// participant is instantiated; AllDifferent reports it as soon as the
	// last-assigned variable clashes with no other assigned participant.
	Passed
	// Failed means the constraint's boolean condition cannot hold for the
	// current instantiations. Most kinds report it only once every
	// participant is instantiated; AllDifferent and Element (with an
	// out-of-range index) can report it earlier.
	Failed
)

func (e Eval) String() string {
	switch e {
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	default:
		return "NA"
	}
}

// Constraint is the interface every constraint kind implements. The Model
// links a constraint into each of the variables named by Vars at
// Finalize time; the engine then calls Evaluate/Propagate purely through
// this interface, so new kinds can be added without touching the search.
type Constraint interface {
	// Vars returns the VarIds this constraint touches, in the order the
	// constraint was constructed with. Used by AddConstraint to check the
	// ids, and at Finalize to push stable references into each
	// participant's linked-constraint list.
	Vars() []VarId

	// Evaluate reports whether the constraint is satisfied given the
	// current instantiations. instVars[vid] is Unassigned for any
	// variable not yet assigned. lastAssigned names the variable whose
	// assignment triggered this call (most kinds don't need it; it is
	// there for symmetry with Propagate and for kinds that special-case
	// the triggering variable).
	Evaluate(instVars []int, lastAssigned VarId) Eval

	// Propagate attempts to narrow the current domains of this
	// constraint's still-unassigned participants, given that
	// lastAssigned was the variable most recently assigned. It returns
	// false iff narrowing wiped out some participant's domain.
	Propagate(a *Assignment, lastAssigned VarId) bool
}

// Op enumerates the comparison operators an OpConstraint can encode.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpGreaterEqual
	OpGreater
	OpLessEqual
	OpLess
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpGreaterEqual:
		return ">="
	case OpGreater:
		return ">"
	case OpLessEqual:
		return "<="
	case OpLess:
		return "<"
	default:
		return "?"
	}
}

func evalBool(cond bool) Eval {
	if cond {
		return Passed
	}
	return Failed
}
