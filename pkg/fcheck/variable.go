package fcheck

import "math"

// VarId is a dense nonnegative integer index identifying one variable in
// a Model. InvalidVarID is a reserved sentinel used for "no variable".
type VarId int

// InvalidVarID is the sentinel VarId value meaning "no variable".
const InvalidVarID VarId = -1

// Unassigned is the InstVar sentinel value: distinct from every legal
// domain value a caller can construct through AddIntVar/AddFixedVar/
// AddBoolVar.
const Unassigned int = math.MinInt

// variable holds one variable's identity and its back-references into
// the constraint arena. Variables do not own their current domain; the
// Assignment does.
type variable struct {
	id               VarId
	linkedConstraint []int // indices into Model.constraints
}
