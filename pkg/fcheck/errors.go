package fcheck

import "errors"

// Sentinel errors reported for API misuse. The search itself never
// returns or panics on these; they guard the boundary calls a caller
// makes while building and driving a Model.
var (
	// ErrInvalidRange is returned by AddIntVar when lo >= hi.
	ErrInvalidRange = errors.New("fcheck: invalid domain range, lo must be < hi")

	// ErrInvalidVarID is returned when a VarId outside [0, N) is
	// referenced, whether by a constraint passed to AddConstraint or by a
	// caller of Assignment.GetValue. ForwardCheckingStep also returns it
	// when the Assignment was not reset from the same Model.
	ErrInvalidVarID = errors.New("fcheck: invalid variable id")

	// ErrAlreadyFinalized is returned by AddConstraint and AddIntVar/
	// AddFixedVar/AddBoolVar once Finalize has been called on the Model.
	ErrAlreadyFinalized = errors.New("fcheck: model already finalized")

	// ErrNotFinalized is returned by ForwardCheckingStep and Reset when
	// Finalize has not yet been called.
	ErrNotFinalized = errors.New("fcheck: model not finalized")

	// ErrConstraintTooLarge is reported by Model.Err when the Model was
	// built with WithConstraintSizeLimit and the requested limit is smaller
	// than the largest built-in constraint kind's encoded size.
	ErrConstraintTooLarge = errors.New("fcheck: constraint size limit too small for built-in kinds")

	// ErrNotAssigned is returned by Assignment.GetValue when the
	// requested variable has not yet been instantiated.
	ErrNotAssigned = errors.New("fcheck: variable is not assigned")

	// ErrEmptyDomain is returned by model-construction helpers when a
	// caller supplies a domain with no encoded values.
	ErrEmptyDomain = errors.New("fcheck: domain has no values")
)
