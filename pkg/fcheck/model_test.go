package fcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelAddConstraintRejectsOutOfRangeVar(t *testing.T) {
	m := NewModel()
	v0, err := m.AddIntVar(0, 5)
	require.NoError(t, err)

	err = m.AddConstraint(NewOp(v0, OpEqual, VarId(99), 0))
	assert.ErrorIs(t, err, ErrInvalidVarID)
}

func TestModelFinalizeTwiceFails(t *testing.T) {
	m := NewModel()
	_, _ = m.AddIntVar(0, 3)
	require.NoError(t, m.Finalize())
	assert.ErrorIs(t, m.Finalize(), ErrAlreadyFinalized)
}

func TestModelAddConstraintAfterFinalizeFails(t *testing.T) {
	m := NewModel()
	v0, _ := m.AddIntVar(0, 3)
	v1, _ := m.AddIntVar(0, 3)
	require.NoError(t, m.Finalize())

	err := m.AddConstraint(NewEquality(v0, v1))
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestWithConstraintSizeLimitRejectsTooSmall(t *testing.T) {
	m := NewModel(WithConstraintSizeLimit(1))
	assert.ErrorIs(t, m.Err(), ErrConstraintTooLarge)
}

func TestAddIntVarRejectsEmptyRange(t *testing.T) {
	m := NewModel()
	_, err := m.AddIntVar(5, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestForwardCheckingStepRejectsUnfinalizedModel(t *testing.T) {
	m := NewModel()
	_, _ = m.AddIntVar(0, 3)
	a := &Assignment{}
	_, err := m.ForwardCheckingStep(a)
	assert.ErrorIs(t, err, ErrNotFinalized)
}
