package fcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrEqualityNarrowsV0ToTheSurvivingPair(t *testing.T) {
	m := NewModel()
	v0, _ := m.AddIntVar(0, 10)
	v1, _ := m.AddFixedVar(2)
	v2, _ := m.AddFixedVar(7)
	require.NoError(t, m.AddConstraint(NewOrEquality(v0, v1, v2)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	require.True(t, found)

	v, _ := a.GetValue(v0)
	assert.True(t, v == 2 || v == 7)
}

func TestCombinedEqualityReadsV3NotV2(t *testing.T) {
	// v0 = v1 + v2 - v3. Guards against propagation reading v3's value
	// from v2's slot.
	m := NewModel()
	v0, _ := m.AddIntVar(0, 20)
	v1, _ := m.AddFixedVar(10)
	v2, _ := m.AddFixedVar(4)
	v3, _ := m.AddFixedVar(1)
	require.NoError(t, m.AddConstraint(NewCombinedEquality(v0, v1, v2, v3)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	require.True(t, found)

	v, _ := a.GetValue(v0)
	assert.Equal(t, 13, v) // 10 + 4 - 1, not 10 + 4 - 4
}

func TestOrRangeEvaluatesButDoesNotPropagate(t *testing.T) {
	c := NewOrRange(VarId(0), VarId(1), 5, 10)
	instVars := []int{3, 6}
	assert.Equal(t, Passed, c.Evaluate(instVars, VarId(1)))

	instVars = []int{3, 2}
	assert.Equal(t, Failed, c.Evaluate(instVars, VarId(1)))

	// Propagate never touches an Assignment, so a nil one is safe.
	assert.True(t, c.Propagate(nil, VarId(1)))
}

func TestSumConstraintNarrowsTargetBounds(t *testing.T) {
	m := NewModel()
	a1, _ := m.AddIntVar(1, 4)  // {1,2,3}
	a2, _ := m.AddIntVar(1, 4)  // {1,2,3}
	tgt, _ := m.AddIntVar(0, 100)
	require.NoError(t, m.AddConstraint(NewSum(tgt, a1, a2)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	require.True(t, found)

	v1, _ := a.GetValue(a1)
	v2, _ := a.GetValue(a2)
	vt, _ := a.GetValue(tgt)
	assert.Equal(t, v1+v2, vt)

	// The target's domain was narrowed from [0,100) to [2,7).
	tgtDom := a.GetCurrentDomain(tgt)
	assert.Equal(t, 2, tgtDom.Min())
	assert.Equal(t, 6, tgtDom.Max())
}

func TestElementConstraintPicksMatchingPosition(t *testing.T) {
	m := NewModel()
	idx, _ := m.AddIntVar(0, 3)
	e0, _ := m.AddFixedVar(11)
	e1, _ := m.AddFixedVar(22)
	e2, _ := m.AddFixedVar(33)
	tgt, _ := m.AddFixedVar(22)
	require.NoError(t, m.AddConstraint(NewElement(idx, []VarId{e0, e1, e2}, tgt)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	require.True(t, found)

	v, _ := a.GetValue(idx)
	assert.Equal(t, 1, v)
}

func TestElementConstraintRejectsOutOfRangeIndex(t *testing.T) {
	c := NewElement(VarId(0), []VarId{VarId(1), VarId(2)}, VarId(3))
	instVars := []int{5, 0, 0, 0}
	assert.Equal(t, Failed, c.Evaluate(instVars, VarId(0)))
}
