package fcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNQueens returns a Model with n queen-column variables, one per row,
// plus the AllDifferent and diagonal constraints, following the classic
// "one variable per row, value is the column" encoding.
func buildNQueens(t *testing.T, n int) (*Model, []VarId) {
	m := NewModel()
	cols := make([]VarId, n)
	for i := 0; i < n; i++ {
		vid, err := m.AddIntVar(0, n)
		require.NoError(t, err)
		cols[i] = vid
	}
	require.NoError(t, m.AddConstraint(NewAllDifferent(cols...)))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// cols[i] - cols[j] != j - i  and  cols[i] - cols[j] != i - j
			require.NoError(t, m.AddConstraint(NewOp(cols[i], OpNotEqual, cols[j], -(j - i))))
			require.NoError(t, m.AddConstraint(NewOp(cols[i], OpNotEqual, cols[j], j-i)))
		}
	}
	require.NoError(t, m.Finalize())
	return m, cols
}

func TestEightQueensFindsValidSolution(t *testing.T) {
	m, cols := buildNQueens(t, 8)
	a, err := NewAssignment(m)
	require.NoError(t, err)

	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	require.True(t, found)

	vals := make([]int, len(cols))
	for i, v := range cols {
		val, err := a.GetValue(v)
		require.NoError(t, err)
		vals[i] = val
	}

	seen := make(map[int]bool)
	for i, v := range vals {
		assert.False(t, seen[v], "column %d reused", v)
		seen[v] = true
		for j := i + 1; j < len(vals); j++ {
			assert.NotEqual(t, j-i, abs(vals[j]-v), "queens %d and %d share a diagonal", i, j)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TestSudokuRowWithCluesSolvesByAllDifferent models one row of 9 cells with
// distinct clues already fixed, solved purely via the row's AllDifferent
// constraint.
func TestSudokuRowWithCluesSolvesByAllDifferent(t *testing.T) {
	m := NewModel()
	clues := map[int]int{0: 5, 1: 3, 4: 7}
	cells := make([]VarId, 9)
	for i := 0; i < 9; i++ {
		var vid VarId
		var err error
		if v, ok := clues[i]; ok {
			vid, err = m.AddFixedVar(v)
		} else {
			vid, err = m.AddIntVar(1, 10)
		}
		require.NoError(t, err)
		cells[i] = vid
	}
	require.NoError(t, m.AddConstraint(NewAllDifferent(cells...)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	require.True(t, found)

	seen := make(map[int]bool)
	for _, c := range cells {
		v, err := a.GetValue(c)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 9)
		assert.False(t, seen[v])
		seen[v] = true
	}
}

func TestInequalitySmoke(t *testing.T) {
	m := NewModel()
	v0, _ := m.AddIntVar(0, 10)
	v1, _ := m.AddIntVar(0, 10)
	require.NoError(t, m.AddConstraint(NewOp(v0, OpLess, v1, 3)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	require.True(t, found)

	val0, _ := a.GetValue(v0)
	val1, _ := a.GetValue(v1)
	assert.Less(t, val0, val1+3)
}

func TestUnsatisfiableEqualAndNotEqual(t *testing.T) {
	m := NewModel()
	v0, _ := m.AddIntVar(0, 2)
	v1, _ := m.AddIntVar(0, 2)
	require.NoError(t, m.AddConstraint(NewEquality(v0, v1)))
	require.NoError(t, m.AddConstraint(NewOp(v0, OpNotEqual, v1, 0)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	assert.False(t, found)

	_, getErr := a.GetValue(v0)
	assert.ErrorIs(t, getErr, ErrNotAssigned)
}

func TestAllDifferentOverIdenticalSingletonsFails(t *testing.T) {
	m := NewModel()
	v0, _ := m.AddFixedVar(4)
	v1, _ := m.AddFixedVar(4)
	require.NoError(t, m.AddConstraint(NewAllDifferent(v0, v1)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestNotEqualChainedWithAllDifferentSolves exercises a three-variable
// instance whose narrowing spans levels: the fixed v2 is assigned first and
// AllDifferent(v1, v2) narrows v1 to {1}; v0 then takes its first candidate
// 0, and v0 != v1 leaves v1 at {1}. The search reaches the solution without
// backtracking; the test checks both disequalities hold in the result.
func TestNotEqualChainedWithAllDifferentSolves(t *testing.T) {
	m := NewModel()
	v0, _ := m.AddIntVarDomain(NewValuesDomain(0, 1))
	v1, _ := m.AddIntVarDomain(NewValuesDomain(0, 1))
	v2, _ := m.AddFixedVar(0)

	// v0 != v1, and AllDifferent(v1, v2) forces v1 != v2 (= 0).
	require.NoError(t, m.AddConstraint(NewOp(v0, OpNotEqual, v1, 0)))
	require.NoError(t, m.AddConstraint(NewAllDifferent(v1, v2)))
	require.NoError(t, m.Finalize())

	a, err := NewAssignment(m)
	require.NoError(t, err)
	found, err := m.ForwardCheckingStep(a)
	require.NoError(t, err)
	require.True(t, found)

	val0, _ := a.GetValue(v0)
	val1, _ := a.GetValue(v1)
	val2, _ := a.GetValue(v2)
	assert.NotEqual(t, val0, val1)
	assert.NotEqual(t, val1, val2)
}
