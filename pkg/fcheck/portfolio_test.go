package fcheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolvePortfolioFindsSolution(t *testing.T) {
	m, cols := buildNQueens(t, 6)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, ok, err := SolvePortfolio(ctx, m, 4)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, result.Assignment)

	seen := make(map[int]bool)
	for _, v := range cols {
		val, err := result.Assignment.GetValue(v)
		require.NoError(t, err)
		assert.False(t, seen[val])
		seen[val] = true
	}
}

func TestSolvePortfolioReportsUnsat(t *testing.T) {
	m := NewModel()
	v0, _ := m.AddIntVar(0, 2)
	v1, _ := m.AddIntVar(0, 2)
	require.NoError(t, m.AddConstraint(NewEquality(v0, v1)))
	require.NoError(t, m.AddConstraint(NewOp(v0, OpNotEqual, v1, 0)))
	require.NoError(t, m.Finalize())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := SolvePortfolio(ctx, m, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSolvePortfolioRejectsUnfinalizedModel(t *testing.T) {
	m := NewModel()
	_, _ = m.AddIntVar(0, 3)

	_, _, err := SolvePortfolio(context.Background(), m, 2)
	assert.ErrorIs(t, err, ErrNotFinalized)
}
