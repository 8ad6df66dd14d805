// Package main demonstrates basic fcheck usage patterns.
//
// This example shows how to build a Model, run a single
// ForwardCheckingStep, and read back results, working up from a single
// variable to the constraint kinds this package provides.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nsweb/dequan/pkg/fcheck"
)

func main() {
	fmt.Println("=== fcheck Examples ===")
	fmt.Println()

	basicVariable()
	equalityConstraint()
	inequalityConstraint()
	allDifferent()
	sumConstraint()
	elementConstraint()
	statsAndPortfolio()
}

// basicVariable demonstrates declaring a variable and solving trivially.
func basicVariable() {
	fmt.Println("1. Basic Variable:")

	m := fcheck.NewModel()
	q, _ := m.AddIntVar(0, 10)
	_ = m.Finalize()

	a, _ := fcheck.NewAssignment(m)
	found, _ := m.ForwardCheckingStep(a)
	v, _ := a.GetValue(q)

	fmt.Printf("   q in [0,10) => found=%v, q=%d\n\n", found, v)
}

// equalityConstraint demonstrates EqualityConstraint.
func equalityConstraint() {
	fmt.Println("2. Equality:")

	m := fcheck.NewModel()
	x, _ := m.AddIntVar(0, 5)
	y, _ := m.AddFixedVar(3)
	_ = m.AddConstraint(fcheck.NewEquality(x, y))
	_ = m.Finalize()

	a, _ := fcheck.NewAssignment(m)
	found, _ := m.ForwardCheckingStep(a)
	vx, _ := a.GetValue(x)

	fmt.Printf("   x = y, y = 3 => found=%v, x=%d\n\n", found, vx)
}

// inequalityConstraint demonstrates OpConstraint.
func inequalityConstraint() {
	fmt.Println("3. Inequality (Op):")

	m := fcheck.NewModel()
	x, _ := m.AddIntVar(0, 10)
	y, _ := m.AddIntVar(0, 10)
	_ = m.AddConstraint(fcheck.NewOp(x, fcheck.OpLess, y, 0))
	_ = m.Finalize()

	a, _ := fcheck.NewAssignment(m)
	found, _ := m.ForwardCheckingStep(a)
	vx, _ := a.GetValue(x)
	vy, _ := a.GetValue(y)

	fmt.Printf("   x < y => found=%v, x=%d, y=%d\n\n", found, vx, vy)
}

// allDifferent demonstrates AllDifferentConstraint over three variables.
func allDifferent() {
	fmt.Println("4. AllDifferent:")

	m := fcheck.NewModel()
	vars := make([]fcheck.VarId, 3)
	for i := range vars {
		vars[i], _ = m.AddIntVar(0, 3)
	}
	_ = m.AddConstraint(fcheck.NewAllDifferent(vars...))
	_ = m.Finalize()

	a, _ := fcheck.NewAssignment(m)
	found, _ := m.ForwardCheckingStep(a)
	vals := make([]int, 3)
	for i, v := range vars {
		vals[i], _ = a.GetValue(v)
	}

	fmt.Printf("   3 vars in [0,3), all different => found=%v, values=%v\n\n", found, vals)
}

// sumConstraint demonstrates SumConstraint.
func sumConstraint() {
	fmt.Println("5. Sum:")

	m := fcheck.NewModel()
	a1, _ := m.AddIntVar(0, 5)
	a2, _ := m.AddIntVar(0, 5)
	target, _ := m.AddFixedVar(7)
	_ = m.AddConstraint(fcheck.NewSum(target, a1, a2))
	_ = m.Finalize()

	asn, _ := fcheck.NewAssignment(m)
	found, _ := m.ForwardCheckingStep(asn)
	v1, _ := asn.GetValue(a1)
	v2, _ := asn.GetValue(a2)

	fmt.Printf("   a1 + a2 = 7 => found=%v, a1=%d, a2=%d\n\n", found, v1, v2)
}

// elementConstraint demonstrates ElementConstraint.
func elementConstraint() {
	fmt.Println("6. Element:")

	m := fcheck.NewModel()
	idx, _ := m.AddIntVar(0, 3)
	e0, _ := m.AddFixedVar(100)
	e1, _ := m.AddFixedVar(200)
	e2, _ := m.AddFixedVar(300)
	target, _ := m.AddFixedVar(200)
	_ = m.AddConstraint(fcheck.NewElement(idx, []fcheck.VarId{e0, e1, e2}, target))
	_ = m.Finalize()

	a, _ := fcheck.NewAssignment(m)
	found, _ := m.ForwardCheckingStep(a)
	vi, _ := a.GetValue(idx)

	fmt.Printf("   elements[idx] = 200 => found=%v, idx=%d\n\n", found, vi)
}

// statsAndPortfolio demonstrates WithStats and SolvePortfolio.
func statsAndPortfolio() {
	fmt.Println("7. Stats and Portfolio Solve:")

	m := fcheck.NewModel(fcheck.WithStats(true))
	vars := make([]fcheck.VarId, 6)
	for i := range vars {
		vars[i], _ = m.AddIntVar(0, 6)
	}
	_ = m.AddConstraint(fcheck.NewAllDifferent(vars...))
	_ = m.Finalize()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, ok, err := fcheck.SolvePortfolio(ctx, m, 4)
	if err != nil {
		fmt.Println("   portfolio error:", err)
		return
	}
	fmt.Printf("   portfolio of 4 attempts => found=%v, validated=%d, backtracks=%d\n",
		ok, result.Stats.ValidatedConstraints, result.Stats.Backtracks)
}
