package fcheck

import (
	"context"

	"github.com/nsweb/dequan/internal/portfolio"
)

// PortfolioResult is the outcome of one attempt within a SolvePortfolio run.
type PortfolioResult struct {
	// Assignment is the attempt's search state. On a successful run it
	// holds a complete satisfying assignment; callers should only read
	// from it after SolvePortfolio returns and ok is true.
	Assignment *Assignment
	Stats      Stats
}

// SolvePortfolio runs attempts concurrent independent ForwardCheckingStep
// searches over the same immutable Model, and returns the first one to find
// a satisfying assignment. The first attempt keeps the static first-fail
// assign order; every other attempt shuffles it with its own seed. It
// reports ok=false if every attempt exhausts its search
// space without success.
//
// m must already be finalized. A single Model backing several concurrent
// Assignments this way is within the concurrency contract documented on
// Assignment: distinct goroutines, distinct Assignment values, no shared
// mutable state beyond the Model itself.
func SolvePortfolio(ctx context.Context, m *Model, attempts int) (*PortfolioResult, bool, error) {
	if !m.finalized {
		return nil, false, ErrNotFinalized
	}
	if attempts <= 0 {
		attempts = 1
	}

	pool := portfolio.New(attempts)
	defer pool.Shutdown()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		result *PortfolioResult
		found  bool
		err    error
	}
	results := make(chan outcome, attempts)

	for i := 0; i < attempts; i++ {
		seed := int64(i)
		err := pool.Submit(runCtx, func() {
			a, err := NewAssignment(m)
			if err != nil {
				select {
				case results <- outcome{err: err}:
				case <-runCtx.Done():
				}
				return
			}
			if seed != 0 {
				a.ShuffleAssignOrder(seed)
			}

			found, stepErr := m.ForwardCheckingStep(a)
			select {
			case results <- outcome{result: &PortfolioResult{Assignment: a, Stats: a.Stats}, found: found, err: stepErr}:
			case <-runCtx.Done():
			}
		})
		if err != nil {
			return nil, false, err
		}
	}

	for i := 0; i < attempts; i++ {
		select {
		case out := <-results:
			if out.err != nil {
				return nil, false, out.err
			}
			if out.found {
				cancel()
				return out.result, true, nil
			}
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	return nil, false, nil
}
