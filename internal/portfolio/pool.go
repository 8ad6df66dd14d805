// Package portfolio provides the bounded-concurrency worker pool backing
// fcheck.SolvePortfolio: a submit-over-channel, shutdown-once pool trimmed
// to the one primitive a portfolio solve needs (run N independent
// attempts, stop at the first success). There is no stream to merge, no
// external rate to limit, and no backlog to apply backpressure to — a
// portfolio solve is a fixed, small fan-out of short-lived attempts, not a
// pipeline under sustained load.
package portfolio

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned by Submit once Shutdown has been called.
var ErrPoolShutdown = errors.New("portfolio: worker pool has been shutdown")

// Pool manages a fixed set of goroutines that run submitted tasks.
type Pool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// New creates a pool with the given number of workers. A non-positive
// count defaults to the number of CPUs.
func New(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	p := &Pool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		p.workerWg.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.workerWg.Done()
	for {
		select {
		case task := <-p.taskChan:
			if task != nil {
				task()
			}
		case <-p.shutdownChan:
			return
		}
	}
}

// Submit queues task for execution. It blocks until a slot is free, ctx is
// cancelled, or the pool is shut down.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops accepting new tasks and waits for running ones to finish.
// Safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		p.workerWg.Wait()
	})
}
