package simulation

import (
	"context"
	"sync"

	"github.com/lifetrace/trajectory/internal/domain"
)

// RunResult pairs a finished run with the generation it was submitted as.
type RunResult struct {
	Generation uint64
	Result     *domain.SimulationResult
	Err        error
}

// Runner serializes interactive re-runs with last-write-wins semantics:
// submitting a scenario cancels any in-flight run, and a stale run's result
// is discarded rather than delivered. The newest submitted run's result is
// the only one that ever reaches the Results channel.
type Runner struct {
	engine *Engine

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	results chan RunResult
}

// NewRunner wraps an engine. A nil engine gets a default one.
func NewRunner(e *Engine) *Runner {
	if e == nil {
		e = NewEngine()
	}
	return &Runner{engine: e, results: make(chan RunResult, 1)}
}

// Results delivers the newest completed run. The channel holds at most one
// pending result; a newer completion replaces an unconsumed older one.
func (r *Runner) Results() <-chan RunResult {
	return r.results
}

// Submit starts a run for sc, canceling any run still in flight. Returns
// the submitted generation number.
func (r *Runner) Submit(ctx context.Context, sc Scenario) uint64 {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	go func() {
		defer cancel()
		result, err := r.engine.Run(runCtx, sc)

		// Staleness check and delivery under one lock, so a run superseded
		// mid-completion can never displace the newer result.
		r.mu.Lock()
		defer r.mu.Unlock()
		if gen != r.gen {
			return
		}

		// Drop an unconsumed older result so the newest always fits.
		select {
		case <-r.results:
		default:
		}
		select {
		case r.results <- RunResult{Generation: gen, Result: result, Err: err}:
		default:
		}
	}()

	return gen
}

// Close cancels any in-flight run.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
