package shard

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ariel-frischer/shardr/internal/errors"
)

// Pool executes shard tasks with bounded concurrency using errgroup.
// It is the single primitive both phases run through: "run these shards, at
// most Limit in flight, give me every result".
type Pool struct {
	// Limit is the maximum number of concurrent shard invocations.
	Limit int
	// Worker runs the individual invocations.
	Worker *Worker
}

// NewPool creates a Pool with the given concurrency limit.
func NewPool(limit int, worker *Worker) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{Limit: limit, Worker: worker}
}

// Run dispatches one task per spec and returns all results once every task
// has completed. Result order follows completion, not shard index.
//
// A fatal error from any worker cancels the group context, which kills the
// children still running; in-flight results are discarded and the first
// fatal error is returned. Cancellation of the parent context (the
// coordinator's interrupt handling) takes the same path.
func (p *Pool) Run(ctx context.Context, plan Plan, specs []Spec) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Limit)

	var mu sync.Mutex
	results := make([]Result, 0, len(specs))

	for _, spec := range specs {
		spec := spec
		g.Go(func() error {
			// Stop dispatching once the run is aborted; queued tasks bail
			// out before spawning anything.
			if ctx.Err() != nil {
				return errors.NewInterruptedError()
			}
			res, err := p.Worker.Run(ctx, spec, plan)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
