package shard

import "context"

// Scheduler orchestrates a full run: the parallel phase across Jobs shards,
// then, when a sequential filter is present, a single-shard sequential phase.
// The sequential phase never starts before every parallel result has been
// collected.
type Scheduler struct {
	// Executable is the validated path to the test binary.
	Executable string
	// BaseArgs are user arguments passed through to every invocation.
	BaseArgs []string
	// Jobs is the shard count of the parallel phase and the pool limit.
	Jobs int
	// ColorEnabled is threaded into every phase plan.
	ColorEnabled bool
	// Filters holds the partitioned per-phase filter expressions.
	Filters FilterPair

	pool *Pool
}

// NewScheduler creates a Scheduler backed by a pool of jobs slots that emits
// progress glyphs through the given worker.
func NewScheduler(executable string, baseArgs []string, jobs int, colorEnabled bool, filters FilterPair, worker *Worker) *Scheduler {
	return &Scheduler{
		Executable:   executable,
		BaseArgs:     baseArgs,
		Jobs:         jobs,
		ColorEnabled: colorEnabled,
		Filters:      filters,
		pool:         NewPool(jobs, worker),
	}
}

// Run executes the phases and aggregates their results. Fatal errors
// (interrupt, launch failure) abort the run and bypass aggregation; there is
// no per-shard timeout, so a hung shard blocks its phase until interrupted.
func (s *Scheduler) Run(ctx context.Context) (Outcome, error) {
	results, err := s.pool.Run(ctx, s.plan(s.Filters.Parallel), Shards(s.Jobs))
	if err != nil {
		return Outcome{}, err
	}

	if s.Filters.Sequential != "" {
		seqResults, err := s.pool.Run(ctx, s.plan(s.Filters.Sequential), Shards(1))
		if err != nil {
			return Outcome{}, err
		}
		results = append(results, seqResults...)
	}

	return NewOutcome(results), nil
}

// plan builds the immutable execution plan for one phase.
func (s *Scheduler) plan(filter string) Plan {
	return Plan{
		Executable:   s.Executable,
		BaseArgs:     s.BaseArgs,
		ColorEnabled: s.ColorEnabled,
		Filter:       filter,
	}
}
