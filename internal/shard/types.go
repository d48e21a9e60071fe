package shard

// Spec identifies one partition of the full test suite.
type Spec struct {
	// Index is the zero-based shard index. Invariant: Index < Total.
	Index int
	// Total is the total shard count for the phase.
	Total int
}

// Plan is the immutable per-phase execution plan. The same Plan is shared by
// every shard of a phase; only the Spec differs per invocation.
type Plan struct {
	// Executable is the path to the test binary.
	Executable string
	// BaseArgs are user-supplied arguments passed through to the executable.
	BaseArgs []string
	// ColorEnabled injects --gtest_color=yes so the child keeps coloring its
	// output even though it writes into a pipe.
	ColorEnabled bool
	// Filter is the gtest filter expression for the phase. Empty means the
	// --gtest_filter flag is omitted entirely, leaving the executable's own
	// default filtering semantics untouched.
	Filter string
}

// Result is the outcome of one shard invocation.
type Result struct {
	// Succeeded is true when the child exited with status 0.
	Succeeded bool
	// Output is the combined stdout and stderr of the child.
	Output string
}

// Outcome aggregates the results of all phases of a run.
type Outcome struct {
	// TotalShards is the number of shard invocations across all phases.
	TotalShards int
	// Failed is the number of shard invocations that exited non-zero.
	Failed int
	// Results holds every collected shard result. Order follows arrival, not
	// shard index; aggregation depends only on counts and content.
	Results []Result
}

// NewOutcome builds an Outcome from collected results.
func NewOutcome(results []Result) Outcome {
	failed := 0
	for _, r := range results {
		if !r.Succeeded {
			failed++
		}
	}
	return Outcome{
		TotalShards: len(results),
		Failed:      failed,
		Results:     results,
	}
}

// Shards returns the specs for a phase of n shards: indices 0..n-1.
func Shards(n int) []Spec {
	specs := make([]Spec, n)
	for i := range specs {
		specs[i] = Spec{Index: i, Total: n}
	}
	return specs
}
