package cli

// Exit codes for the shardr CLI.
//
// A normal run exits with the number of failed shards: 0 means every shard
// passed. Unix truncates the status to 8 bits, so 256+ failures wrap around;
// that is a platform boundary, not something shardr compensates for.
const (
	// ExitSuccess indicates every shard passed.
	ExitSuccess = 0

	// ExitFatal is used for everything that aborts the run before
	// aggregation: precondition failures, launch errors, and interrupts.
	// A single failed shard also exits 1; the printed message is the only
	// way to tell the cases apart.
	ExitFatal = 1
)
