// Package shard provides the sharded test execution engine: filter
// partitioning, per-shard argument construction, the bounded worker pool that
// fans out child invocations of the test executable, and result aggregation.
//
// A run has up to two phases:
//   - a parallel phase with one shard invocation per job slot, and
//   - an optional single-shard sequential phase for tests that must not run
//     concurrently with any other test.
//
// The target executable is a black box that understands the gtest sharding
// protocol (GTEST_TOTAL_SHARDS / GTEST_SHARD_INDEX environment variables) and
// the --gtest_filter flag.
package shard
