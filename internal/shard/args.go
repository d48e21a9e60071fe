package shard

import (
	"os"
	"strconv"
)

// Environment variables of the gtest sharding protocol.
const (
	EnvTotalShards = "GTEST_TOTAL_SHARDS"
	EnvShardIndex  = "GTEST_SHARD_INDEX"
)

// BuildArgs constructs the argument vector for one shard invocation:
// executable, optional color flag, pass-through user arguments, optional
// filter flag. Pure construction, no side effects.
func BuildArgs(plan Plan) []string {
	args := make([]string, 0, len(plan.BaseArgs)+3)
	args = append(args, plan.Executable)
	// The color flag goes right after the executable so user args can still
	// override it.
	if plan.ColorEnabled {
		args = append(args, "--gtest_color=yes")
	}
	args = append(args, plan.BaseArgs...)
	if plan.Filter != "" {
		args = append(args, "--gtest_filter="+plan.Filter)
	}
	return args
}

// BuildEnv constructs the child environment: the current process environment
// with the two sharding variables overridden. Appended entries win over
// earlier duplicates per os/exec semantics.
func BuildEnv(spec Spec) []string {
	env := os.Environ()
	return append(env,
		EnvTotalShards+"="+strconv.Itoa(spec.Total),
		EnvShardIndex+"="+strconv.Itoa(spec.Index),
	)
}
