// Package testutil provides test utilities for shardr tests, most notably
// the fake gtest executable: the test binary re-invokes itself as a helper
// process that honors the sharding environment variables, so the engine can
// be exercised against real child processes without building anything.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names used by the fake test binary.
const (
	// EnvWantHelperProcess signals that the test binary should run as the
	// fake gtest executable.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvFakeTestConfig contains a JSON-encoded FakeTestConfig.
	EnvFakeTestConfig = "SHARDR_FAKE_TEST_CONFIG"
)

// FakeTestConfig configures the behavior of the fake gtest executable.
type FakeTestConfig struct {
	// FailShards lists shard indices that exit with status 1.
	FailShards []int `json:"fail_shards,omitempty"`
	// Stdout is content to write to stdout before exiting.
	Stdout string `json:"stdout,omitempty"`
	// Stderr is content to write to stderr before exiting.
	Stderr string `json:"stderr,omitempty"`
	// SleepMs delays the exit, for cancellation tests.
	SleepMs int `json:"sleep_ms,omitempty"`
	// ReportDir, when set, receives one invocation record per run.
	ReportDir string `json:"report_dir,omitempty"`
}

// Invocation is the record the fake test binary writes for each run, so tests
// can assert the sharding contract the children actually observed.
type Invocation struct {
	ShardIndex  int      `yaml:"shard_index"`
	TotalShards int      `yaml:"total_shards"`
	Args        []string `yaml:"args,omitempty"`
}

// RunFakeTestBinary turns the current process into the fake gtest executable
// when EnvWantHelperProcess is set, and exits without returning. Call it from
// a test named TestHelperProcess in every package that spawns shards:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.RunFakeTestBinary(t)
//	}
func RunFakeTestBinary(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	var config FakeTestConfig
	if raw := os.Getenv(EnvFakeTestConfig); raw != "" {
		// Parse errors fall back to defaults.
		_ = json.Unmarshal([]byte(raw), &config)
	}

	index, _ := strconv.Atoi(os.Getenv("GTEST_SHARD_INDEX"))
	total, _ := strconv.Atoi(os.Getenv("GTEST_TOTAL_SHARDS"))

	if config.ReportDir != "" {
		writeInvocation(config.ReportDir, Invocation{
			ShardIndex:  index,
			TotalShards: total,
			Args:        argsAfterDash(),
		})
	}

	if config.SleepMs > 0 {
		time.Sleep(time.Duration(config.SleepMs) * time.Millisecond)
	}

	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}

	if slices.Contains(config.FailShards, index) {
		os.Exit(1)
	}
	os.Exit(0)
}

// HelperArgs returns the base argument vector that makes the spawned test
// binary run TestHelperProcess. The trailing "--" keeps the test flag parser
// away from any gtest flags appended after it.
func HelperArgs() []string {
	return []string{"-test.run=TestHelperProcess", "--"}
}

// SetFakeTestEnv configures the current process environment so that spawned
// copies of the test binary behave as the fake gtest executable. Uses
// t.Setenv, so the configuration is scoped to the test.
func SetFakeTestEnv(t *testing.T, config FakeTestConfig) {
	t.Helper()
	raw, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("marshaling fake test config: %v", err)
	}
	t.Setenv(EnvWantHelperProcess, "1")
	t.Setenv(EnvFakeTestConfig, string(raw))
}

// ReadInvocations reads every invocation record from a report directory,
// sorted by shard index.
func ReadInvocations(t *testing.T, dir string) []Invocation {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading report dir %s: %v", dir, err)
	}

	invocations := make([]Invocation, 0, len(entries))
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatalf("reading invocation record %s: %v", entry.Name(), err)
		}
		var inv Invocation
		if err := yaml.Unmarshal(data, &inv); err != nil {
			t.Fatalf("unmarshaling invocation record %s: %v", entry.Name(), err)
		}
		invocations = append(invocations, inv)
	}

	slices.SortFunc(invocations, func(a, b Invocation) int {
		return a.ShardIndex - b.ShardIndex
	})
	return invocations
}

// writeInvocation persists one record. The pid suffix keeps concurrent
// sequential-phase records (always shard 0) from clobbering each other.
func writeInvocation(dir string, inv Invocation) {
	data, err := yaml.Marshal(inv)
	if err != nil {
		return
	}
	name := fmt.Sprintf("shard-%d-%d.yml", inv.ShardIndex, os.Getpid())
	_ = os.WriteFile(filepath.Join(dir, name), data, 0o644)
}

// argsAfterDash returns the argv the fake binary received after the "--"
// separator, i.e. the gtest-facing arguments.
func argsAfterDash() []string {
	for i, arg := range os.Args {
		if arg == "--" {
			return os.Args[i+1:]
		}
	}
	return nil
}
