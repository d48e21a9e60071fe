package shard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/shardr/internal/testutil"
)

func runScheduler(t *testing.T, jobs int, filters FilterPair) (Outcome, []testutil.Invocation) {
	t.Helper()

	reportDir := t.TempDir()
	testutil.SetFakeTestEnv(t, testutil.FakeTestConfig{ReportDir: reportDir})
	worker, _ := newTestWorker()

	scheduler := NewScheduler(testExecutable(t), testutil.HelperArgs(), jobs, false, filters, worker)
	outcome, err := scheduler.Run(context.Background())
	require.NoError(t, err)

	return outcome, testutil.ReadInvocations(t, reportDir)
}

func TestScheduler_Run_ParallelPhaseOnly(t *testing.T) {
	filters, err := PartitionFilters("", "")
	require.NoError(t, err)

	outcome, invocations := runScheduler(t, 3, filters)

	// No sequential filter, no sequential phase: exactly jobs invocations.
	assert.Equal(t, 3, outcome.TotalShards)
	require.Len(t, invocations, 3)
	for i, inv := range invocations {
		assert.Equal(t, i, inv.ShardIndex)
		assert.Equal(t, 3, inv.TotalShards)
		assert.NotContains(t, inv.Args, "--gtest_filter=*", "no filter flag when no filtering is needed")
	}
}

func TestScheduler_Run_SequentialPhase(t *testing.T) {
	filters, err := PartitionFilters("", "Foo.*")
	require.NoError(t, err)

	outcome, invocations := runScheduler(t, 2, filters)

	assert.Equal(t, 3, outcome.TotalShards)
	require.Len(t, invocations, 3)

	var parallel, sequential []testutil.Invocation
	for _, inv := range invocations {
		if inv.TotalShards == 1 {
			sequential = append(sequential, inv)
		} else {
			parallel = append(parallel, inv)
		}
	}

	require.Len(t, parallel, 2)
	for _, inv := range parallel {
		assert.Equal(t, 2, inv.TotalShards)
		assert.Contains(t, inv.Args, "--gtest_filter=*:-Foo.*")
	}

	require.Len(t, sequential, 1)
	assert.Equal(t, 0, sequential[0].ShardIndex)
	assert.Contains(t, sequential[0].Args, "--gtest_filter=Foo.*")
}

func TestScheduler_Run_InheritedFilter(t *testing.T) {
	filters, err := PartitionFilters("Net*", "Foo.*")
	require.NoError(t, err)

	_, invocations := runScheduler(t, 2, filters)

	require.Len(t, invocations, 3)
	for _, inv := range invocations {
		if inv.TotalShards == 1 {
			assert.Contains(t, inv.Args, "--gtest_filter=Foo.*")
		} else {
			assert.Contains(t, inv.Args, "--gtest_filter=Net*:-Foo.*")
		}
	}
}

func TestScheduler_Run_Idempotent(t *testing.T) {
	testutil.SetFakeTestEnv(t, testutil.FakeTestConfig{FailShards: []int{0, 2}})
	worker, _ := newTestWorker()
	filters, err := PartitionFilters("", "")
	require.NoError(t, err)

	scheduler := NewScheduler(testExecutable(t), testutil.HelperArgs(), 4, false, filters, worker)

	first, err := scheduler.Run(context.Background())
	require.NoError(t, err)
	second, err := scheduler.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Failed, second.Failed)
	assert.Equal(t, first.TotalShards, second.TotalShards)
	assert.Equal(t, 2, first.Failed)
}
