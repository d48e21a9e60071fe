package shard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArgs(t *testing.T) {
	tests := map[string]struct {
		plan Plan
		want []string
	}{
		"bare executable": {
			plan: Plan{Executable: "./unit_tests"},
			want: []string{"./unit_tests"},
		},
		"color flag injected after executable": {
			plan: Plan{Executable: "./unit_tests", ColorEnabled: true},
			want: []string{"./unit_tests", "--gtest_color=yes"},
		},
		"trailing args follow color flag": {
			plan: Plan{
				Executable:   "./unit_tests",
				BaseArgs:     []string{"--gtest_repeat=2"},
				ColorEnabled: true,
			},
			want: []string{"./unit_tests", "--gtest_color=yes", "--gtest_repeat=2"},
		},
		"filter flag comes last": {
			plan: Plan{
				Executable: "./unit_tests",
				BaseArgs:   []string{"--gtest_repeat=2"},
				Filter:     "*:-DbTest.*",
			},
			want: []string{"./unit_tests", "--gtest_repeat=2", "--gtest_filter=*:-DbTest.*"},
		},
		"empty filter omits the flag entirely": {
			plan: Plan{Executable: "./unit_tests", Filter: ""},
			want: []string{"./unit_tests"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildArgs(tt.plan))
		})
	}
}

func TestBuildEnv_OverridesShardVariables(t *testing.T) {
	t.Setenv(EnvTotalShards, "99")
	t.Setenv(EnvShardIndex, "99")

	env := BuildEnv(Spec{Index: 3, Total: 8})

	// Appended entries win over inherited duplicates per os/exec semantics,
	// so the last occurrence is the one the child sees.
	assert.Equal(t, EnvTotalShards+"=8", lastMatching(env, EnvTotalShards+"="))
	assert.Equal(t, EnvShardIndex+"=3", lastMatching(env, EnvShardIndex+"="))
}

func TestBuildEnv_PreservesProcessEnvironment(t *testing.T) {
	t.Setenv("SHARDR_TEST_MARKER", "carried")

	env := BuildEnv(Spec{Index: 0, Total: 1})

	require.Contains(t, env, "SHARDR_TEST_MARKER=carried")
}

func lastMatching(env []string, prefix string) string {
	var last string
	for _, entry := range env {
		if len(entry) >= len(prefix) && entry[:len(prefix)] == prefix {
			last = entry
		}
	}
	return last
}
