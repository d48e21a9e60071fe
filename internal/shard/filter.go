package shard

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/shardr/internal/errors"
)

// NegativeSeparator is the gtest filter substring meaning "exclude the
// following pattern".
const NegativeSeparator = ":-"

// FilterPair holds the derived filter expressions for the two phases.
type FilterPair struct {
	// Parallel is the filter for the parallel phase. Empty means no filter
	// flag is emitted at all.
	Parallel string
	// Sequential is the filter for the single-shard sequential phase. Empty
	// means no sequential phase runs.
	Sequential string
}

// PartitionFilters derives the per-phase filters from an externally inherited
// filter (typically the GTEST_FILTER environment variable) and the
// user-specified sequential filter.
//
// The parallel phase covers everything the inherited filter selects minus the
// sequential subset; the sequential phase covers exactly that subset. When
// both inputs are empty no filtering is needed and both filters stay empty.
//
// Negative filters cannot appear in the sequential filter, and cannot appear
// in the inherited filter while a sequential filter is active: combining two
// negative expressions is ambiguous. Both cases fail before any shard is
// launched.
func PartitionFilters(inherited, sequential string) (FilterPair, error) {
	if strings.Contains(sequential, NegativeSeparator) {
		return FilterPair{}, errors.NewValidationError(
			fmt.Sprintf("cannot use negative filters in sequential filter: %q", sequential),
			"Remove the ':-' exclusion from the -s/--sequential expression",
		)
	}
	if sequential != "" && strings.Contains(inherited, NegativeSeparator) {
		return FilterPair{}, errors.NewValidationError(
			"cannot combine the sequential option with a GTEST_FILTER containing negative filters",
			"Drop the exclusion from GTEST_FILTER, or run without -s/--sequential",
		)
	}

	pair := FilterPair{Sequential: sequential}
	switch {
	case inherited != "" && sequential != "":
		pair.Parallel = inherited + NegativeSeparator + sequential
	case inherited != "":
		pair.Parallel = inherited
	case sequential != "":
		pair.Parallel = "*" + NegativeSeparator + sequential
	}
	return pair, nil
}
