// Package cli wires the shardr command surface: flag and configuration
// resolution, pre-spawn validation, interrupt handling, and the mapping of
// run outcomes onto process exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/shardr/internal/config"
	"github.com/ariel-frischer/shardr/internal/errors"
	"github.com/ariel-frischer/shardr/internal/progress"
	"github.com/ariel-frischer/shardr/internal/shard"
)

// exitCode carries the aggregated shard failure count out of RunE; fatal
// errors bypass it and exit through ExitFatal instead.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "shardr [flags] <test-executable> [-- <args>]",
	Short: "Run a gtest executable sharded across parallel workers",
	Long: `shardr runs a gtest-style test executable once per shard, in parallel,
using the GTEST_TOTAL_SHARDS / GTEST_SHARD_INDEX sharding protocol, then
optionally runs a sequential pass for tests that must not run concurrently.

Each finished shard prints one progress glyph: a green '.' on success, a red
'E' on failure. After all shards complete, the captured output of failed
shards is re-emitted (at the default verbosity) and a [PASS]/[FAIL] banner is
printed. The exit code is the number of failed shards.

A GTEST_FILTER environment variable, when set, is inherited as the base
filter for the parallel phase.

Examples:
  # Run with one shard per 1.5 CPUs
  shardr ./unit_tests

  # Eight shards, keep DbTest.* out of the parallel phase
  shardr -j 8 -s 'DbTest.*' ./unit_tests

  # Pass extra flags through to the test executable
  shardr ./unit_tests -- --gtest_repeat=3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShards,
}

func init() {
	rootCmd.Flags().IntP("jobs", "j", config.DefaultJobs(), "number of parallel shard invocations")
	rootCmd.Flags().IntP("verbosity", "v", 1, "0 banner only, 1 adds failed shard logs, 2 adds all logs")
	rootCmd.Flags().StringP("sequential", "s", "", "gtest filter for tests to run sequentially (no ':-' exclusions)")
	rootCmd.Flags().String("color", "auto", "colored output: auto, always, or never")
	rootCmd.Flags().String("config", "", "path to a project config file (default .shardr.yml)")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// Execute runs the CLI and returns the process exit code. The interrupt
// signal is intercepted here, once, for the whole run; shard children live in
// their own process groups and never see it directly.
func Execute() int {
	return execute(os.Stderr)
}

func execute(stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exitCode = ExitSuccess
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportFatal(stderr, err)
		return ExitFatal
	}
	return exitCode
}

// fatalColorMode is the color mode used for fatal error reporting. runShards
// updates it once flags and config have been resolved, so errors raised after
// that point honor --color; earlier errors fall back to auto detection.
var fatalColorMode = progress.ColorAuto

// reportFatal prints a fatal error to stderr. Interrupts get the bare notice
// the original glyph line needs terminated with; everything else goes through
// the structured formatter.
func reportFatal(w io.Writer, err error) {
	caps := progress.DetectCapabilities(fatalColorMode)
	runErr := errors.AsRunError(err)
	if runErr != nil && runErr.Category == errors.Interrupted {
		fmt.Fprintln(w, "\n"+runErr.Message)
		return
	}
	if runErr != nil && runErr.Category == errors.Launch {
		// Launch failures abort mid-phase; terminate the glyph line first.
		fmt.Fprintln(w)
	}
	errors.NewFormatter(caps.ColorEnabled).FprintAny(w, err)
}

func runShards(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadWithOptions(config.LoadOptions{ProjectConfigPath: configPath})
	if err != nil {
		return errors.Wrap(err, errors.Validation)
	}

	// Flags override every loaded config source.
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
	}
	if cmd.Flags().Changed("verbosity") {
		cfg.Verbosity, _ = cmd.Flags().GetInt("verbosity")
	}
	if cmd.Flags().Changed("color") {
		cfg.Color, _ = cmd.Flags().GetString("color")
	}
	if err := config.Validate(cfg); err != nil {
		return errors.Wrap(err, errors.Validation)
	}

	fatalColorMode = progress.ColorMode(cfg.Color)
	caps := progress.DetectCapabilities(fatalColorMode)

	// pflag consumed the first "--" during parsing; everything after the
	// executable is handed to it verbatim.
	target := args[0]
	trailing := args[1:]

	if err := validateTarget(target); err != nil {
		return err
	}

	sequential, _ := cmd.Flags().GetString("sequential")
	filters, err := shard.PartitionFilters(os.Getenv("GTEST_FILTER"), sequential)
	if err != nil {
		return err
	}

	glyphs := progress.NewGlyphStream(cmd.OutOrStdout(), caps.ColorEnabled)
	worker := &shard.Worker{Glyphs: glyphs}

	scheduler := shard.NewScheduler(target, trailing, cfg.Jobs, caps.ColorEnabled, filters, worker)
	outcome, err := scheduler.Run(cmd.Context())
	if err != nil {
		return err
	}

	aggregator := shard.NewAggregator(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbosity, caps.ColorEnabled)
	exitCode = aggregator.Report(outcome)
	return nil
}
