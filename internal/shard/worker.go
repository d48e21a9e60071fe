package shard

import (
	"context"
	goerrors "errors"
	"os/exec"
	"syscall"

	"github.com/ariel-frischer/shardr/internal/errors"
	"github.com/ariel-frischer/shardr/internal/progress"
)

// Worker runs single shard invocations. Workers share only the glyph stream;
// captured child output stays private until the pool collects it.
type Worker struct {
	// Glyphs receives one serialized progress glyph per finished shard.
	Glyphs *progress.GlyphStream
}

// Run spawns the target executable for one shard and blocks until it exits.
//
// The child runs in its own process group, so a terminal interrupt is
// delivered to the coordinator only; the coordinator decides once for every
// worker instead of each worker racing to react. Cancellation of ctx kills
// the whole child group.
//
// A non-zero child exit is a failed Result, not an error. Errors are fatal:
// an OS-level launch failure or cancellation.
func (w *Worker) Run(ctx context.Context, spec Spec, plan Plan) (Result, error) {
	argv := BuildArgs(plan)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = BuildEnv(spec)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		// Negative pid targets the process group, so helpers the test binary
		// spawned itself don't linger either.
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	output, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return Result{}, errors.NewInterruptedError()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !goerrors.As(err, &exitErr) {
			return Result{}, errors.NewLaunchError(err)
		}
		w.Glyphs.Fail()
		return Result{Succeeded: false, Output: string(output)}, nil
	}

	w.Glyphs.Pass()
	return Result{Succeeded: true, Output: string(output)}, nil
}
