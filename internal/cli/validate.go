package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/shardr/internal/errors"
)

// validateTarget checks that the target path exists and is executable before
// any worker is spawned. Both failures are fatal with exit code 1.
func validateTarget(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.NewValidationError(
			fmt.Sprintf("file %q does not exist", path),
			"Check the path to the test executable",
		)
	}
	if info.IsDir() || info.Mode().Perm()&0o111 == 0 {
		return errors.NewValidationError(
			fmt.Sprintf("file %q is not executable", path),
			"Point shardr at the built test binary, not a source or data file",
			fmt.Sprintf("If it is the right file, run: chmod +x %s", path),
		)
	}
	return nil
}
