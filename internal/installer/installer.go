// Package installer drives the vendor-supplied setup.py inside an
// architecture variant directory of the CPLEX installation tree.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SetupScript is the vendor installer entry point inside each architecture
// variant directory.
const SetupScript = "setup.py"

// Install runs the vendor installer with the given Python interpreter, from
// inside the variant directory. Any failure of the delegated tool aborts
// immediately.
func Install(ctx context.Context, e *Executor, python, variantDir string) error {
	script := filepath.Join(variantDir, SetupScript)
	if _, err := os.Stat(script); err != nil {
		return fmt.Errorf("no %s in %s: %w", SetupScript, variantDir, err)
	}

	run := *e
	run.WorkDir = variantDir
	if _, err := run.Run(ctx, python, SetupScript, "install"); err != nil {
		return fmt.Errorf("vendor installer failed: %w", err)
	}
	return nil
}

// Verify imports the freshly installed bindings with the target interpreter
// and returns the version they report. A failed import means the install did
// not actually take (wrong interpreter, wrong architecture variant).
func Verify(ctx context.Context, e *Executor, python string) (string, error) {
	out, err := e.Run(ctx, python, "-c", "import cplex; print(cplex.__version__)")
	if err != nil {
		return "", fmt.Errorf("bindings verification failed: %w", err)
	}
	return strings.TrimSpace(out.Stdout), nil
}
