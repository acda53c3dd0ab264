package python

import (
	"context"
	"fmt"
	"os"

	"github.com/optkit/cplex-setup/internal/installer"
)

// CreateVenv creates a virtual environment at dir using the interpreter.
// An existing venv is left alone: `python -m venv` on an existing directory
// is a cheap no-op that repairs missing pieces.
func (i *Interpreter) CreateVenv(ctx context.Context, e *installer.Executor, dir string) error {
	if _, err := e.Run(ctx, i.Path, "-m", "venv", dir); err != nil {
		return fmt.Errorf("venv creation failed: %w", err)
	}
	return nil
}

// InstallRequirements runs pip against a requirements file through the given
// interpreter (normally the venv's own). A missing file is not an error; the
// step is skipped.
func InstallRequirements(ctx context.Context, e *installer.Executor, python, reqFile string) error {
	if _, err := os.Stat(reqFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot read %s: %w", reqFile, err)
	}

	if _, err := e.Run(ctx, python, "-m", "pip", "install", "-r", reqFile); err != nil {
		return fmt.Errorf("pip install failed: %w", err)
	}
	return nil
}
