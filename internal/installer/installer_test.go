package installer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall_MissingScript(t *testing.T) {
	err := Install(context.Background(), NewExecutor(), "python3", t.TempDir())
	assert.Error(t, err)
}

// stubInterpreter writes an executable standing in for python.
func stubInterpreter(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "python")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestVerify(t *testing.T) {
	skipOnWindows(t)

	t.Run("reports bindings version", func(t *testing.T) {
		python := stubInterpreter(t, "#!/bin/sh\necho 22.1.1.0\n")

		got, err := Verify(context.Background(), NewExecutor(), python)
		require.NoError(t, err)
		assert.Equal(t, "22.1.1.0", got)
	})

	t.Run("failed import", func(t *testing.T) {
		python := stubInterpreter(t, "#!/bin/sh\necho \"ModuleNotFoundError: No module named 'cplex'\" >&2\nexit 1\n")

		_, err := Verify(context.Background(), NewExecutor(), python)
		assert.Error(t, err)
	})
}
