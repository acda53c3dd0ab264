package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optkit/cplex-setup/internal/config"
	"github.com/optkit/cplex-setup/internal/locator"
	"github.com/optkit/cplex-setup/internal/util/env"
)

// fakePrompter scripts operator answers, mirroring the locator tests.
type fakePrompter struct {
	answer  string
	choice  string
	confirm bool
	asked   int
	chosen  int
}

func (f *fakePrompter) Ask(string) (string, error) {
	f.asked++
	return f.answer, nil
}

func (f *fakePrompter) Choose(_ string, items []string) (string, error) {
	f.chosen++
	if f.choice != "" {
		return f.choice, nil
	}
	return items[0], nil
}

func (f *fakePrompter) Confirm(string) bool {
	return f.confirm
}

// chdir is t.Chdir for Go versions before 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func testLocator(p locator.Prompter) *locator.Locator {
	return &locator.Locator{Prompter: p, Out: io.Discard}
}

func TestResolveVendorRoot_ExplicitDirWins(t *testing.T) {
	t.Setenv(env.CPLEXHomeKey, "/env/should/lose")

	got, err := resolveVendorRoot(testLocator(&fakePrompter{}), "/explicit/cplex")
	require.NoError(t, err)
	assert.Equal(t, "/explicit/cplex", got)
}

func TestResolveVendorRoot_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(env.CPLEXHomeKey, "/from/env")

	p := &fakePrompter{}
	got, err := resolveVendorRoot(testLocator(p), "")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", got)
	assert.Zero(t, p.asked)
}

func TestResolveVendorRoot_SavedConfig(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(env.CPLEXHomeKey, "")

	saved := t.TempDir()
	require.NoError(t, config.Save(".", &config.Config{VendorRoot: saved}))

	t.Run("confirmed reuse", func(t *testing.T) {
		p := &fakePrompter{confirm: true}
		got, err := resolveVendorRoot(testLocator(p), "")
		require.NoError(t, err)
		assert.Equal(t, saved, got)
		assert.Zero(t, p.asked)
	})

	t.Run("non-interactive reuse without confirmation", func(t *testing.T) {
		loc := testLocator(&fakePrompter{})
		loc.NonInteractive = true
		got, err := resolveVendorRoot(loc, "")
		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})
}

func TestResolveInstallerDir(t *testing.T) {
	vendorRoot := t.TempDir()
	mk := func(parts ...string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Join(append([]string{vendorRoot}, parts...)...), 0755))
	}
	mk("cplex", "python", "3.10", "x86-64_linux")

	t.Run("interpreter version preferred", func(t *testing.T) {
		p := &fakePrompter{}
		got, err := resolveInstallerDir(testLocator(p), vendorRoot, "3.10")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(vendorRoot, "cplex", "python", "3.10", "x86-64_linux"), got)
		assert.Zero(t, p.chosen)
	})

	t.Run("lone version dir selected when interpreter version missing", func(t *testing.T) {
		p := &fakePrompter{}
		got, err := resolveInstallerDir(testLocator(p), vendorRoot, "3.12")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(vendorRoot, "cplex", "python", "3.10", "x86-64_linux"), got)
		assert.Zero(t, p.chosen)
	})

	t.Run("ambiguous version level prompts", func(t *testing.T) {
		mk("cplex", "python", "3.9", "x86-64_linux")

		p := &fakePrompter{choice: "3.9"}
		got, err := resolveInstallerDir(testLocator(p), vendorRoot, "3.12")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(vendorRoot, "cplex", "python", "3.9", "x86-64_linux"), got)
		assert.Equal(t, 1, p.chosen)
	})

	t.Run("missing bindings tree fails", func(t *testing.T) {
		_, err := resolveInstallerDir(testLocator(&fakePrompter{}), t.TempDir(), "3.10")
		assert.Error(t, err)
	})
}
