package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# overrides\n\nCPLEX_HOME=/opt/ibm/ILOG/CPLEX_Studio201\nOTHER=x\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	assert.Equal(t, "/opt/ibm/ILOG/CPLEX_Studio201", LoadKeyFromEnvFile(path, "CPLEX_HOME"))
	assert.Equal(t, "x", LoadKeyFromEnvFile(path, "OTHER"))
	assert.Empty(t, LoadKeyFromEnvFile(path, "MISSING"))
	assert.Empty(t, LoadKeyFromEnvFile(filepath.Join(dir, "nope"), "CPLEX_HOME"))
}

func TestSaveKeyToEnvFile(t *testing.T) {
	t.Run("creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sub", ".env")
		require.NoError(t, SaveKeyToEnvFile(path, "CPLEX_HOME", "/custom"))
		assert.Equal(t, "/custom", LoadKeyFromEnvFile(path, "CPLEX_HOME"))
	})

	t.Run("replaces existing key and keeps comments", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("# keep me\nCPLEX_HOME=/old\n"), 0600))

		require.NoError(t, SaveKeyToEnvFile(path, "CPLEX_HOME", "/new"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# keep me")
		assert.Contains(t, string(data), "CPLEX_HOME=/new")
		assert.NotContains(t, string(data), "/old")
	})
}

func TestGet_SystemEnvWins(t *testing.T) {
	t.Setenv("CPLEX_SETUP_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", Get("CPLEX_SETUP_TEST_KEY"))
}
