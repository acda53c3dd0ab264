// Package env resolves operator overrides such as CPLEX_HOME, checking the
// process environment first and a project-local .env file second.
package env

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// CPLEXHomeKey names the override pointing at an existing vendor
// installation; when set, discovery is skipped entirely.
const CPLEXHomeKey = "CPLEX_HOME"

// Get retrieves a key from the environment or .cplex-setup/.env.
// System environment wins.
func Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return LoadKeyFromEnvFile(filepath.Join(".cplex-setup", ".env"), key)
}

// LoadKeyFromEnvFile reads a specific key from a .env file.
func LoadKeyFromEnvFile(envPath, key string) string {
	file, err := os.Open(envPath)
	if err != nil {
		return ""
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	prefix := key + "="

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}

	return ""
}

// SaveKeyToEnvFile writes a key-value pair to a .env file, replacing an
// existing assignment and preserving comments and blank lines.
func SaveKeyToEnvFile(envPath, key, value string) error {
	if err := os.MkdirAll(filepath.Dir(envPath), 0755); err != nil {
		return err
	}

	var lines []string
	keyFound := false
	existingFile, err := os.Open(envPath)
	if err == nil {
		scanner := bufio.NewScanner(existingFile)
		for scanner.Scan() {
			line := scanner.Text()
			trimmed := strings.TrimSpace(line)

			if trimmed != "" && !strings.HasPrefix(trimmed, "#") && strings.HasPrefix(trimmed, key+"=") {
				lines = append(lines, key+"="+value)
				keyFound = true
			} else {
				lines = append(lines, line)
			}
		}
		_ = existingFile.Close()
	} else if !os.IsNotExist(err) {
		return err
	}

	if !keyFound {
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, key+"="+value)
	}

	content := strings.Join(lines, "\n") + "\n"
	return os.WriteFile(envPath, []byte(content), 0600)
}
