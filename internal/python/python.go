// Package python locates a host Python interpreter and bootstraps the
// virtual environment the bindings are installed into.
package python

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Interpreter is a usable Python on this machine.
type Interpreter struct {
	Path string

	// Version is the major.minor string ("3.10"). The vendor tree keys its
	// binding directories by this value.
	Version string
}

// candidate command names, tried in order when no explicit path is given.
var lookupOrder = []string{"python3", "python"}

// Find resolves an interpreter. An explicit path wins; otherwise PATH is
// searched. The interpreter must report a parseable version.
func Find(explicit string) (*Interpreter, error) {
	if explicit != "" {
		return probe(explicit)
	}

	for _, name := range lookupOrder {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		interp, err := probe(path)
		if err == nil {
			return interp, nil
		}
	}

	return nil, fmt.Errorf("no python interpreter found on PATH (tried %s)", strings.Join(lookupOrder, ", "))
}

func probe(path string) (*Interpreter, error) {
	out, err := exec.Command(path, "--version").CombinedOutput() // #nosec G204
	if err != nil {
		return nil, fmt.Errorf("failed to run %s --version: %w", path, err)
	}

	version, err := ParseVersion(string(out))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Interpreter{Path: path, Version: version}, nil
}

var versionRe = regexp.MustCompile(`Python (\d+)\.(\d+)`)

// ParseVersion extracts the major.minor version from `python --version`
// output ("Python 3.10.12" -> "3.10").
func ParseVersion(output string) (string, error) {
	m := versionRe.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("unrecognized version output %q", strings.TrimSpace(output))
	}
	return m[1] + "." + m[2], nil
}

// VenvPython returns the interpreter path inside a virtual environment.
func VenvPython(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(venvDir, "bin", "python")
}
