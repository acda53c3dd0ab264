package locator

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultPattern matches CPLEX Optimization Studio installation directories
// (CPLEX_Studio201, CPLEX_Studio2211, ...).
const DefaultPattern = "CPLEX_Studio*"

// DefaultSearchRoots returns the conventional vendor install locations for
// the current OS, plus the working directory. Ordering matters: system-wide
// prefixes are scanned before user locations.
func DefaultSearchRoots() []string {
	var roots []string

	switch runtime.GOOS {
	case "darwin":
		roots = append(roots, "/Applications")
	case "windows":
		roots = append(roots,
			filepath.Join(`C:\`, "Program Files", "IBM", "ILOG"),
			filepath.Join(`C:\`, "Program Files (x86)", "IBM", "ILOG"),
		)
	default:
		roots = append(roots, "/opt/ibm/ILOG", "/opt/IBM/ILOG")
	}

	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, home)
	}
	if cwd, err := os.Getwd(); err == nil {
		roots = append(roots, cwd)
	}

	return roots
}

// BindingsDir returns the directory holding the Python bindings inside a
// vendor installation root. Its children are Python version directories,
// whose children are architecture variants.
func BindingsDir(vendorRoot string) string {
	return filepath.Join(vendorRoot, "cplex", "python")
}
