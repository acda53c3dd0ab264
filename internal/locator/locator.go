package locator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/browser"

	"github.com/optkit/cplex-setup/internal/ui"
)

// DownloadPageURL is where operators can obtain CPLEX Optimization Studio
// when no installation is found on disk.
const DownloadPageURL = "https://www.ibm.com/products/ilog-cplex-optimization-studio"

// Prompter is the operator-input channel. The console implementation uses
// promptui; tests substitute a scripted fake.
type Prompter interface {
	// Ask requests a free-text answer and returns it verbatim.
	Ask(label string) (string, error)

	// Choose requests a selection among items and returns the chosen item.
	Choose(label string, items []string) (string, error)

	// Confirm asks a yes/no question. A declined or aborted prompt is false.
	Confirm(label string) bool
}

// Locator finds a vendor installation directory by globbing a set of search
// roots, falling back to the operator when the result is ambiguous.
type Locator struct {
	Prompter Prompter

	// Out receives the candidate listing and status lines.
	// Default: os.Stdout
	Out io.Writer

	// DownloadURL, when set, is offered to the operator via the browser
	// when no installation is found.
	DownloadURL string

	// NonInteractive turns every would-be prompt into an error.
	NonInteractive bool
}

// New creates a Locator that prompts through p and prints to stdout.
func New(p Prompter) *Locator {
	return &Locator{Prompter: p, Out: os.Stdout}
}

// Discover scans each search root one level deep for directories whose name
// matches pattern and returns all matches across all roots, in order. The
// result is a set: default roots overlap (running from $HOME makes the home
// directory both a root and the cwd), and a duplicate must not make a unique
// installation look ambiguous.
func Discover(roots []string, pattern string) []string {
	seen := make(map[string]bool)
	var found []string
	for _, root := range roots {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			// Only possible with a malformed pattern; treat as no match.
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			m = filepath.Clean(m)
			if seen[m] {
				continue
			}
			info, err := os.Stat(m)
			if err != nil || !info.IsDir() {
				continue
			}
			seen[m] = true
			found = append(found, m)
		}
	}
	return found
}

// Locate resolves the vendor installation root. A single match is returned
// without operator interaction; zero or multiple matches print the candidates
// and fall back to a prompt, whose answer is returned verbatim (no existence
// check, matching the original setup behavior).
func (l *Locator) Locate(roots []string, pattern string) (string, error) {
	candidates := Discover(roots, pattern)
	if len(candidates) == 1 {
		fmt.Fprintln(l.out(), ui.OK(fmt.Sprintf("Found installation: %s", candidates[0])))
		return candidates[0], nil
	}

	if len(candidates) == 0 {
		fmt.Fprintln(l.out(), ui.Warn(fmt.Sprintf("No %s installation found under:", pattern)))
		for _, root := range roots {
			fmt.Fprintln(l.out(), ui.Indent(root))
		}
		if l.NonInteractive {
			return "", fmt.Errorf("no installation matching %q found", pattern)
		}
		if l.DownloadURL != "" && l.Prompter.Confirm("Open the CPLEX download page in your browser") {
			if err := browser.OpenURL(l.DownloadURL); err != nil {
				fmt.Fprintln(l.out(), ui.Warn(fmt.Sprintf("Could not open browser: %v", err)))
			}
		}
		return l.Prompter.Ask("Enter the CPLEX installation directory")
	}

	fmt.Fprintln(l.out(), ui.Warn(fmt.Sprintf("Multiple installations match %s:", pattern)))
	for _, c := range candidates {
		fmt.Fprintln(l.out(), ui.Indent(c))
	}
	if l.NonInteractive {
		return "", fmt.Errorf("%d installations match %q, cannot choose non-interactively", len(candidates), pattern)
	}
	return l.Prompter.Ask("Enter the CPLEX installation directory")
}

// SelectVariant picks one immediate subdirectory of base. A single entry is
// auto-selected; multiple entries are listed and the operator chooses. A
// missing or empty base directory is a hard failure: prompting cannot repair
// an installation that lacks the expected subtree.
func (l *Locator) SelectVariant(base string) (string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", base, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}

	switch len(names) {
	case 0:
		return "", fmt.Errorf("no subdirectories in %s", base)
	case 1:
		return filepath.Join(base, names[0]), nil
	}

	fmt.Fprintln(l.out(), ui.Info(fmt.Sprintf("Multiple options in %s:", base)))
	for _, n := range names {
		fmt.Fprintln(l.out(), ui.Indent(n))
	}
	if l.NonInteractive {
		return "", fmt.Errorf("%d options in %s, cannot choose non-interactively", len(names), base)
	}
	chosen, err := l.Prompter.Choose("Select one", names)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, chosen), nil
}

func (l *Locator) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}
