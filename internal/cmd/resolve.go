package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/optkit/cplex-setup/internal/config"
	"github.com/optkit/cplex-setup/internal/locator"
	"github.com/optkit/cplex-setup/internal/ui"
	"github.com/optkit/cplex-setup/internal/util/env"
)

func newLocator(nonInteractive bool) *locator.Locator {
	loc := locator.New(locator.NewConsolePrompter())
	loc.DownloadURL = locator.DownloadPageURL
	loc.NonInteractive = nonInteractive
	return loc
}

// resolveVendorRoot picks the CPLEX installation directory. Precedence:
// explicit --dir flag, CPLEX_HOME override, the root saved by a previous run
// (confirmed with the operator), then filesystem discovery.
func resolveVendorRoot(loc *locator.Locator, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if home := env.Get(env.CPLEXHomeKey); home != "" {
		ui.PrintInfo(fmt.Sprintf("Using %s=%s", env.CPLEXHomeKey, home))
		return home, nil
	}

	cfg, err := config.Load(".")
	if err == nil && cfg.VendorRoot != "" {
		if info, statErr := os.Stat(cfg.VendorRoot); statErr == nil && info.IsDir() {
			if loc.NonInteractive || loc.Prompter.Confirm(fmt.Sprintf("Reuse %s from last run", cfg.VendorRoot)) {
				return cfg.VendorRoot, nil
			}
		}
	}

	return loc.Locate(locator.DefaultSearchRoots(), locator.DefaultPattern)
}

// resolveInstallerDir descends from the vendor root to the architecture
// variant holding the installer: cplex/python/<major.minor>/<arch>. The
// interpreter's own version directory is preferred when it exists; otherwise
// the version level goes through the same one-or-ask selection as the
// architecture level.
func resolveInstallerDir(loc *locator.Locator, vendorRoot, pyVersion string) (string, error) {
	bindings := locator.BindingsDir(vendorRoot)

	versionDir := filepath.Join(bindings, pyVersion)
	if info, err := os.Stat(versionDir); err != nil || !info.IsDir() {
		ui.PrintWarn(fmt.Sprintf("No bindings for Python %s in %s", pyVersion, bindings))
		versionDir, err = loc.SelectVariant(bindings)
		if err != nil {
			return "", err
		}
	}

	return loc.SelectVariant(versionDir)
}
