package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/optkit/cplex-setup/internal/config"
	"github.com/optkit/cplex-setup/internal/installer"
	"github.com/optkit/cplex-setup/internal/python"
	"github.com/optkit/cplex-setup/internal/ui"
	"github.com/optkit/cplex-setup/internal/util/env"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Bootstrap the Python environment and install the CPLEX bindings",
	Long: `Run the full setup flow:

  1. Detect a Python interpreter
  2. Create a virtual environment
  3. Install pip requirements (if requirements.txt exists)
  4. Locate the CPLEX installation and its installer for your interpreter
  5. Run the vendor installer inside the virtual environment
  6. Verify the bindings import and remember the installation for re-runs`,
	RunE: runSetup,
}

var (
	setupPython string
	setupVenv   string
	setupReqs   string
	setupDir    string
	skipVenv    bool
	assumeYes   bool
)

func init() {
	setupCmd.Flags().StringVar(&setupPython, "python", "", "Python interpreter to use (default: python3 on PATH)")
	setupCmd.Flags().StringVar(&setupVenv, "venv", ".venv", "Virtual environment directory")
	setupCmd.Flags().StringVar(&setupReqs, "requirements", "requirements.txt", "Requirements file to install")
	setupCmd.Flags().StringVar(&setupDir, "dir", "", "CPLEX installation directory (skips discovery)")
	setupCmd.Flags().BoolVar(&skipVenv, "skip-venv", false, "Install into the interpreter directly, without a venv")
	setupCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Never prompt; fail when a choice would be needed")
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	exec := installer.NewExecutor()
	if verbose {
		exec.Stream = os.Stdout
	}

	ui.PrintTitle("PYTHON", "Detecting interpreter")
	interp, err := python.Find(setupPython)
	if err != nil {
		return err
	}
	ui.PrintOK(fmt.Sprintf("%s (Python %s)", interp.Path, interp.Version))

	pythonBin := interp.Path
	if !skipVenv {
		ui.PrintTitle("VENV", fmt.Sprintf("Creating virtual environment at %s", setupVenv))
		if err := interp.CreateVenv(ctx, exec, setupVenv); err != nil {
			return err
		}
		// The installer runs from inside the vendor tree; the venv
		// interpreter path must survive the working-directory change.
		pythonBin, err = filepath.Abs(python.VenvPython(setupVenv))
		if err != nil {
			return err
		}
		ui.PrintOK(pythonBin)
	}

	ui.PrintTitle("DEPS", fmt.Sprintf("Installing %s", setupReqs))
	if err := python.InstallRequirements(ctx, exec, pythonBin, setupReqs); err != nil {
		return err
	}

	ui.PrintTitle("CPLEX", "Locating installation")
	loc := newLocator(assumeYes)
	vendorRoot, err := resolveVendorRoot(loc, setupDir)
	if err != nil {
		return err
	}

	if err := config.Save(".", &config.Config{VendorRoot: vendorRoot, Python: pythonBin}); err != nil {
		ui.PrintWarn(fmt.Sprintf("Could not save setup config: %v", err))
	}

	variantDir, err := resolveInstallerDir(loc, vendorRoot, interp.Version)
	if err != nil {
		return err
	}

	ui.PrintTitle("INSTALL", fmt.Sprintf("Running vendor installer in %s", variantDir))
	if err := installer.Install(ctx, exec, pythonBin, variantDir); err != nil {
		return err
	}

	ui.PrintTitle("VERIFY", "Importing cplex with the target interpreter")
	bindingsVersion, err := installer.Verify(ctx, exec, pythonBin)
	if err != nil {
		return err
	}
	ui.PrintOK(fmt.Sprintf("cplex %s importable", bindingsVersion))

	// Remember the working installation so re-runs skip discovery.
	if err := env.SaveKeyToEnvFile(config.EnvPath("."), env.CPLEXHomeKey, vendorRoot); err != nil {
		ui.PrintWarn(fmt.Sprintf("Could not persist %s: %v", env.CPLEXHomeKey, err))
	}

	ui.PrintDone("CPLEX bindings installed")
	return nil
}
