package cmd

import (
	"os"

	"github.com/optkit/cplex-setup/internal/ui"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cplex-setup",
	Short: "cplex-setup - bootstrap a Python environment with the CPLEX bindings",
	Long: `cplex-setup prepares a local Python environment for CPLEX development.

It locates an existing CPLEX Optimization Studio installation on disk,
creates a virtual environment, installs pip requirements, and runs the
vendor installer for the Python bindings matching your interpreter.

When exactly one installation is found it is used automatically; when the
search is ambiguous you are asked to choose.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(locateCmd)
	// Note: versionCmd is registered in version.go's init()
}
