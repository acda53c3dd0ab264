package cmd

import (
	"fmt"

	"github.com/optkit/cplex-setup/internal/python"

	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve the CPLEX installer directory without installing anything",
	RunE:  runLocate,
}

var (
	locatePython string
	locateDir    string
	locateYes    bool
)

func init() {
	locateCmd.Flags().StringVar(&locatePython, "python", "", "Python interpreter to match bindings against")
	locateCmd.Flags().StringVar(&locateDir, "dir", "", "CPLEX installation directory (skips discovery)")
	locateCmd.Flags().BoolVarP(&locateYes, "yes", "y", false, "Never prompt; fail when a choice would be needed")
}

func runLocate(cmd *cobra.Command, args []string) error {
	interp, err := python.Find(locatePython)
	if err != nil {
		return err
	}

	loc := newLocator(locateYes)
	vendorRoot, err := resolveVendorRoot(loc, locateDir)
	if err != nil {
		return err
	}

	variantDir, err := resolveInstallerDir(loc, vendorRoot, interp.Version)
	if err != nil {
		return err
	}

	fmt.Println(variantDir)
	return nil
}
