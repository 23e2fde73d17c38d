package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when lulu2d is called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "lulu2d",
	Short: "decompose and reconstruct images with the 2D LULU operators",
	Long: `lulu2d is the command-line application accompanying the lulu2d
library:
	- decompose a PGM raster into its discrete pulse transform,
	- reconstruct a raster from a pulse file, optionally area-thresholded,
	- generate a build settings file (YAML) to tweak the operator order.`,
}

// Execute runs RootCmd; each subcommand registers itself with RootCmd in
// its own init function. Called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
