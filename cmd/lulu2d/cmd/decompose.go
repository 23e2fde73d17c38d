package cmd

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/lulu2d/dpt"
	"github.com/arl/lulu2d/raster"
)

var decomposeCfgFile string

// decomposeCmd represents the decompose command.
var decomposeCmd = &cobra.Command{
	Use:   "decompose INPUT.pgm OUTPUT.pulses",
	Short: "decompose a raster into its 2D discrete pulse transform",
	Long: `Decompose reads a raster in the lulu2d PGM dialect, runs the
configured LULU operator over it, and writes the resulting pulse log to
OUTPUT.pulses as a gob-encoded stream.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := dpt.Config{Operator: dpt.LU}
		if decomposeCfgFile != "" {
			check(unmarshalYAMLFile(decomposeCfgFile, &cfg))
		}

		in, err := os.Open(args[0])
		check(err)
		defer in.Close()

		image, err := raster.ReadPGM(in)
		check(err)

		ctx := dpt.NewBuildContext()
		e, err := dpt.Decompose(context.Background(), image, cfg, ctx)
		check(err)

		out, err := os.Create(args[1])
		check(err)
		defer out.Close()
		check(gob.NewEncoder(out).Encode(e.Groups()))

		fmt.Printf("%d pulse(s) extracted, operator=%s\n", e.Count(), cfg.Operator)
	},
}

func init() {
	RootCmd.AddCommand(decomposeCmd)
	decomposeCmd.Flags().StringVar(&decomposeCfgFile, "config", "", "decomposition settings (YAML, default: LU operator)")
}
