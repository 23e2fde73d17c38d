package cmd

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/lulu2d/pulse"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info PULSES",
	Short: "show summary information about a pulse log",
	Long:  `Read a gob-encoded pulse log and print how many pulses it holds at each area.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		check(err)
		defer f.Close()

		var groups []pulse.Group
		check(gob.NewDecoder(f).Decode(&groups))

		total := 0
		for _, g := range groups {
			fmt.Printf("area %6d: %d pulse(s)\n", g.Area, len(g.Records))
			total += len(g.Records)
		}
		fmt.Printf("total: %d pulse(s) across %d area(s)\n", total, len(groups))
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
