package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/arl/lulu2d/dpt"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a decomposition settings file",
	Long: `Create a decomposition settings file in YAML format, prefilled
with default values (operator: LU).

If FILE is not provided, 'lulu2d.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "lulu2d.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if err != nil || !ok {
			fmt.Println("aborted")
			return
		}
		buf, err := dpt.Config{Operator: dpt.LU}.Marshal()
		check(err)
		check(ioutil.WriteFile(path, buf, 0644))
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
