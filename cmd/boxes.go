package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var boxesCmd = &cobra.Command{
	Use:   "boxes",
	Short: "List the configured boxes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, b := range cfg.DrawBoxes() {
			fmt.Fprintf(out, "%2d. %s  (%d items, draw %d)\n", i+1, b.Title, len(b.ItemList()), b.Effective())
		}
	},
}

func init() {
	rootCmd.AddCommand(boxesCmd)
}
