package cmd

import (
	"encoding/json"
	"log"

	"github.com/spf13/cobra"

	"inspiration_drawer/render"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the last draws, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cfg, log.Default())
		if err != nil {
			return err
		}
		entries, err := sess.History()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if historyJSON {
			enc := json.NewEncoder(out)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		_, err = out.Write([]byte(render.TerminalHistory(entries)))
		return err
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print the log as JSON")
	rootCmd.AddCommand(historyCmd)
}
