package cmd

import (
	"encoding/json"
	"log"

	"github.com/spf13/cobra"

	"inspiration_drawer/render"
)

var (
	drawPicks map[string]int
	drawJSON  bool
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw from every box, suggest titles and record the result",
	Example: `  drawer draw
  drawer draw --pick 角色屬性=2 --pick 世界觀=1
  drawer draw --json`,
	Args: cobra.NoArgs,
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().StringToIntVar(&drawPicks, "pick", nil, "override how many items to draw from a box (title=n)")
	drawCmd.Flags().BoolVar(&drawJSON, "json", false, "print the log entry as JSON")
	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	if err := cfg.ApplyCounts(drawPicks); err != nil {
		return err
	}
	sess, err := newSession(cfg, log.Default())
	if err != nil {
		return err
	}

	entry, err := sess.Draw(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if drawJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}
	_, err = out.Write([]byte(render.Terminal(entry)))
	return err
}
