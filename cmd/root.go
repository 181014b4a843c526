package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"inspiration_drawer/config"
	"inspiration_drawer/drawer"
	"inspiration_drawer/drawlog"
	"inspiration_drawer/generator"
)

var (
	cfgFile string
	verbose bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "drawer",
	Short: "靈感抽籤發想機 — draw story ideas from boxes of prompts",
	Long: `drawer keeps a set of labeled boxes of comma-separated items, draws a
few items from each box at random, suggests story titles from the drawn
items and remembers the last five draws.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "path to config.json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable info logs")
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSession wires the sampler, suggester and log described by c.
func newSession(c config.Config, logger *log.Logger) (*generator.Session, error) {
	store, err := drawlog.Open(c.Store, c.LogPath)
	if err != nil {
		return nil, err
	}
	sampler := drawer.NewSampler(c.Seed)
	templates := generator.NewTemplateSuggester(sampler)

	var suggester generator.Suggester = templates
	if c.LLM != nil {
		llm, err := buildLLM(c.LLM)
		if err != nil {
			return nil, err
		}
		agent, err := generator.NewAgent(llm, templates, logger)
		if err != nil {
			return nil, err
		}
		suggester = agent
	}

	return generator.NewSession(generator.SessionConfig{
		Boxes:     c.DrawBoxes(),
		Sampler:   sampler,
		Suggester: suggester,
		Log:       drawlog.NewLog(store),
		Verbose:   verbose,
		Logger:    logger,
	})
}
