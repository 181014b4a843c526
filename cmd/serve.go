package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"inspiration_drawer/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cfg, log.Default())
		if err != nil {
			return err
		}
		srv, err := server.New(sess, log.Default())
		if err != nil {
			return err
		}
		listen := cfg.ServerAddr
		if serveAddr != "" {
			listen = serveAddr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		return http.ListenAndServe(listen, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "http listen address (overrides config.server_addr)")
	rootCmd.AddCommand(serveCmd)
}
