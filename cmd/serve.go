package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askdb/askdb/applog"
	"github.com/askdb/askdb/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the single-page web interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, store, cfg, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()
		defer applog.Close()

		addr := serveAddr
		if addr == "" {
			addr = cfg.Addr
		}

		srv, err := web.NewServer(a, store)
		if err != nil {
			return err
		}

		fmt.Printf("askdb web interface on http://localhost%s\n", addr)
		return srv.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}
