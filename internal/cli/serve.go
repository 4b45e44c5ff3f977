package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/server"
)

var serveCmd = LeafCommand{
	Use:   "serve",
	Short: "Serve the tracker as a JSON API",
	StrFlags: []StringFlag{
		{Name: "addr", Usage: "listen address (default: from config)"},
	},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.cfg.Addr
		}
		return runServe(cmd, a, addr)
	}),
}.Build()

func runServe(cmd *cobra.Command, a *app, addr string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(a.tracker, a.logger).Run(ctx, addr)
}
