package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/calendario/internal/logger"
	"github.com/pfrederiksen/calendario/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar as a mobile web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				a.cfg.Listen = listen
			}
			gin.SetMode(ginMode(a.cfg.LogLevel))

			srv, err := web.NewServer(a.cfg)
			if err != nil {
				return fmt.Errorf("initializing server: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			logger.Info("calendario starting", logger.Fields{
				"listen":      a.cfg.Listen,
				"locale":      a.cfg.Locale,
				"first_year":  a.cfg.FirstYear,
				"last_year":   a.cfg.LastYear,
				"seed_events": len(a.cfg.SeedEvents),
			})
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "HTTP listen address (overrides config)")

	return cmd
}

// ginMode keeps gin's route dump and warnings for debug logging only.
func ginMode(logLevel string) string {
	if logLevel == "debug" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
