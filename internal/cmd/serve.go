package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"followup/internal/logging"
	"followup/internal/server"
)

// ServeCmd runs the MCP stdio server and the stale response sweeper
type ServeCmd struct{}

// Run serves until the MCP client disconnects or a signal arrives
func (s *ServeCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting MCP server", "version", cli.version)

	srv := server.NewServer(cli.Container.FollowupService, cli.Container.Settings, cli.version)
	return srv.Start(ctx)
}
