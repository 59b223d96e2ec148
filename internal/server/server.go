// Package server exposes the follow-up pipeline as MCP tools over stdio.
package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"followup/internal/channel"
	"followup/internal/config"
	"followup/internal/domain"
	"followup/internal/logging"
)

// Asker is the slice of the follow-up service the tools drive.
type Asker interface {
	Ask(ctx context.Context, text string, options []string, timeout time.Duration) (domain.Result, error)
	ConfirmCompletion(ctx context.Context, summary string) (domain.Result, error)
}

// Server owns the MCP tool surface and the background channel sweeper.
type Server struct {
	asker    Asker
	mcp      *mcpserver.MCPServer
	settings *config.Settings
}

// NewServer creates the MCP server and registers the follow-up tools
func NewServer(asker Asker, settings *config.Settings, version string) *Server {
	s := &Server{
		asker:    asker,
		settings: settings,
	}

	m := mcpserver.NewMCPServer("followup", version,
		mcpserver.WithToolCapabilities(false),
	)
	m.AddTool(askTool(settings.TimeoutMinutes), s.handleAsk)
	m.AddTool(confirmTool(), s.handleConfirm)
	s.mcp = m

	return s
}

// Start serves MCP over stdio and runs the stale response sweeper until the
// context is cancelled or stdin closes. Clean shutdowns return nil.
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return channel.RunSweeper(ctx, s.settings.ChannelDir)
	})

	g.Go(func() error {
		// Stdin closing means the MCP client is gone; stop the sweeper too.
		defer cancel()

		stdio := mcpserver.NewStdioServer(s.mcp)
		stdio.SetErrorLogger(slog.NewLogLogger(logging.Logger.Handler(), slog.LevelError))

		logging.Logger.Info("MCP server listening on stdio")
		return stdio.Listen(ctx, os.Stdin, os.Stdout)
	})

	err := g.Wait()
	logging.Logger.Info("MCP server stopped")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
