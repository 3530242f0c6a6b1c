// Package service wires the session orchestrator into an MCP server.
package service

import (
	"context"
	"fmt"

	"github.com/btckoguebike/spore-warriors-host/internal/session/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Spore Warriors Host"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	Locale    string
}

// Server hosts the MCP server over a session orchestrator.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server exposing the orchestrator's
// operation surface.
func New(orch *service.Orchestrator, locale string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerSessionTools(mcpServer, orch, locale)
	registerBattleTools(mcpServer, orch, locale)
	return &Server{mcpServer: mcpServer}
}

// Serve runs the MCP server on stdio until the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, orch *service.Orchestrator, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return New(orch, cfg.Locale).Serve(ctx)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}
