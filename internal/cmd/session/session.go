// Package session parses session command flags and serves the
// orchestrator over MCP.
package session

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/btckoguebike/spore-warriors-host/internal/engine/sim"
	mcpservice "github.com/btckoguebike/spore-warriors-host/internal/mcp/service"
	platformcmd "github.com/btckoguebike/spore-warriors-host/internal/platform/cmd"
	"github.com/btckoguebike/spore-warriors-host/internal/platform/otel"
	"github.com/btckoguebike/spore-warriors-host/internal/session/service"
)

const otelShutdownTimeout = 5 * time.Second

// Config holds session command configuration.
type Config struct {
	Transport string `env:"SPORE_WARRIORS_MCP_TRANSPORT" envDefault:"stdio"`
	Locale    string `env:"SPORE_WARRIORS_LOCALE"        envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.LoadDotEnv(); err != nil {
		return Config{}, err
	}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "MCP transport: stdio")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for host-facing error messages")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the session orchestrator behind an MCP server. The
// simulation engine backs the session until the production engine
// binding lands.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, platformcmd.ServiceSession)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	orch := service.New(sim.New())
	return mcpservice.Run(ctx, orch, mcpservice.Config{
		Transport: mcpservice.TransportKind(cfg.Transport),
		Locale:    cfg.Locale,
	})
}
