package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	sessioncmd "github.com/btckoguebike/spore-warriors-host/internal/cmd/session"
)

// main serves the session orchestrator over MCP on stdio.
func main() {
	cfg, err := sessioncmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SESSION] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sessioncmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
