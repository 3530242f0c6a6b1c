// Package cmd provides shared entrypoint helpers for service commands.
package cmd

import (
	"errors"
	"flag"
	"os"

	"github.com/btckoguebike/spore-warriors-host/internal/platform/config"
	"github.com/joho/godotenv"
)

// ServiceSession identifies the session orchestrator command for
// startup telemetry and CLI naming consistency.
const ServiceSession = "session"

// LoadDotEnv loads a .env file when one exists next to the process.
// Missing files are not an error; explicit environment always wins
// because godotenv never overrides set variables.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from the env file and environment,
// then parses flags over them.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := LoadDotEnv(); err != nil {
		return err
	}
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}
