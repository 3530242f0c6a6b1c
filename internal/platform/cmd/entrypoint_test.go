package cmd

import (
	"flag"
	"testing"
)

type testConfig struct {
	Transport string `env:"TEST_ENTRYPOINT_TRANSPORT" envDefault:"stdio"`
	Locale    string `env:"TEST_ENTRYPOINT_LOCALE"    envDefault:"en-US"`
}

func TestParseConfigDefaults(t *testing.T) {
	var cfg testConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Transport != "stdio" || cfg.Locale != "en-US" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("TEST_ENTRYPOINT_LOCALE", "zh-CN")

	var cfg testConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Locale != "zh-CN" {
		t.Fatalf("locale = %q, want zh-CN", cfg.Locale)
	}
}

func TestParseConfigNil(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("nil config target should fail")
	}
}

func TestParseArgs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	value := fs.String("value", "default", "")

	if err := ParseArgs(fs, []string{"-value", "override"}); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if *value != "override" {
		t.Fatalf("value = %q", *value)
	}

	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("nil flag parser should fail")
	}
}

func TestParseConfigFromArgs(t *testing.T) {
	t.Setenv("TEST_ENTRYPOINT_TRANSPORT", "from-env")

	var cfg testConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "")

	if err := ParseConfigFromArgs(&cfg, fs, []string{"-locale", "zh-CN"}); err != nil {
		t.Fatalf("ParseConfigFromArgs: %v", err)
	}
	if cfg.Transport != "from-env" {
		t.Fatalf("transport = %q, want from-env", cfg.Transport)
	}
	if cfg.Locale != "zh-CN" {
		t.Fatalf("locale = %q, want zh-CN", cfg.Locale)
	}
}
