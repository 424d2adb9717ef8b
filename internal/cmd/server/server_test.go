package server

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("expected default cache ttl, got %v", cfg.CacheTTL)
	}
	if cfg.DBPath != "" {
		t.Fatalf("expected caching disabled by default, got %q", cfg.DBPath)
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("GRASS_FIREWORKS_HTTP_ADDR", "env-addr")
	t.Setenv("GRASS_FIREWORKS_CACHE_TTL", "30s")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "env-addr" {
		t.Fatalf("expected env addr, got %q", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("expected env cache ttl, got %v", cfg.CacheTTL)
	}
}

func TestParseConfigFlagsBeatEnv(t *testing.T) {
	t.Setenv("GRASS_FIREWORKS_HTTP_ADDR", "env-addr")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	args := []string{"-http-addr", "flag-addr", "-db-path", "/tmp/cache.db"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "/tmp/cache.db" {
		t.Fatalf("expected flag db path, got %q", cfg.DBPath)
	}
}
