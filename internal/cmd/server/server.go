// Package server parses fireworks server flags and wires the HTTP process.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/daisuke8000/grass-fireworks/internal/github"
	"github.com/daisuke8000/grass-fireworks/internal/platform/config"
	"github.com/daisuke8000/grass-fireworks/internal/platform/otel"
	"github.com/daisuke8000/grass-fireworks/internal/services/fireworks"
	"github.com/daisuke8000/grass-fireworks/internal/services/fireworks/storage"
	fireworkssqlite "github.com/daisuke8000/grass-fireworks/internal/services/fireworks/storage/sqlite"
)

// Config holds the fireworks server configuration.
type Config struct {
	HTTPAddr       string        `env:"GRASS_FIREWORKS_HTTP_ADDR"       envDefault:"localhost:8080"`
	GitHubToken    string        `env:"GRASS_FIREWORKS_GITHUB_TOKEN"`
	GitHubEndpoint string        `env:"GRASS_FIREWORKS_GITHUB_ENDPOINT"`
	DBPath         string        `env:"GRASS_FIREWORKS_DB_PATH"`
	CacheTTL       time.Duration `env:"GRASS_FIREWORKS_CACHE_TTL"       envDefault:"5m"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GitHubToken, "github-token", cfg.GitHubToken, "GitHub API token (empty disables live fetches)")
	fs.StringVar(&cfg.GitHubEndpoint, "github-endpoint", cfg.GitHubEndpoint, "GitHub GraphQL endpoint override")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite cache path (empty disables caching)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "contribution cache freshness window")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the fireworks HTTP server and blocks until ctx cancellation.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "fireworks")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	var fetcher fireworks.ContributionFetcher
	if strings.TrimSpace(cfg.GitHubToken) != "" {
		client, err := github.NewClient(github.Config{
			Endpoint: cfg.GitHubEndpoint,
			Token:    cfg.GitHubToken,
		})
		if err != nil {
			return fmt.Errorf("init github client: %w", err)
		}
		fetcher = client
	} else {
		log.Print("no github token configured; live requests render the silent tier")
	}

	var cache storage.ContributionCache
	if strings.TrimSpace(cfg.DBPath) != "" {
		store, err := fireworkssqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open contribution cache: %w", err)
		}
		defer func() { _ = store.Close() }()
		today := time.Now().UTC().Format("2006-01-02")
		if pruned, err := store.PruneBefore(ctx, today); err != nil {
			log.Printf("prune contribution cache: %v", err)
		} else if pruned > 0 {
			log.Printf("pruned %d stale cache entries", pruned)
		}
		cache = store
	}

	service := fireworks.NewService(fireworks.ServiceConfig{
		Fetcher:  fetcher,
		Cache:    cache,
		CacheTTL: cfg.CacheTTL,
	})
	server, err := fireworks.NewServer(fireworks.Config{
		HTTPAddr: cfg.HTTPAddr,
		Service:  service,
	})
	if err != nil {
		return fmt.Errorf("init fireworks server: %w", err)
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve fireworks: %w", err)
	}
	return nil
}
