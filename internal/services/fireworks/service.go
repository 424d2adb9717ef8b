// Package fireworks hosts the HTTP service that renders the animated
// commit-fireworks SVG. It orchestrates the GitHub fetch, the optional
// contribution cache, level and theme selection, and document rendering.
package fireworks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/daisuke8000/grass-fireworks/internal/platform/errors"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/random"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/svgdoc"
	"github.com/daisuke8000/grass-fireworks/internal/github"
	"github.com/daisuke8000/grass-fireworks/internal/level"
	"github.com/daisuke8000/grass-fireworks/internal/services/fireworks/storage"
)

// Canvas and input bounds shared by both endpoints.
const (
	DefaultWidth  = 600
	DefaultHeight = 300
	MinWidth      = 200
	MaxWidth      = 2000
	MinHeight     = 100
	MaxHeight     = 1200
	MaxCommits    = 100000
)

// DefaultCacheTTL is how long a fetched count stays fresh. Today's count
// only grows, so staleness shows a slightly smaller show, never a wrong
// user.
const DefaultCacheTTL = 5 * time.Minute

// ContributionFetcher is the upstream dependency of the live endpoint.
type ContributionFetcher interface {
	TodayContributionCount(ctx context.Context, username string) (int, error)
}

// Service renders fireworks documents for HTTP handlers.
type Service struct {
	fetcher  ContributionFetcher
	cache    storage.ContributionCache
	cacheTTL time.Duration
	now      func() time.Time
	tracer   trace.Tracer
}

// ServiceConfig wires the service dependencies. Fetcher and Cache are
// optional: without a fetcher every live request degrades to the silent
// visual, without a cache every live request hits the upstream.
type ServiceConfig struct {
	Fetcher  ContributionFetcher
	Cache    storage.ContributionCache
	CacheTTL time.Duration
	Now      func() time.Time
}

// NewService builds a configured service.
func NewService(cfg ServiceConfig) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		fetcher:  cfg.Fetcher,
		cache:    cfg.Cache,
		cacheTTL: ttl,
		now:      now,
		tracer:   otel.Tracer("fireworks"),
	}
}

// UserParams are the validated inputs of the live endpoint. Zero Width
// or Height selects the default canvas; a nil Theme selects the theme of
// the day.
type UserParams struct {
	Username string
	Width    int
	Height   int
	Theme    *level.Theme
}

// DemoParams are the validated inputs of the simulated endpoint. Nil
// pointers select the derived defaults.
type DemoParams struct {
	Commits int
	Level   *level.Level
	Theme   *level.Theme
	Seed    *int32
	Cascade bool
	Width   int
	Height  int
}

// RenderUser fetches today's contribution count for the user and renders
// the matching show. Unknown users surface as CodeUserNotFound; upstream
// failures degrade to the silent visual so embedded badges never break.
func (s *Service) RenderUser(ctx context.Context, p UserParams) (string, error) {
	ctx, span := s.tracer.Start(ctx, "fireworks.RenderUser")
	defer span.End()

	if p.Username == "" {
		return "", apperrors.New(apperrors.CodeMissingUser, "user query parameter is required")
	}
	width, height, err := resolveCanvas(p.Width, p.Height)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	day := now.Format("2006-01-02")

	count, err := s.contributionCount(ctx, p.Username, day)
	switch {
	case errors.Is(err, github.ErrUserNotFound):
		return "", apperrors.Wrap(apperrors.CodeUserNotFound, fmt.Sprintf("github user %q not found", p.Username), err)
	case err != nil:
		log.Printf("contribution fetch degraded user=%s err=%v", p.Username, err)
		count = 0
	}

	theme := level.ForDate(now)
	if p.Theme != nil {
		theme = *p.Theme
	}
	lvl := level.FromCount(count)
	cascade := lvl == level.Five && level.LuckyDay(now)

	span.SetAttributes(
		attribute.String("fireworks.user", p.Username),
		attribute.Int("fireworks.commits", count),
		attribute.Int("fireworks.level", int(lvl)),
		attribute.String("fireworks.theme", string(theme)),
		attribute.Bool("fireworks.cascade", cascade),
	)

	doc, err := svgdoc.Document(svgdoc.Params{
		Width:       width,
		Height:      height,
		Username:    p.Username,
		CommitCount: count,
		Level:       lvl,
		Theme:       theme,
		Seed:        random.StringSeed(p.Username + ":" + day),
		Cascade:     cascade,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeRender, "render document", err)
	}
	return doc, nil
}

// RenderDemo renders a simulated show without calling the upstream.
func (s *Service) RenderDemo(ctx context.Context, p DemoParams) (string, error) {
	_, span := s.tracer.Start(ctx, "fireworks.RenderDemo")
	defer span.End()

	width, height, err := resolveCanvas(p.Width, p.Height)
	if err != nil {
		return "", err
	}
	if p.Commits < 0 || p.Commits > MaxCommits {
		return "", apperrors.New(apperrors.CodeInvalidCommits,
			fmt.Sprintf("commits must be between 0 and %d", MaxCommits))
	}

	lvl := level.FromCount(p.Commits)
	if p.Level != nil {
		lvl = *p.Level
	}
	theme := level.ForDate(s.now().UTC())
	if p.Theme != nil {
		theme = *p.Theme
	}
	seed := random.StringSeed(fmt.Sprintf("demo:%d:%s", p.Commits, theme))
	if p.Seed != nil {
		seed = *p.Seed
	}
	cascade := p.Cascade && lvl == level.Five

	span.SetAttributes(
		attribute.Int("fireworks.level", int(lvl)),
		attribute.String("fireworks.theme", string(theme)),
	)

	doc, err := svgdoc.Document(svgdoc.Params{
		Width:       width,
		Height:      height,
		Username:    "demo",
		CommitCount: p.Commits,
		Level:       lvl,
		Theme:       theme,
		Seed:        seed,
		Cascade:     cascade,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeRender, "render document", err)
	}
	return doc, nil
}

// contributionCount resolves the count for one user and day, consulting
// the cache before the upstream. Cache failures are logged and skipped;
// only upstream outcomes decide the result.
func (s *Service) contributionCount(ctx context.Context, username, day string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "fireworks.contributionCount")
	defer span.End()

	if s.cache != nil {
		entry, found, err := s.cache.Get(ctx, username, day)
		if err != nil {
			log.Printf("cache get failed user=%s err=%v", username, err)
		} else if found && s.now().Sub(entry.FetchedAt) <= s.cacheTTL {
			span.SetAttributes(attribute.Bool("fireworks.cache_hit", true))
			return entry.Count, nil
		}
	}

	if s.fetcher == nil {
		return 0, &github.APIError{Message: "no fetcher configured"}
	}
	count, err := s.fetcher.TodayContributionCount(ctx, username)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		putErr := s.cache.Put(ctx, storage.ContributionEntry{
			Username:  username,
			Day:       day,
			Count:     count,
			FetchedAt: s.now().UTC(),
		})
		if putErr != nil {
			log.Printf("cache put failed user=%s err=%v", username, putErr)
		}
	}
	return count, nil
}

func resolveCanvas(width, height int) (int, int, error) {
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if width < MinWidth || width > MaxWidth {
		return 0, 0, apperrors.New(apperrors.CodeInvalidWidth,
			fmt.Sprintf("width must be between %d and %d", MinWidth, MaxWidth))
	}
	if height < MinHeight || height > MaxHeight {
		return 0, 0, apperrors.New(apperrors.CodeInvalidHeight,
			fmt.Sprintf("height must be between %d and %d", MinHeight, MaxHeight))
	}
	return width, height, nil
}
