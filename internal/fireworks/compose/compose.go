// Package compose assembles per-(theme, level) fireworks tableaus from
// the effect generators and the embedded choreography tables.
//
// Dispatch is a lookup table keyed by theme and level, built and
// exhaustiveness-checked at process start: every theme must have a
// composer for levels one through five. Level zero is the explicit
// silent sentinel and never enters the table.
package compose

import (
	"fmt"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/effects"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/geometry"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/palette"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
	"github.com/daisuke8000/grass-fireworks/internal/level"
)

// DefaultLoop is the shared repeat period in seconds. Every timeline in
// one image is normalized against it so the whole tableau restarts in
// phase.
const DefaultLoop = 8.0

// trailRise is how long each launch trail takes to reach its apex; the
// burst fires when the trail arrives.
const trailRise = 1.1

// waterRatio places the implied water line for reflecting bursts.
const waterRatio = 0.82

// Params select and size one tableau.
type Params struct {
	Theme  level.Theme
	Level  level.Level
	Width  float64
	Height float64
	Loop   float64 // zero selects DefaultLoop
}

// Composer renders the tableau for one (theme, level) pair.
type Composer func(Params) (timeline.Fragment, error)

type registryKey struct {
	theme level.Theme
	level level.Level
}

var registry = mustBuildRegistry()

func mustBuildRegistry() map[registryKey]Composer {
	tables, err := loadTables(choreographyFS)
	if err != nil {
		panic(fmt.Sprintf("choreography tables: %v", err))
	}
	reg := make(map[registryKey]Composer, len(tables)*5)
	for theme, byLevel := range tables {
		for lvl, entries := range byLevel {
			entries := entries
			reg[registryKey{theme: theme, level: lvl}] = func(p Params) (timeline.Fragment, error) {
				return composeEntries(p, entries)
			}
		}
	}
	// The loader already guarantees levels 1-5 per theme; re-check here
	// so a registry regression cannot ship a partial table.
	for _, theme := range level.Themes() {
		for n := level.One; n <= level.Five; n++ {
			if _, ok := reg[registryKey{theme: theme, level: n}]; !ok {
				panic(fmt.Sprintf("registry missing composer for theme %q level %d", theme, n))
			}
		}
	}
	return reg
}

// Tableau renders the themed firework group for the given parameters.
// Level zero short-circuits to an empty fragment.
func Tableau(p Params) (timeline.Fragment, error) {
	if p.Level == level.Silent {
		return "", nil
	}
	if p.Loop == 0 {
		p.Loop = DefaultLoop
	}
	if p.Width <= 0 || p.Height <= 0 {
		return "", fmt.Errorf("tableau: canvas %vx%v must be positive", p.Width, p.Height)
	}
	composer, ok := registry[registryKey{theme: p.Theme, level: p.Level}]
	if !ok {
		return "", fmt.Errorf("tableau: no composer for theme %q level %d", p.Theme, p.Level)
	}
	return composer(p)
}

// composeEntries renders every choreographed shell in table order inside
// one named, glow-filtered group.
func composeEntries(p Params, entries []Entry) (timeline.Fragment, error) {
	fragments := []timeline.Fragment{
		glowFilter(),
		timeline.Fragment(fmt.Sprintf(`<g id="fireworks-%s-%d" filter="url(#fw-glow)">`, p.Theme, p.Level)),
	}
	for i, entry := range entries {
		shell, err := composeShell(p, entry)
		if err != nil {
			return "", fmt.Errorf("theme %q level %d shell %d: %w", p.Theme, p.Level, i, err)
		}
		fragments = append(fragments, shell)
	}
	fragments = append(fragments, "</g>")
	return timeline.Join(fragments...), nil
}

// composeShell renders one shell: its launch trail, the burst at the
// apex, and an optional water reflection.
func composeShell(p Params, entry Entry) (timeline.Fragment, error) {
	hex, err := palette.Lookup(entry.Color)
	if err != nil {
		return "", err
	}
	cx := p.Width * entry.X
	cy := p.Height * entry.Y
	burstDelay := entry.Delay + trailRise

	trail, err := effects.Trail(effects.TrailConfig{
		X:        cx,
		StartY:   p.Height * 0.96,
		EndY:     cy,
		Color:    hex,
		Width:    1.5,
		Delay:    entry.Delay,
		Duration: trailRise,
		Loop:     p.Loop,
	})
	if err != nil {
		return "", err
	}

	burst, err := composeBurst(p, entry, hex, cx, cy, burstDelay)
	if err != nil {
		return "", err
	}

	parts := []timeline.Fragment{trail, burst}
	if entry.Reflect {
		reflection, err := effects.ReflectionPoints(effects.ReflectionConfig{
			CX:       cx,
			WaterY:   p.Height * waterRatio,
			Depth:    6,
			Count:    entry.Count,
			Distance: entry.Distance,
			Compress: 0.3,
			Radius:   1.4,
			Color:    hex,
			Delay:    burstDelay,
			Duration: 1.6,
			Loop:     p.Loop,
		})
		if err != nil {
			return "", err
		}
		parts = append(parts, reflection)
	}
	return timeline.Join(parts...), nil
}

func composeBurst(p Params, entry Entry, hex string, cx, cy, delay float64) (timeline.Fragment, error) {
	base := effects.BurstConfig{
		CX:       cx,
		CY:       cy,
		Count:    entry.Count,
		Distance: entry.Distance,
		Radius:   2.2,
		Color:    hex,
		Delay:    delay,
		Duration: 1.5,
		Loop:     p.Loop,
	}
	switch entry.Kind {
	case "radial":
		return effects.RadialBurst(base)
	case "rotating":
		return effects.RotatingBurst(effects.RotatingBurstConfig{BurstConfig: base, Rotation: entry.Rotation})
	case "gravity":
		return effects.GravityBurst(effects.GravityBurstConfig{BurstConfig: base, Drop: entry.Drop})
	case "heart":
		return effects.ShapedBurst(effects.ShapedBurstConfig{
			CX:        cx,
			CY:        cy,
			Positions: geometry.HeartPositions(entry.Count, entry.Distance/16),
			Radius:    2,
			Color:     hex,
			Delay:     delay,
			Duration:  1.4,
			Loop:      p.Loop,
		})
	case "star":
		return effects.ShapedBurst(effects.ShapedBurstConfig{
			CX:        cx,
			CY:        cy,
			Positions: geometry.StarPositions(entry.Count, entry.Distance, entry.Distance*0.4),
			Radius:    2,
			Color:     hex,
			Delay:     delay,
			Duration:  1.4,
			Loop:      p.Loop,
		})
	default:
		// Unreachable: kinds are validated at load.
		return "", fmt.Errorf("unknown burst kind %q", entry.Kind)
	}
}

// glowFilter is the shared soft-glow definition every tableau group
// references.
func glowFilter() timeline.Fragment {
	return `<defs><filter id="fw-glow" x="-60%" y="-60%" width="220%" height="220%"><feGaussianBlur stdDeviation="1.6" result="blur"/><feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge></filter></defs>`
}
