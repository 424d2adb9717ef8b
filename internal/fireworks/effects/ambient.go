package effects

import (
	"fmt"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/random"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
)

// AmbientConfig scatters small background shots around the canvas edges.
type AmbientConfig struct {
	Width  float64
	Height float64
	Count  int
	Seed   int32
	Colors []string // resolved hex colors cycled through with jitter
	Loop   float64
}

// AmbientBursts renders Count faint trail-and-burst pairs near the left
// and right canvas bands, keeping the center clear for the main tableau.
// Positions, timing and colors are jittered from the seed, staggered
// across the whole loop so the background never goes fully dark.
func AmbientBursts(cfg AmbientConfig) (timeline.Fragment, error) {
	if err := validLoop(cfg.Loop); err != nil {
		return "", fmt.Errorf("ambient bursts: %w", err)
	}
	if err := validCount(cfg.Count); err != nil {
		return "", fmt.Errorf("ambient bursts: %w", err)
	}
	if len(cfg.Colors) == 0 {
		return "", fmt.Errorf("ambient bursts: at least one color is required")
	}

	rng := random.New(cfg.Seed)
	fragments := []timeline.Fragment{`<g>`}
	for i := 0; i < cfg.Count; i++ {
		// Alternate side bands: [5%,25%] and [75%,95%] of the width.
		var x float64
		if i%2 == 0 {
			x = cfg.Width * rng.Range(0.05, 0.25)
		} else {
			x = cfg.Width * rng.Range(0.75, 0.95)
		}
		apexY := cfg.Height * rng.Range(0.15, 0.45)
		launchY := cfg.Height * 0.95
		delay := cfg.Loop*float64(i)/float64(cfg.Count) + rng.Range(0, 0.4)
		rise := rng.Range(0.9, 1.5)
		color := cfg.Colors[rng.IntN(len(cfg.Colors))]

		trail, err := Trail(TrailConfig{
			X:        x,
			StartY:   launchY,
			EndY:     apexY,
			Color:    color,
			Width:    1,
			Delay:    delay,
			Duration: rise,
			Loop:     cfg.Loop,
		})
		if err != nil {
			return "", fmt.Errorf("ambient trail %d: %w", i, err)
		}

		burst, err := RadialBurst(BurstConfig{
			CX:       x,
			CY:       apexY,
			Count:    6 + rng.IntN(3),
			Distance: rng.Range(12, 24),
			Radius:   1.5,
			Color:    color,
			Delay:    delay + rise,
			Duration: rng.Range(0.8, 1.3),
			Loop:     cfg.Loop,
		})
		if err != nil {
			return "", fmt.Errorf("ambient burst %d: %w", i, err)
		}

		fragments = append(fragments, `<g opacity="0.55">`, trail, burst, "</g>")
	}
	fragments = append(fragments, "</g>")
	return timeline.Join(fragments...), nil
}
