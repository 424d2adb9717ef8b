package effects

import (
	"fmt"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/geometry"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
)

// ReflectionConfig describes the mirror point cloud a burst casts on the
// water surface below it.
type ReflectionConfig struct {
	CX       float64 // burst center x
	WaterY   float64 // water line
	Depth    float64 // submersion offset below the water line
	Count    int     // angular samples of the implied burst
	Distance float64 // implied burst travel distance
	Compress float64 // vertical compression factor, e.g. 0.3
	Radius   float64 // reflection point radius
	Color    string
	Delay    float64
	Duration float64
	Loop     float64
}

// ReflectionPoints samples the lower semicircle of an implied burst,
// compresses it vertically and submerges it beneath the water line,
// producing the faint shimmering mirror of an explosion.
func ReflectionPoints(cfg ReflectionConfig) (timeline.Fragment, error) {
	if err := validLoop(cfg.Loop); err != nil {
		return "", fmt.Errorf("reflection: %w", err)
	}
	if err := validCount(cfg.Count); err != nil {
		return "", fmt.Errorf("reflection: %w", err)
	}
	compress := cfg.Compress
	if compress <= 0 {
		compress = 0.3
	}

	fragments := []timeline.Fragment{`<g>`}
	for _, pos := range geometry.CirclePositions(cfg.Count, cfg.Distance) {
		// Only the lower angular semicircle reflects; upper-half points
		// would sit above the water line.
		if pos.DY <= 0 {
			continue
		}
		x := cfg.CX + float64(pos.DX)
		y := cfg.WaterY + cfg.Depth + float64(pos.DY)*compress

		shimmerTimes := []float64{0, cfg.Delay, cfg.Delay + cfg.Duration*0.3, cfg.Delay + cfg.Duration*0.7, cfg.Delay + cfg.Duration*1.2, cfg.Loop}
		shimmerValues := []string{"0", "0", "0.35", "0.15", "0", "0"}
		shimmer, err := timeline.Animate("opacity", shimmerValues, timeline.KeyTimes(shimmerTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{})
		if err != nil {
			return "", fmt.Errorf("reflection shimmer: %w", err)
		}

		open := timeline.Fragment(fmt.Sprintf(
			`<circle cx="%s" cy="%s" r="%s" fill="%s" opacity="0">`,
			timeline.Num(x), timeline.Num(y), timeline.Num(cfg.Radius), cfg.Color,
		))
		fragments = append(fragments, open, shimmer, "</circle>")
	}
	fragments = append(fragments, "</g>")
	return timeline.Join(fragments...), nil
}
