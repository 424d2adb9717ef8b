package effects

import (
	"fmt"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/geometry"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
)

// BurstConfig describes a particle explosion centered on (CX, CY).
type BurstConfig struct {
	CX       float64
	CY       float64
	Count    int     // number of particles
	Distance float64 // terminal travel distance from the center
	Radius   float64 // initial particle radius
	Color    string  // resolved hex color
	Delay    float64 // seconds into the loop before the burst fires
	Duration float64 // expansion time in seconds
	Loop     float64
}

func (cfg BurstConfig) validate(kind string) error {
	if err := validLoop(cfg.Loop); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	if err := validCount(cfg.Count); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%s: duration must be positive, got %v", kind, cfg.Duration)
	}
	return nil
}

// RadialBurst fires Count particles simultaneously from the center to
// evenly spaced points on a circle of radius Distance. All particles
// share one timeline shape; only the spatial angle differs.
func RadialBurst(cfg BurstConfig) (timeline.Fragment, error) {
	if err := cfg.validate("radial burst"); err != nil {
		return "", err
	}
	particles, err := burstParticles(cfg, geometry.CirclePositions(cfg.Count, cfg.Distance), 0)
	if err != nil {
		return "", err
	}
	return timeline.Join("<g>", particles, "</g>"), nil
}

// RotatingBurstConfig adds spin to a radial burst.
type RotatingBurstConfig struct {
	BurstConfig
	Rotation float64 // total rotation in degrees over the burst life
}

// RotatingBurst is a radial burst inside a group that carries an additive
// rotation about the explosion center, spinning while expanding.
func RotatingBurst(cfg RotatingBurstConfig) (timeline.Fragment, error) {
	if err := cfg.validate("rotating burst"); err != nil {
		return "", err
	}
	particles, err := burstParticles(cfg.BurstConfig, geometry.CirclePositions(cfg.Count, cfg.Distance), 0)
	if err != nil {
		return "", err
	}

	center := timeline.Num(cfg.CX) + " " + timeline.Num(cfg.CY)
	spinTimes := []float64{0, cfg.Delay, cfg.Loop}
	spinValues := []string{"0 " + center, "0 " + center, timeline.Num(cfg.Rotation) + " " + center}
	spin, err := timeline.AnimateTransform("rotate", spinValues, timeline.KeyTimes(spinTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{Additive: true})
	if err != nil {
		return "", fmt.Errorf("rotating burst spin: %w", err)
	}
	return timeline.Join("<g>", spin, particles, "</g>"), nil
}

// GravityBurstConfig adds a terminal droop to a radial burst.
type GravityBurstConfig struct {
	BurstConfig
	Drop float64 // downward shift after the expansion phase
}

// GravityBurst expands like a radial burst, holds, then droops by Drop
// and settles: a four-phase piecewise path per particle.
func GravityBurst(cfg GravityBurstConfig) (timeline.Fragment, error) {
	if err := cfg.validate("gravity burst"); err != nil {
		return "", err
	}

	fragments := make([]timeline.Fragment, 0, cfg.Count+2)
	fragments = append(fragments, "<g>")
	for _, pos := range geometry.CirclePositions(cfg.Count, cfg.Distance) {
		at := fmt.Sprintf("%d %d", pos.DX, pos.DY)
		dropped := fmt.Sprintf("%d %s", pos.DX, timeline.Num(float64(pos.DY)+cfg.Drop))
		moveTimes := []float64{
			0,
			cfg.Delay,
			cfg.Delay + cfg.Duration*0.5,
			cfg.Delay + cfg.Duration*0.7,
			cfg.Delay + cfg.Duration*1.3,
			cfg.Loop,
		}
		moveValues := []string{"0 0", "0 0", at, at, dropped, dropped}
		particle, err := burstParticle(cfg.BurstConfig, moveValues, moveTimes)
		if err != nil {
			return "", fmt.Errorf("gravity burst: %w", err)
		}
		fragments = append(fragments, particle)
	}
	fragments = append(fragments, "</g>")
	return timeline.Join(fragments...), nil
}

// ShapedBurstConfig draws a burst whose particles land on a precomputed
// outline (heart, star) instead of a uniform circle.
type ShapedBurstConfig struct {
	CX        float64
	CY        float64
	Positions []geometry.Position
	Radius    float64
	Color     string
	Delay     float64
	Duration  float64
	Loop      float64
}

// particleStagger is the per-index launch offset that makes shaped
// bursts draw on point by point.
const particleStagger = 0.02

// ShapedBurst fires one particle per precomputed position, each delayed
// by its index so the shape traces itself in.
func ShapedBurst(cfg ShapedBurstConfig) (timeline.Fragment, error) {
	if err := validLoop(cfg.Loop); err != nil {
		return "", fmt.Errorf("shaped burst: %w", err)
	}
	if cfg.Duration <= 0 {
		return "", fmt.Errorf("shaped burst: duration must be positive, got %v", cfg.Duration)
	}
	base := BurstConfig{
		CX:       cfg.CX,
		CY:       cfg.CY,
		Count:    len(cfg.Positions),
		Radius:   cfg.Radius,
		Color:    cfg.Color,
		Delay:    cfg.Delay,
		Duration: cfg.Duration,
		Loop:     cfg.Loop,
	}
	particles, err := burstParticles(base, cfg.Positions, particleStagger)
	if err != nil {
		return "", fmt.Errorf("shaped burst: %w", err)
	}
	return timeline.Join("<g>", particles, "</g>"), nil
}

// burstParticles renders one particle per position with the shared burst
// timeline, optionally staggering each particle by index.
func burstParticles(cfg BurstConfig, positions []geometry.Position, stagger float64) (timeline.Fragment, error) {
	fragments := make([]timeline.Fragment, 0, len(positions))
	for i, pos := range positions {
		delay := cfg.Delay + float64(i)*stagger
		at := fmt.Sprintf("%d %d", pos.DX, pos.DY)
		moveTimes := []float64{0, delay, delay + cfg.Duration, cfg.Loop}
		moveValues := []string{"0 0", "0 0", at, at}
		shifted := cfg
		shifted.Delay = delay
		particle, err := burstParticle(shifted, moveValues, moveTimes)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, particle)
	}
	return timeline.Join(fragments...), nil
}

// burstParticle renders a single burst particle: a circle that translates
// along moveValues, flashes to full opacity then fades, and shrinks to a
// fraction of its initial radius.
func burstParticle(cfg BurstConfig, moveValues []string, moveTimes []float64) (timeline.Fragment, error) {
	move, err := timeline.AnimateTransform("translate", moveValues, timeline.KeyTimes(moveTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{
		CalcMode:   "spline",
		KeySplines: repeatSplines(decelSpline, len(moveValues)-1),
	})
	if err != nil {
		return "", fmt.Errorf("particle translate: %w", err)
	}

	opacityTimes := []float64{0, cfg.Delay, cfg.Delay + 0.05, cfg.Delay + cfg.Duration*0.6, cfg.Delay + cfg.Duration*1.1, cfg.Loop}
	opacityValues := []string{"0", "0", "1", "0.85", "0", "0"}
	opacity, err := timeline.Animate("opacity", opacityValues, timeline.KeyTimes(opacityTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{})
	if err != nil {
		return "", fmt.Errorf("particle opacity: %w", err)
	}

	shrunk := timeline.Num(cfg.Radius * 0.3)
	full := timeline.Num(cfg.Radius)
	radiusTimes := []float64{0, cfg.Delay, cfg.Delay + cfg.Duration, cfg.Loop}
	radiusValues := []string{full, full, shrunk, shrunk}
	radius, err := timeline.Animate("r", radiusValues, timeline.KeyTimes(radiusTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{})
	if err != nil {
		return "", fmt.Errorf("particle radius: %w", err)
	}

	open := timeline.Fragment(fmt.Sprintf(
		`<circle cx="%s" cy="%s" r="%s" fill="%s" opacity="0">`,
		timeline.Num(cfg.CX), timeline.Num(cfg.CY), full, cfg.Color,
	))
	return timeline.Join(open, move, opacity, radius, "</circle>"), nil
}
