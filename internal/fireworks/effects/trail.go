package effects

import (
	"fmt"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
)

// TrailConfig describes one launch trail: a glowing line that rises from
// StartY to EndY, shrinks into its apex and fades.
type TrailConfig struct {
	X        float64 // horizontal position
	StartY   float64 // launch point, typically near the bottom edge
	EndY     float64 // apex where the shell bursts
	Color    string  // resolved hex color
	Width    float64 // stroke width
	Delay    float64 // seconds into the loop before launch
	Duration float64 // rise time in seconds
	Loop     float64 // shared loop duration
}

// Trail renders a rise-and-fade launch trail. The far endpoint climbs
// with deceleration easing, then the near endpoint catches up so the
// line visually shrinks into the burst point. Opacity runs four phases:
// invisible, appear, hold, fade.
func Trail(cfg TrailConfig) (timeline.Fragment, error) {
	if err := validLoop(cfg.Loop); err != nil {
		return "", fmt.Errorf("trail: %w", err)
	}
	if cfg.Duration <= 0 {
		return "", fmt.Errorf("trail: duration must be positive, got %v", cfg.Duration)
	}

	x := timeline.Num(cfg.X)
	startY := timeline.Num(cfg.StartY)
	endY := timeline.Num(cfg.EndY)

	// Far endpoint reaches the apex at delay+duration; the near endpoint
	// starts catching up midway through the rise and arrives shortly
	// after, collapsing the line.
	farTimes := []float64{0, cfg.Delay, cfg.Delay + cfg.Duration, cfg.Loop}
	farValues := []string{startY, startY, endY, endY}
	far, err := timeline.Animate("y2", farValues, timeline.KeyTimes(farTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{
		CalcMode:   "spline",
		KeySplines: repeatSplines(decelSpline, len(farValues)-1),
	})
	if err != nil {
		return "", fmt.Errorf("trail far endpoint: %w", err)
	}

	nearTimes := []float64{0, cfg.Delay + cfg.Duration*0.55, cfg.Delay + cfg.Duration*1.15, cfg.Loop}
	nearValues := []string{startY, startY, endY, endY}
	near, err := timeline.Animate("y1", nearValues, timeline.KeyTimes(nearTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{
		CalcMode:   "spline",
		KeySplines: repeatSplines(decelSpline, len(nearValues)-1),
	})
	if err != nil {
		return "", fmt.Errorf("trail near endpoint: %w", err)
	}

	opacityTimes := []float64{0, cfg.Delay, cfg.Delay + cfg.Duration*0.12, cfg.Delay + cfg.Duration*0.8, cfg.Delay + cfg.Duration*1.2, cfg.Loop}
	opacityValues := []string{"0", "0", "0.9", "0.9", "0", "0"}
	opacity, err := timeline.Animate("opacity", opacityValues, timeline.KeyTimes(opacityTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{})
	if err != nil {
		return "", fmt.Errorf("trail opacity: %w", err)
	}

	open := timeline.Fragment(fmt.Sprintf(
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round" opacity="0">`,
		x, startY, x, startY, cfg.Color, timeline.Num(cfg.Width),
	))
	return timeline.Join(open, far, near, opacity, "</line>"), nil
}
