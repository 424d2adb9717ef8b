package effects

import (
	"fmt"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/palette"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/random"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
)

// WaterfallConfig describes the bonus cascade: dense dashed streams
// pouring from a horizontal wire line, in the style of a Niagara shell.
type WaterfallConfig struct {
	Width  float64
	Height float64
	Seed   int32
	Loop   float64
}

// streamPattern cycles core stream colors. Indexing is per stream, so
// neighbouring streams alternate warm tones.
var streamPattern = []string{"gold", "amber", "ivory", "ember"}

// wireRatio places the horizontal wire at this fraction of the height.
const wireRatio = 0.18

// fallRatio is the fraction of the canvas height the streams cover.
const fallRatio = 0.62

// Waterfall renders the cascade as four layers: wide faint glow streams,
// dashed core streams with a moving dash offset simulating flow, narrow
// bright highlights, and falling spark particles. Stream positions,
// lengths and speeds are jittered per stream from the seed.
func Waterfall(cfg WaterfallConfig) (timeline.Fragment, error) {
	if err := validLoop(cfg.Loop); err != nil {
		return "", fmt.Errorf("waterfall: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", fmt.Errorf("waterfall: canvas %vx%v must be positive", cfg.Width, cfg.Height)
	}

	rng := random.New(cfg.Seed)
	wireY := cfg.Height * wireRatio
	left := cfg.Width * 0.08
	right := cfg.Width * 0.92
	streamCount := int((right - left) / 7)
	if streamCount < 8 {
		streamCount = 8
	}

	fragments := []timeline.Fragment{`<g>`}

	wire, err := wireLine(left, right, wireY, cfg.Loop)
	if err != nil {
		return "", err
	}
	fragments = append(fragments, wire)

	glowHex := palette.MustLookup("amber")
	for i := 0; i < streamCount/2; i++ {
		x := left + (right-left)*rng.Float64()
		frag, err := stream(streamConfig{
			x:       x,
			topY:    wireY,
			length:  cfg.Height*fallRatio*rng.Range(0.8, 1.0) - wireY,
			color:   glowHex,
			width:   4,
			opacity: 0.12,
			dash:    "6 10",
			period:  16,
			flow:    rng.Range(1.6, 2.4),
			loop:    cfg.Loop,
		})
		if err != nil {
			return "", fmt.Errorf("waterfall glow stream %d: %w", i, err)
		}
		fragments = append(fragments, frag)
	}

	for i := 0; i < streamCount; i++ {
		x := left + (right-left)*(float64(i)+rng.Range(0.1, 0.9))/float64(streamCount)
		hex := palette.MustLookup(streamPattern[i%len(streamPattern)])
		frag, err := stream(streamConfig{
			x:       x,
			topY:    wireY,
			length:  cfg.Height*fallRatio*rng.Range(0.75, 1.0) - wireY,
			color:   hex,
			width:   2,
			opacity: 0.55,
			dash:    "4 7",
			period:  11,
			flow:    rng.Range(1.1, 1.9),
			loop:    cfg.Loop,
		})
		if err != nil {
			return "", fmt.Errorf("waterfall core stream %d: %w", i, err)
		}
		fragments = append(fragments, frag)
	}

	brightHex := palette.MustLookup("spark-white")
	for i := 0; i < streamCount/3; i++ {
		x := left + (right-left)*rng.Float64()
		frag, err := stream(streamConfig{
			x:       x,
			topY:    wireY,
			length:  cfg.Height*fallRatio*rng.Range(0.6, 0.9) - wireY,
			color:   brightHex,
			width:   1,
			opacity: 0.8,
			dash:    "2 9",
			period:  11,
			flow:    rng.Range(0.8, 1.4),
			loop:    cfg.Loop,
		})
		if err != nil {
			return "", fmt.Errorf("waterfall highlight stream %d: %w", i, err)
		}
		fragments = append(fragments, frag)
	}

	sparkHex := palette.MustLookup("gold")
	for i := 0; i < streamCount/2; i++ {
		spark, err := fallingSpark(cfg, rng, left, right, wireY, sparkHex)
		if err != nil {
			return "", fmt.Errorf("waterfall spark %d: %w", i, err)
		}
		fragments = append(fragments, spark)
	}

	fragments = append(fragments, "</g>")
	return timeline.Join(fragments...), nil
}

// wireLine draws the horizontal support line the streams hang from, with
// a slow brightness pulse.
func wireLine(left, right, y, loop float64) (timeline.Fragment, error) {
	pulseTimes := []float64{0, loop * 0.5, loop}
	pulseValues := []string{"0.5", "0.85", "0.5"}
	pulse, err := timeline.Animate("opacity", pulseValues, timeline.KeyTimes(pulseTimes, loop, 0), loop, timeline.Options{})
	if err != nil {
		return "", fmt.Errorf("waterfall wire: %w", err)
	}
	open := timeline.Fragment(fmt.Sprintf(
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1" opacity="0.5">`,
		timeline.Num(left), timeline.Num(y), timeline.Num(right), timeline.Num(y), palette.MustLookup("gold"),
	))
	return timeline.Join(open, pulse, "</line>"), nil
}

type streamConfig struct {
	x       float64
	topY    float64
	length  float64
	color   string
	width   float64
	opacity float64
	dash    string  // stroke-dasharray
	period  float64 // sum of the dash pattern, one full cycle of offset
	flow    float64 // seconds per dash cycle
	loop    float64
}

// stream renders one vertical dashed line whose dash offset slides by a
// full pattern period per flow interval, reading as continuous downward
// motion. The offset animation runs on its own short cycle; it still
// loops cleanly because the pattern is periodic.
func stream(cfg streamConfig) (timeline.Fragment, error) {
	if cfg.length <= 0 {
		cfg.length = 10
	}
	flow, err := timeline.Animate("stroke-dashoffset",
		[]string{"0", timeline.Num(-cfg.period)},
		[]string{"0", "1"},
		cfg.flow,
		timeline.Options{CalcMode: "linear"},
	)
	if err != nil {
		return "", err
	}
	open := timeline.Fragment(fmt.Sprintf(
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-dasharray="%s" opacity="%s">`,
		timeline.Num(cfg.x), timeline.Num(cfg.topY),
		timeline.Num(cfg.x), timeline.Num(cfg.topY+cfg.length),
		cfg.color, timeline.Num(cfg.width), cfg.dash, timeline.Num(cfg.opacity),
	))
	return timeline.Join(open, flow, "</line>"), nil
}

// fallingSpark renders a loose ember detaching from the wire and
// drifting down with a slight horizontal push.
func fallingSpark(cfg WaterfallConfig, rng *random.Source, left, right, wireY float64, hex string) (timeline.Fragment, error) {
	x := left + (right-left)*rng.Float64()
	drift := rng.Range(-8, 8)
	fall := cfg.Height*fallRatio - wireY + rng.Range(-10, 20)
	delay := rng.Range(0, cfg.Loop*0.8)
	dur := rng.Range(1.4, 2.6)

	moveTimes := []float64{0, delay, delay + dur, cfg.Loop}
	moveValues := []string{"0 0", "0 0", fmt.Sprintf("%s %s", timeline.Num(drift), timeline.Num(fall)), fmt.Sprintf("%s %s", timeline.Num(drift), timeline.Num(fall))}
	move, err := timeline.AnimateTransform("translate", moveValues, timeline.KeyTimes(moveTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{})
	if err != nil {
		return "", err
	}

	fadeTimes := []float64{0, delay, delay + dur*0.2, delay + dur, cfg.Loop}
	fadeValues := []string{"0", "0", "0.9", "0", "0"}
	fade, err := timeline.Animate("opacity", fadeValues, timeline.KeyTimes(fadeTimes, cfg.Loop, 0), cfg.Loop, timeline.Options{})
	if err != nil {
		return "", err
	}

	open := timeline.Fragment(fmt.Sprintf(
		`<circle cx="%s" cy="%s" r="1.2" fill="%s" opacity="0">`,
		timeline.Num(x), timeline.Num(wireY), hex,
	))
	return timeline.Join(open, move, fade, "</circle>"), nil
}
