// Package svgdoc assembles the final SVG document: night-sky gradient,
// seeded star field, themed tableau, optional ambient and cascade
// layers, and the text overlay. Layer order is fixed because later
// fragments paint over earlier ones.
package svgdoc

import (
	"fmt"
	"strings"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/compose"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/effects"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/palette"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/random"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
	"github.com/daisuke8000/grass-fireworks/internal/level"
	"github.com/daisuke8000/grass-fireworks/internal/platform/i18n"
)

// Params describe one rendered image. For fixed Params the output string
// is byte-identical across calls.
type Params struct {
	Width       int
	Height      int
	Username    string
	CommitCount int
	Level       level.Level
	Theme       level.Theme
	Seed        int32
	Cascade     bool // include the bonus waterfall layer
	Loop        float64
}

// Derived seeds keep the star field, ambient layer and cascade on
// independent jitter streams while remaining functions of one base seed.
const (
	starSeedOffset    = 101
	ambientSeedOffset = 211
	cascadeSeedOffset = 307
)

// Document renders the complete SVG string.
func Document(p Params) (string, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return "", fmt.Errorf("svg document: canvas %dx%d must be positive", p.Width, p.Height)
	}
	if p.Loop == 0 {
		p.Loop = compose.DefaultLoop
	}
	w := float64(p.Width)
	h := float64(p.Height)

	fragments := []timeline.Fragment{
		timeline.Fragment(fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
			p.Width, p.Height, p.Width, p.Height,
		)),
		background(p.Width, p.Height),
	}

	stars, err := starField(w, h, p.Seed+starSeedOffset, p.Loop)
	if err != nil {
		return "", fmt.Errorf("star field: %w", err)
	}
	fragments = append(fragments, stars)

	if p.Level > level.Silent {
		ambient, err := effects.AmbientBursts(effects.AmbientConfig{
			Width:  w,
			Height: h,
			Count:  2 + int(p.Level),
			Seed:   p.Seed + ambientSeedOffset,
			Colors: ambientColors(),
			Loop:   p.Loop,
		})
		if err != nil {
			return "", fmt.Errorf("ambient layer: %w", err)
		}
		fragments = append(fragments, ambient)

		tableau, err := compose.Tableau(compose.Params{
			Theme:  p.Theme,
			Level:  p.Level,
			Width:  w,
			Height: h,
			Loop:   p.Loop,
		})
		if err != nil {
			return "", fmt.Errorf("tableau: %w", err)
		}
		fragments = append(fragments, tableau)
	}

	if p.Cascade {
		cascade, err := effects.Waterfall(effects.WaterfallConfig{
			Width:  w,
			Height: h,
			Seed:   p.Seed + cascadeSeedOffset,
			Loop:   p.Loop,
		})
		if err != nil {
			return "", fmt.Errorf("cascade layer: %w", err)
		}
		fragments = append(fragments, cascade)
	}

	fragments = append(fragments, overlay(p), "</svg>")
	return string(timeline.Join(fragments...)), nil
}

// background paints the vertical night gradient.
func background(width, height int) timeline.Fragment {
	return timeline.Fragment(fmt.Sprintf(
		`<defs><linearGradient id="night-sky" x1="0" y1="0" x2="0" y2="1">`+
			`<stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`+
			`</linearGradient></defs>`+
			`<rect width="%d" height="%d" fill="url(#night-sky)"/>`,
		palette.MustLookup("deep-night"), palette.MustLookup("night"),
		width, height,
	))
}

// starField scatters twinkling pinpricks across the sky. Density scales
// with canvas area; positions and twinkle phases come from the seed.
func starField(w, h float64, seed int32, loop float64) (timeline.Fragment, error) {
	rng := random.New(seed)
	count := int(w * h / 2200)
	if count < 12 {
		count = 12
	}
	hex := palette.MustLookup("silver")

	fragments := []timeline.Fragment{`<g>`}
	for i := 0; i < count; i++ {
		x := rng.Range(0, w)
		y := rng.Range(0, h*0.75)
		r := rng.Range(0.4, 1.1)
		base := rng.Range(0.2, 0.6)
		peak := base + rng.Range(0.25, 0.4)
		phase := rng.Range(0, loop)

		twinkleTimes := []float64{0, phase, phase + loop*0.25, loop}
		twinkleValues := []string{
			timeline.Num(base), timeline.Num(base), timeline.Num(peak), timeline.Num(base),
		}
		twinkle, err := timeline.Animate("opacity", twinkleValues, timeline.KeyTimes(twinkleTimes, loop, 0), loop, timeline.Options{})
		if err != nil {
			return "", err
		}
		open := timeline.Fragment(fmt.Sprintf(
			`<circle cx="%s" cy="%s" r="%s" fill="%s" opacity="%s">`,
			timeline.Num(x), timeline.Num(y), timeline.Num(r), hex, timeline.Num(base),
		))
		fragments = append(fragments, open, twinkle, "</circle>")
	}
	fragments = append(fragments, "</g>")
	return timeline.Join(fragments...), nil
}

func ambientColors() []string {
	return []string{
		palette.MustLookup("moonlight"),
		palette.MustLookup("sky"),
		palette.MustLookup("sakura"),
		palette.MustLookup("mint"),
	}
}

// overlay renders the caption block: username, pluralized commit count,
// level display name, and the cascade label when the bonus is active.
func overlay(p Params) timeline.Fragment {
	textHex := palette.MustLookup("ivory")
	dimHex := palette.MustLookup("moonlight")
	label := i18n.CommitLabel(p.CommitCount)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<g font-family="Helvetica,Arial,sans-serif">`+
			`<text x="12" y="%d" font-size="13" fill="%s">%s</text>`+
			`<text x="12" y="%d" font-size="11" fill="%s">%s</text>`+
			`<text x="%d" y="%d" font-size="11" fill="%s" text-anchor="end">%s</text>`,
		p.Height-26, textHex, EscapeXML(p.Username),
		p.Height-10, dimHex, EscapeXML(label),
		p.Width-12, p.Height-10, dimHex, EscapeXML(p.Level.DisplayName()),
	)
	if p.Cascade {
		fmt.Fprintf(&b,
			`<text x="%d" y="%d" font-size="11" fill="%s" text-anchor="end">%s</text>`,
			p.Width-12, p.Height-26, palette.MustLookup("gold"), EscapeXML("Golden Cascade"),
		)
	}
	b.WriteString("</g>")
	return timeline.Fragment(b.String())
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML replaces the five XML special characters in dynamic text.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
