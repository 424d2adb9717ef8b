// Package timeline builds validated SMIL animation fragments.
//
// Every animated element in a generated image is phase-locked to one
// repeating loop: absolute times in seconds are normalized to keyTimes
// fractions of that loop so independently authored sub-animations restart
// together. Fragments are opaque once constructed; the length parity
// between values and keyTimes is checked at the construction site, never
// discovered after concatenation.
package timeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Fragment is a validated chunk of SVG markup. Producers return it
// instead of raw strings so a malformed timeline cannot sneak into a
// document through plain concatenation.
type Fragment string

// Join concatenates fragments in order. Order is load-bearing: later
// fragments paint over earlier ones.
func Join(fragments ...Fragment) Fragment {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(string(f))
	}
	return Fragment(b.String())
}

// ErrLengthMismatch reports a values/keyTimes cardinality bug at the
// construction site. It is a caller error, never retried.
var ErrLengthMismatch = errors.New("values and keyTimes length mismatch")

// DefaultPrecision is the fixed decimal precision of keyTimes fractions.
const DefaultPrecision = 4

// intermediateCap keeps every non-terminal keyframe strictly before the
// loop end so the terminal keyframe (exactly 1) stays distinguishable and
// the animation visually completes before the loop restarts.
const intermediateCap = 0.99

// KeyTime converts an absolute time in seconds to a loop fraction string,
// clamped to 0.99. precision <= 0 selects DefaultPrecision.
func KeyTime(t, loop float64, precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	v := t / loop
	if v > intermediateCap {
		v = intermediateCap
	}
	if v < 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// KeyTimes converts a sequence of absolute times to loop fractions. The
// last element is the terminal anchor: when its raw value reaches the
// loop duration it becomes exactly "1", otherwise it is clamped like any
// intermediate point.
func KeyTimes(times []float64, loop float64, precision int) []string {
	out := make([]string, len(times))
	for i, t := range times {
		if i == len(times)-1 && t >= loop {
			out[i] = "1"
			continue
		}
		out[i] = KeyTime(t, loop, precision)
	}
	return out
}

// Options tune an animate fragment beyond its value/time core.
type Options struct {
	// CalcMode selects interpolation: linear, discrete, paced or spline.
	// Empty omits the attribute (SMIL defaults to linear).
	CalcMode string
	// KeySplines supplies cubic bezier control points; emitted only when
	// CalcMode is spline.
	KeySplines string
	// Begin offsets the timeline start, in seconds.
	Begin float64
	// Repeat overrides the repeat count. Empty means indefinite looping.
	Repeat string
	// Fill overrides the terminal fill behavior. Empty means freeze.
	Fill string
	// Additive marks the animation as additive (sum) so it stacks with
	// other transforms on the same element.
	Additive bool
}

// Animate builds an <animate> fragment for a plain attribute. It fails
// with ErrLengthMismatch when values and keyTimes differ in length.
func Animate(attr string, values, keyTimes []string, dur float64, opts Options) (Fragment, error) {
	if len(values) != len(keyTimes) {
		return "", fmt.Errorf("animate %q: %w: %d values, %d keyTimes", attr, ErrLengthMismatch, len(values), len(keyTimes))
	}
	var b strings.Builder
	b.WriteString(`<animate attributeName="`)
	b.WriteString(attr)
	b.WriteString(`"`)
	writeTimingAttrs(&b, values, keyTimes, dur, opts)
	b.WriteString("/>")
	return Fragment(b.String()), nil
}

// AnimateTransform builds an <animateTransform> fragment for one
// transform kind (translate, rotate, scale, skewX, skewY). Same contract
// as Animate.
func AnimateTransform(kind string, values, keyTimes []string, dur float64, opts Options) (Fragment, error) {
	if len(values) != len(keyTimes) {
		return "", fmt.Errorf("animateTransform %q: %w: %d values, %d keyTimes", kind, ErrLengthMismatch, len(values), len(keyTimes))
	}
	var b strings.Builder
	b.WriteString(`<animateTransform attributeName="transform" type="`)
	b.WriteString(kind)
	b.WriteString(`"`)
	writeTimingAttrs(&b, values, keyTimes, dur, opts)
	b.WriteString("/>")
	return Fragment(b.String()), nil
}

func writeTimingAttrs(b *strings.Builder, values, keyTimes []string, dur float64, opts Options) {
	b.WriteString(` values="`)
	b.WriteString(strings.Join(values, ";"))
	b.WriteString(`" keyTimes="`)
	b.WriteString(strings.Join(keyTimes, ";"))
	b.WriteString(`" dur="`)
	b.WriteString(Seconds(dur))
	b.WriteString(`"`)
	if opts.Begin != 0 {
		b.WriteString(` begin="`)
		b.WriteString(Seconds(opts.Begin))
		b.WriteString(`"`)
	}
	if opts.CalcMode != "" {
		b.WriteString(` calcMode="`)
		b.WriteString(opts.CalcMode)
		b.WriteString(`"`)
		if opts.CalcMode == "spline" && opts.KeySplines != "" {
			b.WriteString(` keySplines="`)
			b.WriteString(opts.KeySplines)
			b.WriteString(`"`)
		}
	}
	if opts.Additive {
		b.WriteString(` additive="sum"`)
	}
	repeat := opts.Repeat
	if repeat == "" {
		repeat = "indefinite"
	}
	b.WriteString(` repeatCount="`)
	b.WriteString(repeat)
	b.WriteString(`"`)
	fill := opts.Fill
	if fill == "" {
		fill = "freeze"
	}
	b.WriteString(` fill="`)
	b.WriteString(fill)
	b.WriteString(`"`)
}

// Seconds renders a duration value as an SVG clock string, trimming
// insignificant trailing zeros.
func Seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}

// Num renders a coordinate or length with up to two decimals, trimming
// trailing zeros so common integer values stay compact.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
