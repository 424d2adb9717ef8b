// Package effects generates the declarative animation fragments that make
// up a fireworks tableau: launch trails, particle bursts in several
// flavors, water reflections, ambient background shots and the waterfall
// cascade.
//
// Every generator is a pure function from a config struct to a validated
// fragment. Generators never read the clock or shared state; all jitter
// comes from an explicit seed, so the same config always yields the same
// markup. Configs are checked up front: a non-positive loop duration or a
// negative particle count is a caller bug and aborts generation.
package effects

import "fmt"

// decelSpline is the cubic bezier used for launch deceleration: fast
// start, soft arrival at the apex.
const decelSpline = "0.16 0.84 0.28 1"

func validLoop(loop float64) error {
	if loop <= 0 {
		return fmt.Errorf("loop duration must be positive, got %v", loop)
	}
	return nil
}

func validCount(count int) error {
	if count < 0 {
		return fmt.Errorf("particle count must be non-negative, got %d", count)
	}
	return nil
}

// repeatSplines builds a keySplines list with one control-point set per
// keyframe segment, as SMIL requires.
func repeatSplines(spline string, segments int) string {
	if segments <= 0 {
		return spline
	}
	out := spline
	for i := 1; i < segments; i++ {
		out += ";" + spline
	}
	return out
}
