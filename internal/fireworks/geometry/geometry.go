// Package geometry computes particle offset patterns for burst effects.
package geometry

import "math"

// Position is a signed integer offset from a burst origin. Sequence order
// matters downstream: shaped bursts stagger particles by index.
type Position struct {
	DX int
	DY int
}

// CirclePositions returns count offsets evenly spaced around a circle of
// the given radius. count <= 0 yields an empty slice.
func CirclePositions(count int, radius float64) []Position {
	if count <= 0 {
		return nil
	}
	positions := make([]Position, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		positions = append(positions, Position{
			DX: int(math.Round(math.Cos(angle) * radius)),
			DY: int(math.Round(math.Sin(angle) * radius)),
		})
	}
	return positions
}

// HeartPositions traces the classic parametric heart curve. The curve's y
// is negated so the heart points down the screen axis the right way up in
// SVG coordinates (y grows downward).
func HeartPositions(count int, scale float64) []Position {
	if count <= 0 {
		return nil
	}
	positions := make([]Position, 0, count)
	for i := 0; i < count; i++ {
		t := 2 * math.Pi * float64(i) / float64(count)
		x := 16 * math.Pow(math.Sin(t), 3)
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
		positions = append(positions, Position{
			DX: int(math.Round(x * scale)),
			DY: int(math.Round(y * scale)),
		})
	}
	return positions
}

// starSlots is the number of angular slots in a 5-pointed star outline
// (5 outer tips interleaved with 5 inner notches).
const starSlots = 10

// StarPositions places count offsets on a 5-pointed star outline,
// alternating between outerRadius and innerRadius across ten angular
// slots. The first slot points straight up. Indices beyond ten wrap.
func StarPositions(count int, outerRadius, innerRadius float64) []Position {
	if count <= 0 {
		return nil
	}
	positions := make([]Position, 0, count)
	for i := 0; i < count; i++ {
		slot := i % starSlots
		radius := outerRadius
		if slot%2 == 1 {
			radius = innerRadius
		}
		angle := 2*math.Pi*float64(slot)/starSlots - math.Pi/2
		positions = append(positions, Position{
			DX: int(math.Round(math.Cos(angle) * radius)),
			DY: int(math.Round(math.Sin(angle) * radius)),
		})
	}
	return positions
}
