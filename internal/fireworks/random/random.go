// Package random provides the deterministic pseudo-random stream that
// drives position jitter and timing stagger in generated fireworks.
//
// Rendering the same username twice must produce byte-identical SVG, so
// math/rand is deliberately avoided in favor of a small mulberry32
// generator whose full sequence is fixed by its 32-bit seed.
package random

// Source is a mulberry32 pseudo-random stream. The zero value is usable
// but callers normally construct one with New. A Source is not safe for
// concurrent use; each generation call owns its own stream.
type Source struct {
	state uint32
}

// New returns a stream seeded with the given value. The same seed always
// yields the same infinite sequence of draws.
func New(seed int32) *Source {
	return &Source{state: uint32(seed)}
}

// Float64 advances the stream and returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state += 0x6d2b79f5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// IntN returns a value in [0, n). n <= 0 yields 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float64() * float64(n))
}

// Range returns a value in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// StringSeed hashes a string to a non-negative seed using a polynomial
// rolling hash with 32-bit signed overflow. Stable across runs and
// platforms: the same username always maps to the same seed.
func StringSeed(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	if h < 0 {
		if h == -2147483648 {
			return 2147483647
		}
		return -h
	}
	return h
}
