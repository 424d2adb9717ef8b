// Package level classifies a daily commit count into a visual tier and
// selects the theme that applies on a given date.
package level

import (
	"fmt"
	"time"
)

// Level is the visual tier for a commit count. Zero is the silent
// no-firework tier; five is the grand finale.
type Level int

// The closed set of levels.
const (
	Silent Level = iota
	One
	Two
	Three
	Four
	Five
)

// FromCount maps a daily commit count to its level. Bands are inclusive:
// 1-3, 4-7, 8-15, 16-30, and 31 or more.
func FromCount(count int) Level {
	switch {
	case count <= 0:
		return Silent
	case count <= 3:
		return One
	case count <= 7:
		return Two
	case count <= 15:
		return Three
	case count <= 30:
		return Four
	default:
		return Five
	}
}

// Parse converts an explicit level parameter.
func Parse(n int) (Level, error) {
	if n < 0 || n > 5 {
		return Silent, fmt.Errorf("level must be between 0 and 5, got %d", n)
	}
	return Level(n), nil
}

// DisplayName is the overlay caption for the level.
func (l Level) DisplayName() string {
	switch l {
	case Silent:
		return "Silent Night"
	case One:
		return "First Spark"
	case Two:
		return "Twin Bloom"
	case Three:
		return "Night Bloom"
	case Four:
		return "Sky Garden"
	default:
		return "Grand Finale"
	}
}

// Theme is a named visual style bundle selecting per-level choreography.
type Theme string

// The two themes. Kata is the angular classic set; Hana is the floral
// set with heart and star shells.
const (
	Kata Theme = "kata"
	Hana Theme = "hana"
)

// Themes lists every theme in display order.
func Themes() []Theme {
	return []Theme{Kata, Hana}
}

// ParseTheme validates a theme query parameter.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Kata:
		return Kata, nil
	case Hana:
		return Hana, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// ForDate rotates the theme daily: even day of year picks Hana, odd
// picks Kata. YearDay is 1-based and leap-aware, so the rotation stays
// stable across calendar-year boundaries.
func ForDate(t time.Time) Theme {
	if t.YearDay()%2 == 0 {
		return Hana
	}
	return Kata
}

// LuckyDay reports whether the date qualifies for the bonus cascade:
// every seventh day of the year.
func LuckyDay(t time.Time) bool {
	return t.YearDay()%7 == 0
}
