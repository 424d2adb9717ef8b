package compose

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/palette"
	"github.com/daisuke8000/grass-fireworks/internal/level"
)

//go:embed choreography/*.yaml
var choreographyFS embed.FS

// Entry is one shell in a tableau: where it bursts, when, and how.
type Entry struct {
	X        float64 `yaml:"x"`        // burst center as a width ratio
	Y        float64 `yaml:"y"`        // burst center as a height ratio
	Delay    float64 `yaml:"delay"`    // launch delay in seconds
	Color    string  `yaml:"color"`    // palette token
	Count    int     `yaml:"count"`    // particle count
	Distance float64 `yaml:"distance"` // particle travel in pixels
	Kind     string  `yaml:"kind"`     // radial, rotating, gravity, heart, star
	Rotation float64 `yaml:"rotation"` // degrees, rotating kind only
	Drop     float64 `yaml:"drop"`     // droop in pixels, gravity kind only
	Reflect  bool    `yaml:"reflect"`  // mirror the burst on the water
}

type tableFile struct {
	Levels map[int][]Entry `yaml:"levels"`
}

var burstKinds = map[string]bool{
	"radial":   true,
	"rotating": true,
	"gravity":  true,
	"heart":    true,
	"star":     true,
}

// loadTables decodes and validates every embedded choreography file.
// Each theme must cover levels 1 through 5 with at least one entry, every
// color token must exist in the palette, and every kind must be known.
// Violations are authoring bugs caught at process start.
func loadTables(fsys fs.FS) (map[level.Theme]map[level.Level][]Entry, error) {
	tables := make(map[level.Theme]map[level.Level][]Entry)
	for _, theme := range level.Themes() {
		path := fmt.Sprintf("choreography/%s.yaml", theme)
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read choreography for theme %q: %w", theme, err)
		}
		var file tableFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse choreography for theme %q: %w", theme, err)
		}

		byLevel := make(map[level.Level][]Entry, 5)
		for n := 1; n <= 5; n++ {
			entries, ok := file.Levels[n]
			if !ok || len(entries) == 0 {
				return nil, fmt.Errorf("theme %q: level %d has no choreography entries", theme, n)
			}
			for i, e := range entries {
				if err := validateEntry(e); err != nil {
					return nil, fmt.Errorf("theme %q level %d entry %d: %w", theme, n, i, err)
				}
			}
			byLevel[level.Level(n)] = entries
		}
		tables[theme] = byLevel
	}
	return tables, nil
}

func validateEntry(e Entry) error {
	if !burstKinds[e.Kind] {
		return fmt.Errorf("unknown burst kind %q", e.Kind)
	}
	if !palette.Has(e.Color) {
		return fmt.Errorf("unknown palette color %q", e.Color)
	}
	if e.X < 0 || e.X > 1 || e.Y < 0 || e.Y > 1 {
		return fmt.Errorf("burst position (%v, %v) outside canvas ratios", e.X, e.Y)
	}
	if e.Count <= 0 {
		return fmt.Errorf("particle count %d must be positive", e.Count)
	}
	if e.Distance <= 0 {
		return fmt.Errorf("distance %v must be positive", e.Distance)
	}
	if e.Delay < 0 {
		return fmt.Errorf("delay %v must be non-negative", e.Delay)
	}
	if e.Kind == "rotating" && e.Rotation == 0 {
		return fmt.Errorf("rotating burst needs a non-zero rotation")
	}
	if e.Kind == "gravity" && e.Drop <= 0 {
		return fmt.Errorf("gravity burst needs a positive drop")
	}
	return nil
}
