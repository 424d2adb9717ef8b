package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
	"github.com/daisuke8000/grass-fireworks/internal/level"
)

func render(t *testing.T, theme level.Theme, lvl level.Level) timeline.Fragment {
	t.Helper()
	frag, err := Tableau(Params{Theme: theme, Level: lvl, Width: 400, Height: 200})
	require.NoError(t, err)
	return frag
}

func TestTableauSilentIsEmpty(t *testing.T) {
	t.Parallel()

	for _, theme := range level.Themes() {
		frag, err := Tableau(Params{Theme: theme, Level: level.Silent, Width: 400, Height: 200})
		require.NoError(t, err)
		assert.Empty(t, frag, "theme %q level 0", theme)
	}
}

func TestTableauEveryThemeLevelRenders(t *testing.T) {
	t.Parallel()

	for _, theme := range level.Themes() {
		for lvl := level.One; lvl <= level.Five; lvl++ {
			frag := render(t, theme, lvl)
			assert.Contains(t, string(frag), `id="fw-glow"`, "theme %q level %d", theme, lvl)
			assert.Contains(t, string(frag), `filter="url(#fw-glow)"`, "theme %q level %d", theme, lvl)
			assert.Greater(t, strings.Count(string(frag), "<animate"), 0, "theme %q level %d", theme, lvl)
		}
	}
}

func TestTableauComplexityGrowsWithLevel(t *testing.T) {
	t.Parallel()

	for _, theme := range level.Themes() {
		prev := -1
		for lvl := level.One; lvl <= level.Five; lvl++ {
			frag := render(t, theme, lvl)
			count := strings.Count(string(frag), "<animate")
			assert.Greater(t, count, prev, "theme %q level %d should out-animate level %d", theme, lvl, lvl-1)
			prev = count
		}
	}
}

func TestTableauLevelFiveBeatsLevelOne(t *testing.T) {
	t.Parallel()

	one := strings.Count(string(render(t, level.Kata, level.One)), "<animate")
	five := strings.Count(string(render(t, level.Kata, level.Five)), "<animate")
	assert.Greater(t, five, one)
}

func TestTableauDeterministic(t *testing.T) {
	t.Parallel()

	p := Params{Theme: level.Hana, Level: level.Three, Width: 400, Height: 200}
	a, err := Tableau(p)
	require.NoError(t, err)
	b, err := Tableau(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTableauRejectsBadCanvas(t *testing.T) {
	t.Parallel()

	_, err := Tableau(Params{Theme: level.Kata, Level: level.One, Width: 0, Height: 200})
	require.Error(t, err)
}

func TestHanaReflectionsPresent(t *testing.T) {
	t.Parallel()

	// Hana level 5 reflects three shells on the water; the reflection
	// points sit below the water ratio line (y > 164 on a 200px canvas).
	frag := render(t, level.Hana, level.Five)
	assert.Contains(t, string(frag), `opacity="0">` /* reflection circles start hidden */)
	assert.Greater(t, strings.Count(string(frag), "0.35"), 0, "reflection shimmer peak opacity")
}

func TestLoadTablesValidates(t *testing.T) {
	t.Parallel()

	tables, err := loadTables(choreographyFS)
	require.NoError(t, err)
	require.Len(t, tables, len(level.Themes()))
	for theme, byLevel := range tables {
		for lvl := level.One; lvl <= level.Five; lvl++ {
			require.NotEmpty(t, byLevel[lvl], "theme %q level %d", theme, lvl)
		}
		counts := make([]int, 0, 5)
		for lvl := level.One; lvl <= level.Five; lvl++ {
			counts = append(counts, len(byLevel[lvl]))
		}
		for i := 1; i < len(counts); i++ {
			assert.GreaterOrEqual(t, counts[i], counts[i-1], "theme %q shell counts must not shrink by level", theme)
		}
	}
}

func TestValidateEntry(t *testing.T) {
	t.Parallel()

	good := Entry{X: 0.5, Y: 0.4, Delay: 1, Color: "gold", Count: 12, Distance: 40, Kind: "radial"}
	require.NoError(t, validateEntry(good))

	tests := []struct {
		name   string
		mutate func(*Entry)
	}{
		{name: "unknown kind", mutate: func(e *Entry) { e.Kind = "spiral" }},
		{name: "unknown color", mutate: func(e *Entry) { e.Color = "ultraviolet" }},
		{name: "x out of range", mutate: func(e *Entry) { e.X = 1.2 }},
		{name: "zero count", mutate: func(e *Entry) { e.Count = 0 }},
		{name: "zero distance", mutate: func(e *Entry) { e.Distance = 0 }},
		{name: "negative delay", mutate: func(e *Entry) { e.Delay = -0.1 }},
		{name: "rotating without rotation", mutate: func(e *Entry) { e.Kind = "rotating" }},
		{name: "gravity without drop", mutate: func(e *Entry) { e.Kind = "gravity" }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := good
			tc.mutate(&e)
			assert.Error(t, validateEntry(e))
		})
	}
}
