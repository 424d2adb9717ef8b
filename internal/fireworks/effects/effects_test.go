package effects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisuke8000/grass-fireworks/internal/fireworks/geometry"
	"github.com/daisuke8000/grass-fireworks/internal/fireworks/timeline"
)

func countAnimations(f timeline.Fragment) int {
	return strings.Count(string(f), "<animate")
}

func TestTrail(t *testing.T) {
	t.Parallel()

	frag, err := Trail(TrailConfig{
		X: 100, StartY: 190, EndY: 60,
		Color: "#ffd700", Width: 2,
		Delay: 0.5, Duration: 1.2, Loop: 8,
	})
	require.NoError(t, err)
	s := string(frag)
	assert.Contains(t, s, `<line`)
	assert.Contains(t, s, `attributeName="y1"`)
	assert.Contains(t, s, `attributeName="y2"`)
	assert.Contains(t, s, `attributeName="opacity"`)
	assert.Contains(t, s, `keySplines`)
	assert.Contains(t, s, `opacity="0"`)
	assert.Equal(t, 3, countAnimations(frag))
}

func TestTrailRejectsZeroLoop(t *testing.T) {
	t.Parallel()

	_, err := Trail(TrailConfig{X: 1, StartY: 2, EndY: 1, Color: "#fff", Width: 1, Duration: 1, Loop: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loop duration")
}

func TestTrailRejectsZeroDuration(t *testing.T) {
	t.Parallel()

	_, err := Trail(TrailConfig{X: 1, StartY: 2, EndY: 1, Color: "#fff", Width: 1, Duration: 0, Loop: 8})
	require.Error(t, err)
}

func TestRadialBurstParticleCount(t *testing.T) {
	t.Parallel()

	frag, err := RadialBurst(BurstConfig{
		CX: 200, CY: 80, Count: 12, Distance: 40, Radius: 2.5,
		Color: "#ff4d6d", Delay: 1, Duration: 1.5, Loop: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, strings.Count(string(frag), "<circle"))
	// Each particle carries translate, opacity and radius timelines.
	assert.Equal(t, 36, countAnimations(frag))
}

func TestRadialBurstRejectsNegativeCount(t *testing.T) {
	t.Parallel()

	_, err := RadialBurst(BurstConfig{Count: -1, Duration: 1, Loop: 8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count")
}

func TestRadialBurstZeroCountIsEmptyGroup(t *testing.T) {
	t.Parallel()

	frag, err := RadialBurst(BurstConfig{Count: 0, Distance: 10, Radius: 1, Color: "#fff", Duration: 1, Loop: 8})
	require.NoError(t, err)
	assert.Zero(t, countAnimations(frag))
}

func TestRotatingBurstCarriesAdditiveSpin(t *testing.T) {
	t.Parallel()

	frag, err := RotatingBurst(RotatingBurstConfig{
		BurstConfig: BurstConfig{CX: 150, CY: 70, Count: 8, Distance: 35, Radius: 2, Color: "#b388ff", Delay: 0.5, Duration: 1.4, Loop: 8},
		Rotation:    120,
	})
	require.NoError(t, err)
	s := string(frag)
	assert.Contains(t, s, `type="rotate"`)
	assert.Contains(t, s, `additive="sum"`)
	assert.Contains(t, s, "120 150 70")
}

func TestGravityBurstDroops(t *testing.T) {
	t.Parallel()

	frag, err := GravityBurst(GravityBurstConfig{
		BurstConfig: BurstConfig{CX: 100, CY: 60, Count: 4, Distance: 10, Radius: 2, Color: "#ffd700", Delay: 0.5, Duration: 1.5, Loop: 8},
		Drop:        18,
	})
	require.NoError(t, err)
	// The rightmost particle lands at (10,0) and droops to (10,18).
	assert.Contains(t, string(frag), "10 0;10 0;10 18")
}

func TestShapedBurstStagger(t *testing.T) {
	t.Parallel()

	positions := geometry.HeartPositions(10, 2)
	frag, err := ShapedBurst(ShapedBurstConfig{
		CX: 200, CY: 90, Positions: positions, Radius: 2,
		Color: "#ffb7c5", Delay: 1, Duration: 1.2, Loop: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, len(positions), strings.Count(string(frag), "<circle"))

	// Index stagger shifts each particle's flash time by 0.02s: the
	// first two particles must not share an opacity timeline.
	chunks := strings.SplitAfter(string(frag), "</circle>")
	require.GreaterOrEqual(t, len(chunks), 2)
	assert.NotEqual(t, chunks[0], chunks[1])
}

func TestReflectionPointsBelowWaterLine(t *testing.T) {
	t.Parallel()

	frag, err := ReflectionPoints(ReflectionConfig{
		CX: 200, WaterY: 160, Depth: 8,
		Count: 12, Distance: 40, Compress: 0.3, Radius: 1.5,
		Color: "#66e0ff", Delay: 1, Duration: 1.5, Loop: 8,
	})
	require.NoError(t, err)
	s := string(frag)
	// Only lower-semicircle samples survive, so fewer points than Count.
	points := strings.Count(s, "<circle")
	assert.Greater(t, points, 0)
	assert.Less(t, points, 12)
	assert.NotContains(t, s, `cy="1`+"5", "no reflection point above the water line")
}

func TestAmbientBurstsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := AmbientConfig{
		Width: 400, Height: 200, Count: 6, Seed: 777,
		Colors: []string{"#aebfd4", "#7ec8ff"}, Loop: 8,
	}
	a, err := AmbientBursts(cfg)
	require.NoError(t, err)
	b, err := AmbientBursts(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg.Seed = 778
	c, err := AmbientBursts(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestAmbientBurstsRequiresColors(t *testing.T) {
	t.Parallel()

	_, err := AmbientBursts(AmbientConfig{Width: 400, Height: 200, Count: 3, Loop: 8})
	require.Error(t, err)
}

func TestWaterfallLayers(t *testing.T) {
	t.Parallel()

	frag, err := Waterfall(WaterfallConfig{Width: 400, Height: 200, Seed: 42, Loop: 8})
	require.NoError(t, err)
	s := string(frag)
	assert.Contains(t, s, "stroke-dasharray")
	assert.Contains(t, s, `attributeName="stroke-dashoffset"`)
	assert.Greater(t, strings.Count(s, "stroke-dasharray"), 10)
	assert.Greater(t, strings.Count(s, "<circle"), 0)
}

func TestWaterfallDeterministic(t *testing.T) {
	t.Parallel()

	cfg := WaterfallConfig{Width: 600, Height: 300, Seed: 9, Loop: 8}
	a, err := Waterfall(cfg)
	require.NoError(t, err)
	b, err := Waterfall(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWaterfallRejectsBadCanvas(t *testing.T) {
	t.Parallel()

	_, err := Waterfall(WaterfallConfig{Width: 0, Height: 200, Seed: 1, Loop: 8})
	require.Error(t, err)
	_, err = Waterfall(WaterfallConfig{Width: 400, Height: 200, Seed: 1, Loop: 0})
	require.Error(t, err)
}

func TestAllTimelinesEndAtOne(t *testing.T) {
	t.Parallel()

	frag, err := RadialBurst(BurstConfig{
		CX: 100, CY: 60, Count: 5, Distance: 30, Radius: 2,
		Color: "#ffd700", Delay: 6, Duration: 3, Loop: 8,
	})
	require.NoError(t, err)
	for _, chunk := range strings.Split(string(frag), `keyTimes="`)[1:] {
		list := chunk[:strings.Index(chunk, `"`)]
		parts := strings.Split(list, ";")
		assert.Equal(t, "1", parts[len(parts)-1], "timeline %q must end at 1", list)
	}
}
