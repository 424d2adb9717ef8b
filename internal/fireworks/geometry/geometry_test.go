package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCirclePositionsCardinalPoints(t *testing.T) {
	t.Parallel()

	got := CirclePositions(4, 10)
	require.Len(t, got, 4)
	assert.Equal(t, Position{DX: 10, DY: 0}, got[0])
	assert.Equal(t, Position{DX: 0, DY: 10}, got[1])
	assert.Equal(t, Position{DX: -10, DY: 0}, got[2])
	assert.Equal(t, Position{DX: 0, DY: -10}, got[3])
}

func TestCirclePositionsCount(t *testing.T) {
	t.Parallel()

	for _, count := range []int{1, 3, 8, 24} {
		assert.Len(t, CirclePositions(count, 50), count)
	}
}

func TestCirclePositionsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CirclePositions(0, 10))
	assert.Empty(t, CirclePositions(-1, 10))
}

func TestHeartPositionsCount(t *testing.T) {
	t.Parallel()

	got := HeartPositions(20, 2)
	assert.Len(t, got, 20)
	assert.Empty(t, HeartPositions(0, 2))
}

func TestHeartPositionsTopPoint(t *testing.T) {
	t.Parallel()

	// t=0 sits at the bottom tip of the parametric heart: x=0,
	// y=-(13-5-2-1) = -5 before scaling, negated into SVG coordinates.
	got := HeartPositions(4, 1)
	assert.Equal(t, Position{DX: 0, DY: -5}, got[0])
}

func TestHeartPositionsSymmetric(t *testing.T) {
	t.Parallel()

	// The heart curve is mirror-symmetric around the vertical axis.
	got := HeartPositions(16, 1.5)
	for i := 1; i < len(got)/2; i++ {
		mirror := got[len(got)-i]
		assert.Equal(t, -got[i].DX, mirror.DX, "index %d x-mirror", i)
		assert.Equal(t, got[i].DY, mirror.DY, "index %d y-match", i)
	}
}

func TestStarPositionsFirstPointUp(t *testing.T) {
	t.Parallel()

	got := StarPositions(10, 40, 16)
	require.Len(t, got, 10)
	assert.Equal(t, Position{DX: 0, DY: -40}, got[0])
}

func TestStarPositionsAlternatingRadii(t *testing.T) {
	t.Parallel()

	got := StarPositions(10, 40, 16)
	for i, p := range got {
		dist := float64(p.DX*p.DX + p.DY*p.DY)
		if i%2 == 0 {
			assert.InDelta(t, 40*40, dist, 120, "outer slot %d", i)
		} else {
			assert.InDelta(t, 16*16, dist, 60, "inner slot %d", i)
		}
	}
}

func TestStarPositionsWrap(t *testing.T) {
	t.Parallel()

	got := StarPositions(14, 40, 16)
	require.Len(t, got, 14)
	assert.Equal(t, got[0], got[10])
	assert.Equal(t, got[3], got[13])
}
