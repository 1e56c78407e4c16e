package metric

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bodylang-bot/internal/domain/entity"
)

func TestShoulderAlignment_LevelShoulders(t *testing.T) {
	c := NewShoulderAlignment(0.5)

	score, ok := c.Score(idealLandmarks())
	require.True(t, ok)
	require.InDelta(t, 1.0, score, 1e-9)
}

func TestShoulderAlignment_TiltRatio(t *testing.T) {
	c := NewShoulderAlignment(0.5)

	// Ширина плеч в фикстуре 0.2: перепад 0.05 даёт перекос 0.25 — середина шкалы.
	s := shiftY(idealLandmarks(), entity.KeypointLeftShoulder, 0.05)
	score, ok := c.Score(s)
	require.True(t, ok)
	require.InDelta(t, 0.5, score, 1e-9)

	// Перепад в половину ширины плеч и больше — ноль.
	s = shiftY(idealLandmarks(), entity.KeypointLeftShoulder, 0.12)
	score, ok = c.Score(s)
	require.True(t, ok)
	require.InDelta(t, 0.0, score, 1e-9)
}

func TestShoulderAlignment_Monotonic(t *testing.T) {
	c := NewShoulderAlignment(0.5)

	prev := 1.0
	for _, dy := range []float64{0.01, 0.03, 0.06, 0.09} {
		score, ok := c.Score(shiftY(idealLandmarks(), entity.KeypointLeftShoulder, dy))
		require.True(t, ok)
		require.Less(t, score, prev)
		prev = score
	}
}

func TestShoulderAlignment_InvalidCases(t *testing.T) {
	c := NewShoulderAlignment(0.5)

	_, ok := c.Score(dimmed(idealLandmarks(), entity.KeypointRightShoulder))
	require.False(t, ok)

	// Плечи в одной точке по X — геометрия вырождена.
	s := withLandmark(idealLandmarks(), entity.KeypointLeftShoulder, entity.Landmark{X: 0.4, Y: 0.35, Visibility: 0.9})
	_, ok = c.Score(s)
	require.False(t, ok)
}
