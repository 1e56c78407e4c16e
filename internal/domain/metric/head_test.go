package metric

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bodylang-bot/internal/domain/entity"
)

func TestHeadPosition_NeutralHead(t *testing.T) {
	c := NewHeadPosition(0.5)

	score, ok := c.Score(idealLandmarks())
	require.True(t, ok)
	require.InDelta(t, 1.0, score, 1e-9)
}

func TestHeadPosition_EarTiltLowersScore(t *testing.T) {
	c := NewHeadPosition(0.5)

	neutral, _ := c.Score(idealLandmarks())

	prev := neutral
	for _, dy := range []float64{0.01, 0.02, 0.04} {
		score, ok := c.Score(shiftY(idealLandmarks(), entity.KeypointLeftEar, dy))
		require.True(t, ok)
		require.GreaterOrEqual(t, score, 0.0)
		require.Less(t, score, prev)
		prev = score
	}
}

func TestHeadPosition_NoseOffsetLowersScore(t *testing.T) {
	c := NewHeadPosition(0.5)

	// Смещение носа на половину ширины плеч обнуляет оценку выноса головы,
	// наклон при этом остаётся идеальным: итог — среднее, 0.5.
	s := shiftX(idealLandmarks(), entity.KeypointNose, 0.1)
	score, ok := c.Score(s)
	require.True(t, ok)
	require.InDelta(t, 0.5, score, 1e-9)
}

func TestHeadPosition_StackedEarsScoreHalf(t *testing.T) {
	c := NewHeadPosition(0.5)

	// Уши друг над другом: голова в профиль, оценка наклона — ноль.
	s := withLandmark(idealLandmarks(), entity.KeypointLeftEar, entity.Landmark{X: 0.44, Y: 0.14, Visibility: 0.9})
	score, ok := c.Score(s)
	require.True(t, ok)
	require.InDelta(t, 0.5, score, 1e-9)
}

func TestHeadPosition_InvalidWhenNoseHidden(t *testing.T) {
	c := NewHeadPosition(0.5)

	_, ok := c.Score(dimmed(idealLandmarks(), entity.KeypointNose))
	require.False(t, ok)
}
