package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecommend_FixedOrder(t *testing.T) {
	p := DefaultPolicy()

	// Все четыре аспекта ниже порога: рекомендации в фиксированном порядке.
	got := Recommend(aggregatesOf(0.4, 0.45, 0.5, 0.55), p)
	require.Len(t, got, 4)
	require.Contains(t, got[0], "posture")
	require.Contains(t, got[1], "shoulders")
	require.Contains(t, got[2], "head")
	require.Contains(t, got[3], "gestures")
}

func TestRecommend_OnlyTriggeredRules(t *testing.T) {
	p := DefaultPolicy()

	got := Recommend(aggregatesOf(0.9, 0.55, 0.9, 0.9), p)
	require.Len(t, got, 1)
	require.Contains(t, got[0], "shoulders")
}

func TestRecommend_AffirmationWhenAllGood(t *testing.T) {
	p := DefaultPolicy()

	got := Recommend(aggregatesOf(0.8, 0.8, 0.8, 0.8), p)
	require.Equal(t, []string{affirmation}, got)
}

func TestRecommend_ThresholdIsExclusive(t *testing.T) {
	p := DefaultPolicy()

	// Ровно на пороге правило не срабатывает.
	got := Recommend(aggregatesOf(0.6, 0.6, 0.6, 0.6), p)
	require.Equal(t, []string{affirmation}, got)
}
