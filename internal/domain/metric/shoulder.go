package metric

import (
	"math"

	"bodylang-bot/internal/domain/entity"
)

// ShoulderAlignment оценивает горизонтальность линии плеч.
// Перепад высот нормируется шириной плеч, чтобы оценка не зависела
// от расстояния до камеры.
type ShoulderAlignment struct {
	MinVisibility float64
	MaxTiltRatio  float64 // перекос, при котором оценка обнуляется
}

// NewShoulderAlignment создаёт вычислитель с штатным допуском перекоса.
func NewShoulderAlignment(minVisibility float64) *ShoulderAlignment {
	return &ShoulderAlignment{
		MinVisibility: minVisibility,
		MaxTiltRatio:  0.5,
	}
}

func (c *ShoulderAlignment) Aspect() entity.Aspect {
	return entity.AspectShoulderAlignment
}

func (c *ShoulderAlignment) Score(landmarks entity.LandmarkSet) (float64, bool) {
	ok := landmarks.AllVisible(c.MinVisibility,
		entity.KeypointLeftShoulder, entity.KeypointRightShoulder,
	)
	if !ok {
		return 0, false
	}

	left, _ := landmarks.Get(entity.KeypointLeftShoulder)
	right, _ := landmarks.Get(entity.KeypointRightShoulder)

	width := math.Abs(left.X - right.X)
	if width == 0 {
		return 0, false
	}

	tiltRatio := math.Abs(left.Y-right.Y) / width
	return linearFalloff(tiltRatio, c.MaxTiltRatio), true
}

var _ Calculator = (*ShoulderAlignment)(nil)
