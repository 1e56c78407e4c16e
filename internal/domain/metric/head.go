package metric

import (
	"math"

	"bodylang-bot/internal/domain/entity"
)

// HeadPosition оценивает положение головы по двум признакам:
// симметрия высоты ушей (наклон вбок) и смещение носа от середины
// линии плеч (вынос головы вперёд/вбок). Итог — среднее двух оценок.
type HeadPosition struct {
	MinVisibility      float64
	MaxEarTiltRatio    float64 // перепад ушей к их расстоянию, обнуляющий оценку
	MaxNoseOffsetRatio float64 // смещение носа в долях ширины плеч, обнуляющее оценку
}

// NewHeadPosition создаёт вычислитель положения головы со штатными допусками.
func NewHeadPosition(minVisibility float64) *HeadPosition {
	return &HeadPosition{
		MinVisibility:      minVisibility,
		MaxEarTiltRatio:    0.5,
		MaxNoseOffsetRatio: 0.5,
	}
}

func (c *HeadPosition) Aspect() entity.Aspect {
	return entity.AspectHeadPosition
}

func (c *HeadPosition) Score(landmarks entity.LandmarkSet) (float64, bool) {
	ok := landmarks.AllVisible(c.MinVisibility,
		entity.KeypointNose,
		entity.KeypointLeftEar, entity.KeypointRightEar,
		entity.KeypointLeftShoulder, entity.KeypointRightShoulder,
	)
	if !ok {
		return 0, false
	}

	nose, _ := landmarks.Get(entity.KeypointNose)
	leftEar, _ := landmarks.Get(entity.KeypointLeftEar)
	rightEar, _ := landmarks.Get(entity.KeypointRightEar)

	// Наклон головы: уши на одной высоте — оценка 1.
	// Уши друг над другом — голова повёрнута/наклонена максимально.
	earDX := math.Abs(leftEar.X - rightEar.X)
	tiltScore := 0.0
	if earDX > 0 {
		tiltScore = linearFalloff(math.Abs(leftEar.Y-rightEar.Y)/earDX, c.MaxEarTiltRatio)
	}

	leftShoulder, _ := landmarks.Get(entity.KeypointLeftShoulder)
	rightShoulder, _ := landmarks.Get(entity.KeypointRightShoulder)
	width := math.Abs(leftShoulder.X - rightShoulder.X)
	if width == 0 {
		return 0, false
	}

	midX := (leftShoulder.X + rightShoulder.X) / 2
	leanScore := linearFalloff(math.Abs(nose.X-midX)/width, c.MaxNoseOffsetRatio)

	return (tiltScore + leanScore) / 2, true
}

var _ Calculator = (*HeadPosition)(nil)
