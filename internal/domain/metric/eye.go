package metric

import (
	"math"

	"bodylang-bot/internal/domain/entity"
)

// EyeContact оценивает контакт глаз с камерой по точкам глаз и носа:
// центрированность взгляда в кадре и разворот головы к камере.
type EyeContact struct {
	MinVisibility float64
	MaxYawRatio   float64 // смещение носа в долях межглазного расстояния, обнуляющее оценку
}

// NewEyeContact создаёт вычислитель контакта глаз со штатными допусками.
func NewEyeContact(minVisibility float64) *EyeContact {
	return &EyeContact{
		MinVisibility: minVisibility,
		MaxYawRatio:   0.8,
	}
}

// Score возвращает две оценки: центрированность взгляда и разворот к камере.
// ok == false, если глаза или нос недостаточно видимы.
func (c *EyeContact) Score(landmarks entity.LandmarkSet) (gaze, facing float64, ok bool) {
	visible := landmarks.AllVisible(c.MinVisibility,
		entity.KeypointNose,
		entity.KeypointLeftEye, entity.KeypointRightEye,
	)
	if !visible {
		return 0, 0, false
	}

	eyeX, _, _ := landmarks.Midpoint(entity.KeypointLeftEye, entity.KeypointRightEye)
	gaze = gazeScore(math.Abs(eyeX - 0.5))

	left, _ := landmarks.Get(entity.KeypointLeftEye)
	right, _ := landmarks.Get(entity.KeypointRightEye)
	interEye := math.Abs(left.X - right.X)
	if interEye == 0 {
		// Глаза в одной точке — голова повёрнута в профиль.
		return gaze, 0, true
	}

	nose, _ := landmarks.Get(entity.KeypointNose)
	yawRatio := math.Abs(nose.X-eyeX) / interEye
	facing = linearFalloff(yawRatio, c.MaxYawRatio)

	return gaze, facing, true
}

// gazeScore отображает отклонение середины глаз от центра кадра в оценку
// по фиксированным полосам.
func gazeScore(deviation float64) float64 {
	switch {
	case deviation < 0.05:
		return 1.0
	case deviation < 0.15:
		return 0.7
	case deviation < 0.25:
		return 0.4
	default:
		return 0.1
	}
}
