package metric

import "bodylang-bot/internal/domain/entity"

// Gesture оценивает жестикуляцию: видны ли кисти и держатся ли они
// в естественной зоне между линией плеч и линией бёдер.
// Итог — взвешенная сумма с перевесом в пользу видимости.
type Gesture struct {
	MinVisibility    float64
	VisibilityWeight float64 // вес видимости кистей в итоговой оценке
	RestMargin       float64 // допуск ниже линии бёдер для опущенных рук
	MaxDeviation     float64 // выход за зону, обнуляющий позиционную оценку
}

// NewGesture создаёт вычислитель жестикуляции со штатными допусками.
func NewGesture(minVisibility float64) *Gesture {
	return &Gesture{
		MinVisibility:    minVisibility,
		VisibilityWeight: 0.6,
		RestMargin:       0.15,
		MaxDeviation:     0.3,
	}
}

func (c *Gesture) Aspect() entity.Aspect {
	return entity.AspectGesture
}

func (c *Gesture) Score(landmarks entity.LandmarkSet) (float64, bool) {
	// Опорные линии считаются по плечам и бёдрам; сами кисти могут быть
	// невидимы — это и есть измеряемый признак, а не брак кадра.
	ok := landmarks.AllVisible(c.MinVisibility,
		entity.KeypointLeftShoulder, entity.KeypointRightShoulder,
		entity.KeypointLeftHip, entity.KeypointRightHip,
	)
	if !ok {
		return 0, false
	}

	_, shoulderY, _ := landmarks.Midpoint(entity.KeypointLeftShoulder, entity.KeypointRightShoulder)
	_, hipY, _ := landmarks.Midpoint(entity.KeypointLeftHip, entity.KeypointRightHip)

	visible := 0
	positionSum := 0.0
	for _, k := range []entity.Keypoint{entity.KeypointLeftWrist, entity.KeypointRightWrist} {
		if !landmarks.Visible(k, c.MinVisibility) {
			continue
		}
		wrist, _ := landmarks.Get(k)
		visible++
		positionSum += c.positionScore(wrist.Y, shoulderY, hipY)
	}

	visibilityScore := float64(visible) / 2

	// Без видимых кистей позиционной информации нет — нейтральная середина.
	positionScore := 0.5
	if visible > 0 {
		positionSum /= float64(visible)
		positionScore = positionSum
	}

	return c.VisibilityWeight*visibilityScore + (1-c.VisibilityWeight)*positionScore, true
}

// positionScore оценивает высоту кисти: естественная зона — от линии плеч
// до линии бёдер с небольшим запасом вниз, выше или ниже — штраф.
func (c *Gesture) positionScore(wristY, shoulderY, hipY float64) float64 {
	low := hipY + c.RestMargin
	switch {
	case wristY < shoulderY:
		return linearFalloff(shoulderY-wristY, c.MaxDeviation)
	case wristY > low:
		return linearFalloff(wristY-low, c.MaxDeviation)
	default:
		return 1
	}
}

var _ Calculator = (*Gesture)(nil)
