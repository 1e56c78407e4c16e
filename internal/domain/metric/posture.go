package metric

import (
	"math"

	"bodylang-bot/internal/domain/entity"
)

// Posture оценивает прямизну корпуса: угол между осью
// середина бёдер → середина плеч и вертикалью кадра.
type Posture struct {
	MinVisibility float64
	MaxTiltDeg    float64 // наклон, при котором оценка обнуляется
}

// NewPosture создаёт вычислитель осанки со штатным допуском наклона.
func NewPosture(minVisibility float64) *Posture {
	return &Posture{
		MinVisibility: minVisibility,
		MaxTiltDeg:    30,
	}
}

func (p *Posture) Aspect() entity.Aspect {
	return entity.AspectPosture
}

func (p *Posture) Score(landmarks entity.LandmarkSet) (float64, bool) {
	ok := landmarks.AllVisible(p.MinVisibility,
		entity.KeypointLeftShoulder, entity.KeypointRightShoulder,
		entity.KeypointLeftHip, entity.KeypointRightHip,
	)
	if !ok {
		return 0, false
	}

	sx, sy, _ := landmarks.Midpoint(entity.KeypointLeftShoulder, entity.KeypointRightShoulder)
	hx, hy, _ := landmarks.Midpoint(entity.KeypointLeftHip, entity.KeypointRightHip)

	// Ось Y направлена вниз, поэтому у прямой позы hy > sy.
	dx := sx - hx
	dy := hy - sy
	if dx == 0 && dy == 0 {
		return 0, false
	}

	tiltDeg := math.Atan2(math.Abs(dx), dy) * 180 / math.Pi
	return linearFalloff(tiltDeg, p.MaxTiltDeg), true
}

var _ Calculator = (*Posture)(nil)
