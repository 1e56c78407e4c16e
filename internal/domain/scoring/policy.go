package scoring

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"bodylang-bot/internal/domain/entity"
)

// Weights — веса аспектов в итоговой оценке; сумма обязана быть равна 1.
type Weights struct {
	Posture  float64 `yaml:"posture"`
	Shoulder float64 `yaml:"shoulder_alignment"`
	Head     float64 `yaml:"head_position"`
	Gesture  float64 `yaml:"gesture"`
}

// Thresholds — нижние границы категорий; каждая полоса закрыта снизу.
type Thresholds struct {
	Good float64 `yaml:"good"`
	Fair float64 `yaml:"fair"`
}

// Policy — все настроечные константы анализа в одном месте.
// Загружается из YAML либо берётся по умолчанию.
type Policy struct {
	FrameStride    int        `yaml:"frame_stride"`    // анализируется каждый N-й кадр
	MinVisibility  float64    `yaml:"min_visibility"`  // порог видимости точек
	NeutralScore   float64    `yaml:"neutral_score"`   // оценка аспекта без пригодных кадров
	RecommendBelow float64    `yaml:"recommend_below"` // порог срабатывания рекомендаций
	Weights        Weights    `yaml:"weights"`
	Thresholds     Thresholds `yaml:"thresholds"`
}

// DefaultPolicy возвращает штатную политику анализа.
func DefaultPolicy() Policy {
	return Policy{
		FrameStride:    5,
		MinVisibility:  0.5,
		NeutralScore:   0.5,
		RecommendBelow: 0.6,
		Weights: Weights{
			Posture:  0.35,
			Shoulder: 0.20,
			Head:     0.20,
			Gesture:  0.25,
		},
		Thresholds: Thresholds{
			Good: 0.70,
			Fair: 0.50,
		},
	}
}

// LoadPolicy читает политику из YAML-файла поверх значений по умолчанию.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()

	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("open policy file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&p); err != nil {
		return p, fmt.Errorf("decode policy file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate проверяет инварианты политики.
func (p Policy) Validate() error {
	if p.FrameStride < 1 {
		return fmt.Errorf("frame stride must be >= 1, got %d", p.FrameStride)
	}
	if p.MinVisibility < 0 || p.MinVisibility > 1 {
		return fmt.Errorf("min visibility must be in [0,1], got %v", p.MinVisibility)
	}
	sum := p.Weights.Posture + p.Weights.Shoulder + p.Weights.Head + p.Weights.Gesture
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("aspect weights must sum to 1, got %v", sum)
	}
	if !(p.Thresholds.Fair > 0 && p.Thresholds.Fair < p.Thresholds.Good && p.Thresholds.Good <= 1) {
		return fmt.Errorf("thresholds must satisfy 0 < fair < good <= 1, got fair=%v good=%v",
			p.Thresholds.Fair, p.Thresholds.Good)
	}
	return nil
}

// WeightFor возвращает вес аспекта.
func (p Policy) WeightFor(aspect entity.Aspect) float64 {
	switch aspect {
	case entity.AspectPosture:
		return p.Weights.Posture
	case entity.AspectShoulderAlignment:
		return p.Weights.Shoulder
	case entity.AspectHeadPosition:
		return p.Weights.Head
	case entity.AspectGesture:
		return p.Weights.Gesture
	default:
		return 0
	}
}

// Round3 округляет оценку до трёх знаков для итогового отчёта.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
