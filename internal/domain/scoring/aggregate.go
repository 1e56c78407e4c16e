package scoring

import (
	"errors"

	"bodylang-bot/internal/domain/entity"
)

// ErrInsufficientData — ни на одном сэмплированном кадре не нашлось тела.
// Это не «низкая оценка», а отсутствие данных для оценки вообще.
var ErrInsufficientData = errors.New("no usable detections in video")

// Accumulator сводит покадровые оценки аспектов в агрегаты одного прогона.
// Не потокобезопасен: каждым прогоном владеет ровно один анализ.
type Accumulator struct {
	policy  Policy
	sums    map[entity.Aspect]float64
	counts  map[entity.Aspect]int
	sampled int
	detects int
}

// Summary — итог агрегации по всем кадрам видео.
type Summary struct {
	Aggregates          map[entity.Aspect]entity.AggregateScore
	DetectionConfidence float64
	FramesAnalyzed      int
}

// NewAccumulator создаёт пустой агрегатор под одну политику.
func NewAccumulator(policy Policy) *Accumulator {
	return &Accumulator{
		policy: policy,
		sums:   make(map[entity.Aspect]float64),
		counts: make(map[entity.Aspect]int),
	}
}

// Observe учитывает один сэмплированный кадр и факт детекции на нём.
func (a *Accumulator) Observe(detected bool) {
	a.sampled++
	if detected {
		a.detects++
	}
}

// Add учитывает оценку аспекта на пригодном кадре.
func (a *Accumulator) Add(score entity.AspectScore) {
	a.sums[score.Aspect] += score.Value
	a.counts[score.Aspect]++
}

// Finalize считает агрегаты. Аспект без единого пригодного кадра получает
// нейтральную середину, а не роняет весь прогон. Если же детекций не было
// вовсе, возвращается ErrInsufficientData.
func (a *Accumulator) Finalize() (Summary, error) {
	if a.detects == 0 {
		return Summary{}, ErrInsufficientData
	}

	aggregates := make(map[entity.Aspect]entity.AggregateScore, len(entity.Aspects))
	for _, aspect := range entity.Aspects {
		agg := entity.AggregateScore{Aspect: aspect, Mean: a.policy.NeutralScore}
		if n := a.counts[aspect]; n > 0 {
			agg.Mean = a.sums[aspect] / float64(n)
			agg.FramesContributing = n
		}
		aggregates[aspect] = agg
	}

	confidence := 0.0
	if a.sampled > 0 {
		confidence = float64(a.detects) / float64(a.sampled)
	}

	return Summary{
		Aggregates:          aggregates,
		DetectionConfidence: confidence,
		FramesAnalyzed:      a.detects,
	}, nil
}
