package scoring

import "bodylang-bot/internal/domain/entity"

// Фиксированные трактовки категорий итоговой оценки.
const (
	interpretationGood = "Good body language - demonstrates confidence and professionalism"
	interpretationFair = "Fair body language - room for improvement in posture and gestures"
	interpretationBad  = "Poor body language - needs significant improvement in posture, alignment, or engagement"
)

// Overall считает итоговую оценку как взвешенную сумму агрегатов аспектов.
func Overall(aggregates map[entity.Aspect]entity.AggregateScore, p Policy) float64 {
	total := 0.0
	for _, aspect := range entity.Aspects {
		total += p.WeightFor(aspect) * aggregates[aspect].Mean
	}
	return total
}

// Categorize относит итоговую оценку к категории. Полосы закрыты снизу:
// ровно 0.70 — GOOD, ровно 0.50 — FAIR.
func Categorize(overall float64, p Policy) (entity.Assessment, string) {
	switch {
	case overall >= p.Thresholds.Good:
		return entity.AssessmentGood, interpretationGood
	case overall >= p.Thresholds.Fair:
		return entity.AssessmentFair, interpretationFair
	default:
		return entity.AssessmentBad, interpretationBad
	}
}
