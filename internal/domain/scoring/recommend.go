package scoring

import "bodylang-bot/internal/domain/entity"

// affirmation возвращается, когда ни одно правило не сработало:
// пустой список рекомендаций наружу не отдаётся никогда.
const affirmation = "Continue maintaining your excellent body language!"

// rules — таблица рекомендаций в фиксированном порядке проверки.
// Правила независимы: может сработать любое подмножество.
var rules = []struct {
	aspect entity.Aspect
	text   string
}{
	{entity.AspectPosture, "Improve posture - keep your back straight and aligned with hips"},
	{entity.AspectShoulderAlignment, "Keep shoulders level and relaxed, avoid hunching or tilting"},
	{entity.AspectHeadPosition, "Maintain neutral head position aligned with shoulders, avoid excessive tilting"},
	{entity.AspectGesture, "Use more natural hand gestures while keeping them visible and controlled"},
}

// Recommend собирает рекомендации по агрегатам аспектов.
func Recommend(aggregates map[entity.Aspect]entity.AggregateScore, p Policy) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if aggregates[r.aspect].Mean < p.RecommendBelow {
			out = append(out, r.text)
		}
	}
	if len(out) == 0 {
		out = append(out, affirmation)
	}
	return out
}
