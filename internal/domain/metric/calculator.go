package metric

import "bodylang-bot/internal/domain/entity"

// Calculator вычисляет оценку одного аспекта языка тела по точкам одного кадра.
// Реализации — чистые функции от LandmarkSet, без состояния между кадрами.
type Calculator interface {
	// Aspect возвращает аспект, который оценивает вычислитель.
	Aspect() entity.Aspect

	// Score возвращает оценку в [0,1]. ok == false означает, что нужные
	// точки недостаточно видимы и кадр для этого аспекта не учитывается.
	Score(landmarks entity.LandmarkSet) (value float64, ok bool)
}

// Defaults создаёт четыре штатных вычислителя в фиксированном порядке.
func Defaults(minVisibility float64) []Calculator {
	return []Calculator{
		NewPosture(minVisibility),
		NewShoulderAlignment(minVisibility),
		NewHeadPosition(minVisibility),
		NewGesture(minVisibility),
	}
}

// linearFalloff отображает отклонение от идеала в оценку:
// 0 → 1.0, deviation >= max → 0.0, между ними линейно.
func linearFalloff(deviation, max float64) float64 {
	if max <= 0 || deviation >= max {
		return 0
	}
	if deviation <= 0 {
		return 1
	}
	return 1 - deviation/max
}
