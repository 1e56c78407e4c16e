package scoring

// Категории оценки контакта глаз с фиксированными трактовками.
const (
	EyeAssessmentExcellent = "EXCELLENT"
	EyeAssessmentGood      = "GOOD"
	EyeAssessmentFair      = "FAIR"
	EyeAssessmentPoor      = "POOR"

	eyeInterpretationExcellent = "Excellent eye contact - strong direct gaze at the camera"
	eyeInterpretationGood      = "Good eye contact - mostly looking at the camera"
	eyeInterpretationFair      = "Fair eye contact - occasional looking or turning away"
	eyeInterpretationPoor      = "Poor eye contact - frequently looking away from the camera"

	eyeAffirmation = "Maintain your excellent eye contact!"
)

// Нижние границы категорий контакта глаз; полосы закрыты снизу.
const (
	eyeExcellentThreshold = 0.75
	eyeGoodThreshold      = 0.60
	eyeFairThreshold      = 0.40
)

// EyeOverall сводит две средние оценки в итоговую с перевесом взгляда.
func EyeOverall(gazeMean, facingMean float64) float64 {
	return gazeMean*0.6 + facingMean*0.4
}

// EyeCategorize относит итоговую оценку контакта глаз к категории.
func EyeCategorize(overall float64) (assessment, interpretation string) {
	switch {
	case overall >= eyeExcellentThreshold:
		return EyeAssessmentExcellent, eyeInterpretationExcellent
	case overall >= eyeGoodThreshold:
		return EyeAssessmentGood, eyeInterpretationGood
	case overall >= eyeFairThreshold:
		return EyeAssessmentFair, eyeInterpretationFair
	default:
		return EyeAssessmentPoor, eyeInterpretationPoor
	}
}

// EyeRecommend собирает рекомендации по средним под-оценкам.
func EyeRecommend(gazeMean, facingMean float64, p Policy) []string {
	out := make([]string, 0, 2)
	if gazeMean < p.RecommendBelow {
		out = append(out, "Improve eye contact - maintain focus on the camera")
	}
	if facingMean < p.RecommendBelow {
		out = append(out, "Face the camera directly, avoid turning your head away")
	}
	if len(out) == 0 {
		out = append(out, eyeAffirmation)
	}
	return out
}
