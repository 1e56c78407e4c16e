package entity

// Aspect — оцениваемый аспект языка тела.
type Aspect string

const (
	AspectPosture           Aspect = "posture"
	AspectShoulderAlignment Aspect = "shoulder_alignment"
	AspectHeadPosition      Aspect = "head_position"
	AspectGesture           Aspect = "gesture"
)

// Aspects — фиксированный порядок аспектов для детерминированного вывода.
var Aspects = []Aspect{
	AspectPosture,
	AspectShoulderAlignment,
	AspectHeadPosition,
	AspectGesture,
}

// Assessment — итоговая категория оценки.
type Assessment string

const (
	AssessmentGood Assessment = "GOOD"
	AssessmentFair Assessment = "FAIR"
	AssessmentBad  Assessment = "BAD"
)

// AspectScore — оценка одного аспекта на одном кадре, [0,1].
type AspectScore struct {
	Aspect Aspect
	Value  float64
}

// AggregateScore — средняя оценка аспекта по всем пригодным кадрам.
type AggregateScore struct {
	Aspect             Aspect
	Mean               float64
	FramesContributing int
}

// AnalysisDetails — покомпонентные метрики итогового отчёта.
type AnalysisDetails struct {
	PostureScore           float64 `json:"posture_score"`
	ShoulderAlignmentScore float64 `json:"shoulder_alignment_score"`
	HeadPositionScore      float64 `json:"head_position_score"`
	GestureScore           float64 `json:"gesture_score"`
	DetectionConfidence    float64 `json:"detection_confidence"`
	FramesAnalyzed         int     `json:"frames_analyzed"`
}

// AnalysisResult — итог анализа языка тела по одному видео.
// Создаётся один раз в конце прогона и не изменяется.
type AnalysisResult struct {
	Status          string          `json:"status"`
	OverallScore    float64         `json:"overall_score"`
	Assessment      Assessment      `json:"assessment"`
	Interpretation  string          `json:"interpretation"`
	Details         AnalysisDetails `json:"details"`
	Recommendations []string        `json:"recommendations"`
}

// EyeContactDetails — покомпонентные метрики анализа взгляда.
type EyeContactDetails struct {
	EyeContactScore float64 `json:"eye_contact_score"`
	FacingScore     float64 `json:"facing_score"`
	FramesAnalyzed  int     `json:"frames_analyzed"`
}

// EyeContactResult — итог анализа контакта глаз с камерой.
type EyeContactResult struct {
	Status          string            `json:"status"`
	OverallScore    float64           `json:"overall_score"`
	Assessment      string            `json:"assessment"`
	Interpretation  string            `json:"interpretation"`
	Details         EyeContactDetails `json:"details"`
	Recommendations []string          `json:"recommendations"`
}
