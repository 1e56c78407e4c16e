package app

import (
	"context"
	"fmt"

	"bodylang-bot/internal/domain/entity"
	"bodylang-bot/internal/domain/metric"
	"bodylang-bot/internal/domain/port"
	"bodylang-bot/internal/domain/scoring"
)

// StatusComplete — статус успешно завершённого анализа в итоговом отчёте.
const StatusComplete = "Analysis Complete"

// AnalysisService прогоняет видео через конвейер оценки языка тела:
// сэмплирование кадров → детекция позы → покадровые оценки аспектов →
// агрегация → итоговая оценка и рекомендации.
type AnalysisService struct {
	video       port.VideoSource
	pose        port.PoseEstimator
	policy      scoring.Policy
	calculators []metric.Calculator
}

// NewAnalysisService создаёт сервис анализа языка тела.
func NewAnalysisService(video port.VideoSource, pose port.PoseEstimator, policy scoring.Policy) *AnalysisService {
	return &AnalysisService{
		video:       video,
		pose:        pose,
		policy:      policy,
		calculators: metric.Defaults(policy.MinVisibility),
	}
}

// AnalyzeVideo анализирует язык тела в одном видеофайле.
// Нечитаемый файл даёт port.ErrVideoUnreadable, видео без единой детекции —
// scoring.ErrInsufficientData. Частичный результат не возвращается никогда.
func (s *AnalysisService) AnalyzeVideo(ctx context.Context, path string) (*entity.AnalysisResult, error) {
	stream, err := s.video.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	acc := scoring.NewAccumulator(s.policy)
	err = sampleFrames(ctx, stream, s.policy.FrameStride, func(frame *entity.Frame) error {
		landmarks, err := s.pose.Detect(ctx, frame)
		if err != nil {
			return fmt.Errorf("detect pose on frame %d: %w", frame.Index, err)
		}

		obs := entity.FrameObservation{Index: frame.Index, Landmarks: landmarks}
		acc.Observe(obs.Detected())
		if !obs.Detected() {
			// Тело не найдено — штатный пропуск, а не ошибка.
			return nil
		}

		for _, calc := range s.calculators {
			if value, valid := calc.Score(obs.Landmarks); valid {
				acc.Add(entity.AspectScore{Aspect: calc.Aspect(), Value: value})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sum, err := acc.Finalize()
	if err != nil {
		return nil, err
	}
	return s.compile(sum), nil
}

// compile собирает итоговый отчёт из агрегатов.
func (s *AnalysisService) compile(sum scoring.Summary) *entity.AnalysisResult {
	overall := scoring.Overall(sum.Aggregates, s.policy)
	assessment, interpretation := scoring.Categorize(overall, s.policy)

	return &entity.AnalysisResult{
		Status:         StatusComplete,
		OverallScore:   scoring.Round3(overall),
		Assessment:     assessment,
		Interpretation: interpretation,
		Details: entity.AnalysisDetails{
			PostureScore:           scoring.Round3(sum.Aggregates[entity.AspectPosture].Mean),
			ShoulderAlignmentScore: scoring.Round3(sum.Aggregates[entity.AspectShoulderAlignment].Mean),
			HeadPositionScore:      scoring.Round3(sum.Aggregates[entity.AspectHeadPosition].Mean),
			GestureScore:           scoring.Round3(sum.Aggregates[entity.AspectGesture].Mean),
			DetectionConfidence:    scoring.Round3(sum.DetectionConfidence),
			FramesAnalyzed:         sum.FramesAnalyzed,
		},
		Recommendations: scoring.Recommend(sum.Aggregates, s.policy),
	}
}
