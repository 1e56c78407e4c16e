package app

import (
	"context"
	"fmt"

	"bodylang-bot/internal/domain/entity"
	"bodylang-bot/internal/domain/metric"
	"bodylang-bot/internal/domain/port"
	"bodylang-bot/internal/domain/scoring"
)

// EyeContactService оценивает контакт глаз с камерой по тем же
// сэмплированным кадрам и тому же детектору позы, что и анализ тела.
type EyeContactService struct {
	video  port.VideoSource
	pose   port.PoseEstimator
	policy scoring.Policy
	eye    *metric.EyeContact
}

// NewEyeContactService создаёт сервис анализа контакта глаз.
func NewEyeContactService(video port.VideoSource, pose port.PoseEstimator, policy scoring.Policy) *EyeContactService {
	return &EyeContactService{
		video:  video,
		pose:   pose,
		policy: policy,
		eye:    metric.NewEyeContact(policy.MinVisibility),
	}
}

// AnalyzeVideo анализирует контакт глаз в одном видеофайле.
// Видео без единого кадра с видимыми глазами даёт scoring.ErrInsufficientData.
func (s *EyeContactService) AnalyzeVideo(ctx context.Context, path string) (*entity.EyeContactResult, error) {
	stream, err := s.video.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var (
		gazeSum   float64
		facingSum float64
		usable    int
	)
	err = sampleFrames(ctx, stream, s.policy.FrameStride, func(frame *entity.Frame) error {
		landmarks, err := s.pose.Detect(ctx, frame)
		if err != nil {
			return fmt.Errorf("detect pose on frame %d: %w", frame.Index, err)
		}
		if landmarks == nil {
			return nil
		}

		gaze, facing, ok := s.eye.Score(landmarks)
		if !ok {
			return nil
		}
		gazeSum += gaze
		facingSum += facing
		usable++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if usable == 0 {
		return nil, scoring.ErrInsufficientData
	}

	gazeMean := gazeSum / float64(usable)
	facingMean := facingSum / float64(usable)
	overall := scoring.EyeOverall(gazeMean, facingMean)
	assessment, interpretation := scoring.EyeCategorize(overall)

	return &entity.EyeContactResult{
		Status:         StatusComplete,
		OverallScore:   scoring.Round3(overall),
		Assessment:     assessment,
		Interpretation: interpretation,
		Details: entity.EyeContactDetails{
			EyeContactScore: scoring.Round3(gazeMean),
			FacingScore:     scoring.Round3(facingMean),
			FramesAnalyzed:  usable,
		},
		Recommendations: scoring.EyeRecommend(gazeMean, facingMean, s.policy),
	}, nil
}
