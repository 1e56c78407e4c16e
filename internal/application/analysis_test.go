package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"bodylang-bot/internal/domain/entity"
	"bodylang-bot/internal/domain/port"
	"bodylang-bot/internal/domain/scoring"
)

// fakeStream отдаёт подряд кадры с индексами 0..total-1.
type fakeStream struct {
	total  int
	pos    int
	closed bool
}

func (s *fakeStream) Next() (*entity.Frame, bool) {
	if s.pos >= s.total {
		return nil, false
	}
	frame := &entity.Frame{Index: s.pos, Width: 640, Height: 480}
	s.pos++
	return frame, true
}

func (s *fakeStream) Skip(n int) { s.pos += n }

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

// fakeVideo отдаёт новый поток на каждый Open; потоки не перезапускаются.
type fakeVideo struct {
	totalFrames int
	err         error
	streams     []*fakeStream
}

func (v *fakeVideo) Open(ctx context.Context, path string) (port.FrameStream, error) {
	if v.err != nil {
		return nil, v.err
	}
	s := &fakeStream{total: v.totalFrames}
	v.streams = append(v.streams, s)
	return s, nil
}

// fakePose возвращает набор точек по индексу кадра; отсутствие — nil.
type fakePose struct {
	byIndex map[int]entity.LandmarkSet
	calls   int
}

func (p *fakePose) Detect(ctx context.Context, frame *entity.Frame) (entity.LandmarkSet, error) {
	p.calls++
	return p.byIndex[frame.Index], nil
}

// fullPose — синтетическая поза без замечаний по всем аспектам.
func fullPose() entity.LandmarkSet {
	return entity.LandmarkSet{
		entity.KeypointNose:          {X: 0.5, Y: 0.18, Visibility: 0.9},
		entity.KeypointLeftEye:       {X: 0.53, Y: 0.16, Visibility: 0.9},
		entity.KeypointRightEye:      {X: 0.47, Y: 0.16, Visibility: 0.9},
		entity.KeypointLeftEar:       {X: 0.56, Y: 0.18, Visibility: 0.9},
		entity.KeypointRightEar:      {X: 0.44, Y: 0.18, Visibility: 0.9},
		entity.KeypointLeftShoulder:  {X: 0.6, Y: 0.35, Visibility: 0.9},
		entity.KeypointRightShoulder: {X: 0.4, Y: 0.35, Visibility: 0.9},
		entity.KeypointLeftWrist:     {X: 0.62, Y: 0.62, Visibility: 0.9},
		entity.KeypointRightWrist:    {X: 0.38, Y: 0.62, Visibility: 0.9},
		entity.KeypointLeftHip:       {X: 0.56, Y: 0.65, Visibility: 0.9},
		entity.KeypointRightHip:      {X: 0.44, Y: 0.65, Visibility: 0.9},
	}
}

// hiddenWrists — та же поза, но кисти вне кадра.
func hiddenWrists() entity.LandmarkSet {
	s := fullPose()
	for _, k := range []entity.Keypoint{entity.KeypointLeftWrist, entity.KeypointRightWrist} {
		lm := s[k]
		lm.Visibility = 0.1
		s[k] = lm
	}
	return s
}

func TestAnalysisService_PerfectPose(t *testing.T) {
	detections := map[int]entity.LandmarkSet{}
	for i := 0; i < 50; i += 5 {
		detections[i] = fullPose()
	}
	video := &fakeVideo{totalFrames: 50}
	svc := NewAnalysisService(video, &fakePose{byIndex: detections}, scoring.DefaultPolicy())

	res, err := svc.AnalyzeVideo(context.Background(), "interview.mp4")
	require.NoError(t, err)

	require.Equal(t, StatusComplete, res.Status)
	require.InDelta(t, 1.0, res.OverallScore, 1e-9)
	require.Equal(t, entity.AssessmentGood, res.Assessment)
	require.Equal(t, 10, res.Details.FramesAnalyzed)
	require.InDelta(t, 1.0, res.Details.DetectionConfidence, 1e-9)
	require.Equal(t, []string{"Continue maintaining your excellent body language!"}, res.Recommendations)

	require.True(t, video.streams[0].closed)
}

func TestAnalysisService_SamplesEveryFifthFrame(t *testing.T) {
	pose := &fakePose{byIndex: map[int]entity.LandmarkSet{0: fullPose()}}
	svc := NewAnalysisService(&fakeVideo{totalFrames: 12}, pose, scoring.DefaultPolicy())

	res, err := svc.AnalyzeVideo(context.Background(), "short.mp4")
	require.NoError(t, err)

	// 12 кадров при шаге 5 — сэмплы 0, 5 и 10; детекция только на нулевом.
	require.Equal(t, 3, pose.calls)
	require.Equal(t, 1, res.Details.FramesAnalyzed)
	require.InDelta(t, 0.333, res.Details.DetectionConfidence, 1e-9)
}

func TestAnalysisService_DetectionConfidenceReportedVerbatim(t *testing.T) {
	// 10 сэмплов, детекция на 6 из них.
	detections := map[int]entity.LandmarkSet{}
	for i := 0; i < 30; i += 5 {
		detections[i] = fullPose()
	}
	svc := NewAnalysisService(&fakeVideo{totalFrames: 50}, &fakePose{byIndex: detections}, scoring.DefaultPolicy())

	res, err := svc.AnalyzeVideo(context.Background(), "partial.mp4")
	require.NoError(t, err)
	require.InDelta(t, 0.6, res.Details.DetectionConfidence, 1e-9)
	require.Equal(t, 6, res.Details.FramesAnalyzed)
}

func TestAnalysisService_HiddenHandsTriggerRecommendation(t *testing.T) {
	detections := map[int]entity.LandmarkSet{}
	for i := 0; i < 25; i += 5 {
		detections[i] = hiddenWrists()
	}
	svc := NewAnalysisService(&fakeVideo{totalFrames: 25}, &fakePose{byIndex: detections}, scoring.DefaultPolicy())

	res, err := svc.AnalyzeVideo(context.Background(), "hands.mp4")
	require.NoError(t, err)

	// Жесты проседают до 0.2, остальные аспекты безупречны: 0.75 + 0.05.
	require.InDelta(t, 0.8, res.OverallScore, 1e-6)
	require.Equal(t, entity.AssessmentGood, res.Assessment)
	require.InDelta(t, 0.2, res.Details.GestureScore, 1e-6)
	require.Len(t, res.Recommendations, 1)
	require.Contains(t, res.Recommendations[0], "gestures")
}

func TestAnalysisService_UnreadableVideo(t *testing.T) {
	video := &fakeVideo{err: port.ErrVideoUnreadable}
	pose := &fakePose{}
	svc := NewAnalysisService(video, pose, scoring.DefaultPolicy())

	_, err := svc.AnalyzeVideo(context.Background(), "broken.mp4")
	require.ErrorIs(t, err, port.ErrVideoUnreadable)
	// До сэмплирования дело не дошло.
	require.Zero(t, pose.calls)
}

func TestAnalysisService_NoDetections(t *testing.T) {
	video := &fakeVideo{totalFrames: 40}
	svc := NewAnalysisService(video, &fakePose{}, scoring.DefaultPolicy())

	res, err := svc.AnalyzeVideo(context.Background(), "empty-room.mp4")
	require.ErrorIs(t, err, scoring.ErrInsufficientData)
	require.Nil(t, res)
	require.True(t, video.streams[0].closed)
}

func TestAnalysisService_Idempotent(t *testing.T) {
	detections := map[int]entity.LandmarkSet{0: fullPose(), 10: hiddenWrists()}
	video := &fakeVideo{totalFrames: 20}
	svc := NewAnalysisService(video, &fakePose{byIndex: detections}, scoring.DefaultPolicy())

	first, err := svc.AnalyzeVideo(context.Background(), "same.mp4")
	require.NoError(t, err)
	second, err := svc.AnalyzeVideo(context.Background(), "same.mp4")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAnalysisService_CancelledContext(t *testing.T) {
	video := &fakeVideo{totalFrames: 100}
	svc := NewAnalysisService(video, &fakePose{}, scoring.DefaultPolicy())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.AnalyzeVideo(ctx, "cancelled.mp4")
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res)
	// Дескриптор видео освобождён, частичные агрегаты не просочились.
	require.True(t, video.streams[0].closed)
}
