//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"bodylang-bot/internal/domain/entity"
	"bodylang-bot/internal/domain/port"
)

// GoCVPoseEstimator — заглушка детектора позы для сборки без OpenCV.
type GoCVPoseEstimator struct {
	InputSize         int
	MinPartConfidence float64
	MinPoseConfidence float64
}

// NewGoCVPoseEstimator создаёт детектор-заглушку (без OpenCV).
func NewGoCVPoseEstimator(protoPath, modelPath string) (*GoCVPoseEstimator, error) {
	_ = protoPath
	_ = modelPath
	return &GoCVPoseEstimator{
		InputSize:         368,
		MinPartConfidence: 0.1,
		MinPoseConfidence: 0.2,
	}, nil
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (e *GoCVPoseEstimator) Detect(ctx context.Context, frame *entity.Frame) (entity.LandmarkSet, error) {
	_ = ctx
	_ = frame
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не освобождает в заглушке.
func (e *GoCVPoseEstimator) Close() error {
	return nil
}

var _ port.PoseEstimator = (*GoCVPoseEstimator)(nil)
