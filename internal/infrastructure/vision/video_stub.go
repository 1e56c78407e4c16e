//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"bodylang-bot/internal/domain/port"
)

// GoCVVideoSource — заглушка источника видео для сборки без OpenCV.
type GoCVVideoSource struct{}

// NewGoCVVideoSource создаёт источник-заглушку (без OpenCV).
func NewGoCVVideoSource() *GoCVVideoSource {
	return &GoCVVideoSource{}
}

// Open возвращает ошибку, если сборка без тега gocv.
func (s *GoCVVideoSource) Open(ctx context.Context, path string) (port.FrameStream, error) {
	_ = ctx
	_ = path
	return nil, errors.New("gocv build tag is not enabled")
}

var _ port.VideoSource = (*GoCVVideoSource)(nil)
