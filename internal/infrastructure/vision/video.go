//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"bodylang-bot/internal/domain/entity"
	"bodylang-bot/internal/domain/port"
)

// GoCVVideoSource читает видеофайлы через OpenCV VideoCapture.
type GoCVVideoSource struct{}

// NewGoCVVideoSource создаёт источник видеокадров.
func NewGoCVVideoSource() *GoCVVideoSource {
	return &GoCVVideoSource{}
}

// Open открывает видеофайл и возвращает поток кадров.
func (s *GoCVVideoSource) Open(ctx context.Context, path string) (port.FrameStream, error) {
	_ = ctx
	vc, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", port.ErrVideoUnreadable, path)
	}
	if !vc.IsOpened() || vc.Get(gocv.VideoCaptureFrameCount) <= 0 {
		vc.Close()
		return nil, fmt.Errorf("%w: %s", port.ErrVideoUnreadable, path)
	}

	return &gocvFrameStream{vc: vc, mat: gocv.NewMat()}, nil
}

// gocvFrameStream — однопроходный поток кадров одного открытого видео.
type gocvFrameStream struct {
	vc     *gocv.VideoCapture
	mat    gocv.Mat
	index  int
	closed bool
}

// Next декодирует следующий кадр и отдаёт его в кодировке JPEG.
func (s *gocvFrameStream) Next() (*entity.Frame, bool) {
	if s.closed {
		return nil, false
	}
	if !s.vc.Read(&s.mat) || s.mat.Empty() {
		return nil, false
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, s.mat)
	if err != nil {
		// Кадр не кодируется — считаем видео законченным.
		return nil, false
	}
	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	buf.Close()

	frame := &entity.Frame{
		Index:  s.index,
		Width:  s.mat.Cols(),
		Height: s.mat.Rows(),
		Data:   data,
	}
	s.index++
	return frame, true
}

// Skip пропускает n кадров без декодирования.
func (s *gocvFrameStream) Skip(n int) {
	if s.closed || n <= 0 {
		return
	}
	s.vc.Grab(n)
	s.index += n
}

// Close освобождает дескриптор видео. Идемпотентен.
func (s *gocvFrameStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.mat.Close()
	return s.vc.Close()
}

var _ port.VideoSource = (*GoCVVideoSource)(nil)
