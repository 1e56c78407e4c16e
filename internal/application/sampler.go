package app

import (
	"context"

	"bodylang-bot/internal/domain/entity"
	"bodylang-bot/internal/domain/port"
)

// sampleFrames обходит поток кадров с шагом stride и отдаёт каждый
// выбранный кадр в visit. Анализировать каждый кадр не нужно и дорого:
// шаг ограничивает число вызовов детектора до total/stride.
// Остановка — конец видео, ошибка visit или отмена контекста.
func sampleFrames(ctx context.Context, stream port.FrameStream, stride int, visit func(*entity.Frame) error) error {
	if stride < 1 {
		stride = 1
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame, ok := stream.Next()
		if !ok {
			return nil
		}
		if err := visit(frame); err != nil {
			return err
		}
		stream.Skip(stride - 1)
	}
}
