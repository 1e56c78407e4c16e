package port

import (
	"context"
	"errors"

	"bodylang-bot/internal/domain/entity"
)

// ErrVideoUnreadable — файл отсутствует, повреждён или контейнер не поддерживается.
var ErrVideoUnreadable = errors.New("video is unreadable")

// VideoSource интерфейс источника видеокадров
type VideoSource interface {
	// Open открывает видеофайл и возвращает поток кадров.
	// Для нечитаемого файла возвращает ErrVideoUnreadable.
	Open(ctx context.Context, path string) (FrameStream, error)
}

// FrameStream — конечный однопроходный поток кадров одного видео.
// Поток не потокобезопасен: один прогон анализа владеет им целиком.
type FrameStream interface {
	// Next декодирует следующий кадр. ok == false означает конец видео.
	Next() (frame *entity.Frame, ok bool)

	// Skip пропускает n кадров без декодирования.
	Skip(n int)

	// Close освобождает дескриптор видео. Идемпотентен.
	Close() error
}
