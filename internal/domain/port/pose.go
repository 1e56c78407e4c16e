package port

import (
	"context"

	"bodylang-bot/internal/domain/entity"
)

// PoseEstimator интерфейс детектора позы
type PoseEstimator interface {
	// Detect находит точки тела на кадре.
	// Отсутствие человека в кадре — штатный исход: возвращается (nil, nil),
	// а не ошибка.
	Detect(ctx context.Context, frame *entity.Frame) (entity.LandmarkSet, error)
}
