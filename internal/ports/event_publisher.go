package ports

import (
	"context"

	"github.com/mealio/takeout/internal/domain"
)

// EventPublisher — публикация событий смены статуса заказа.
// Ошибка публикации не должна останавливать вызывающий процесс:
// событие best-effort, источник истины — БД.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
	Close() error
}
