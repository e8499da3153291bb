package ports

import (
	"context"
	"time"

	"github.com/mealio/takeout/internal/domain"
)

// OrderRepository — доступ к заказам.
type OrderRepository interface {
	// Insert — вставить заказ; id проставляется в order.ID.
	Insert(ctx context.Context, order *domain.Order) error

	// GetByID — точечное чтение; (nil, nil), если заказа нет.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// ListByStatusCreatedBefore — заказы в заданном статусе,
	// созданные строго раньше before.
	ListByStatusCreatedBefore(ctx context.Context, status int, before time.Time) ([]*domain.Order, error)

	// Update — обновить статус и поля отмены одной строки (атомарно).
	Update(ctx context.Context, order *domain.Order) error
}
