package ports

import "context"

// Статусы работы заведения.
const (
	ShopClosed = 0
	ShopOpen   = 1
)

// ShopStateStore — хранилище статуса работы заведения (открыто/закрыто).
type ShopStateStore interface {
	// SetStatus — записать статус.
	SetStatus(ctx context.Context, status int) error

	// GetStatus — прочитать статус; если значение не задано,
	// возвращается ShopClosed без ошибки.
	GetStatus(ctx context.Context) (int, error)
}
