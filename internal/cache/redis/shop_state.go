package rediscache

import (
	"context"
	"errors"
	"fmt"

	"github.com/mealio/takeout/internal/ports"
	"github.com/redis/go-redis/v9"
)

// Ключ статуса заведения в Redis.
const shopStatusKey = "shop_status"

// Проверка, что ShopStateStore удовлетворяет интерфейсу ports.ShopStateStore.
var _ ports.ShopStateStore = (*ShopStateStore)(nil)

// ShopStateStore — статус работы заведения в Redis. Значение хранится
// без TTL: статус живёт до следующей явной записи.
type ShopStateStore struct {
	client *redis.Client
}

// NewShopStateStore — конструктор ShopStateStore.
func NewShopStateStore(client *redis.Client) *ShopStateStore {
	return &ShopStateStore{client: client}
}

// SetStatus — записать статус.
func (s *ShopStateStore) SetStatus(ctx context.Context, status int) error {
	if err := s.client.Set(ctx, shopStatusKey, status, 0).Err(); err != nil {
		return fmt.Errorf("set shop status: %w", err)
	}
	return nil
}

// GetStatus — прочитать статус; незаданное значение = закрыто.
func (s *ShopStateStore) GetStatus(ctx context.Context) (int, error) {
	status, err := s.client.Get(ctx, shopStatusKey).Int()
	if errors.Is(err, redis.Nil) {
		return ports.ShopClosed, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get shop status: %w", err)
	}
	return status, nil
}
