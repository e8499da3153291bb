package usecase

import (
	"context"
	"fmt"

	"github.com/mealio/takeout/internal/ports"
)

// Проверка, что ShopService удовлетворяет интерфейсу ports.ShopService.
var _ ports.ShopService = (*ShopService)(nil)

// ShopService — статус работы заведения (открыто/закрыто).
type ShopService struct {
	store ports.ShopStateStore
	log   ports.Logger
}

// NewShopService — DI-конструктор.
func NewShopService(store ports.ShopStateStore, log ports.Logger) *ShopService {
	return &ShopService{store: store, log: log}
}

// SetStatus — установить статус заведения.
func (s *ShopService) SetStatus(ctx context.Context, status int) error {
	if status != ports.ShopOpen && status != ports.ShopClosed {
		return fmt.Errorf("unknown shop status %d", status)
	}
	if err := s.store.SetStatus(ctx, status); err != nil {
		s.log.Errorf(ctx, "shop.SetStatus failed status=%d err=%v", status, err)
		return err
	}
	s.log.Infof(ctx, "shop status set status=%d", status)
	return nil
}

// Status — текущий статус заведения.
func (s *ShopService) Status(ctx context.Context) (int, error) {
	return s.store.GetStatus(ctx)
}
