package ports

import (
	"context"

	"github.com/mealio/takeout/internal/domain"
)

// CatalogCache — кэш списков блюд по ключу категории.
// Кэш — производная, выбрасываемая проекция: запись может отсутствовать
// в любой момент и никогда не считается источником истины.
type CatalogCache interface {
	// GetDishList — список по ключу; (nil, nil) при промахе.
	GetDishList(ctx context.Context, key string) ([]domain.DishWithFlavors, error)

	// SetDishList — положить собранный список под ключ.
	SetDishList(ctx context.Context, key string, list []domain.DishWithFlavors) error

	// Invalidate — удалить все ключи по шаблону (точный ключ или
	// доменный wildcard). Отсутствие совпадений — не ошибка.
	// Возвращает число удалённых ключей.
	Invalidate(ctx context.Context, pattern string) (int64, error)
}
