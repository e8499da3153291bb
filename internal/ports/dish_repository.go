package ports

import (
	"context"
	"time"

	"github.com/mealio/takeout/internal/domain"
)

// DishRepository — доступ к блюдам и их вкусам.
// Многошаговые записи (блюдо + вкусы) выполняются одной транзакцией:
// либо фиксируются все строки, либо ни одной.
type DishRepository interface {
	// Insert — вставить блюдо и его вкусы; id блюда проставляется
	// в dish.ID и в каждую строку flavors.
	Insert(ctx context.Context, dish *domain.Dish, flavors []domain.DishFlavor) error

	// Update — обновить строку блюда и целиком заменить набор вкусов.
	Update(ctx context.Context, dish *domain.Dish, flavors []domain.DishFlavor) error

	// Delete — удалить блюда и все их вкусы по набору id.
	Delete(ctx context.Context, ids []int64) error

	// SetStatus — обновить только статус продажи (и аудит-поля) блюда.
	SetStatus(ctx context.Context, id int64, status int, updatedBy int64, updatedAt time.Time) error

	// GetByID — точечное чтение; (nil, nil), если блюда нет.
	GetByID(ctx context.Context, id int64) (*domain.Dish, error)

	// ListEnabledByCategory — блюда категории со статусом «в продаже».
	ListEnabledByCategory(ctx context.Context, categoryID int64) ([]*domain.Dish, error)

	// FlavorsByDishID — вкусы одного блюда.
	FlavorsByDishID(ctx context.Context, dishID int64) ([]domain.DishFlavor, error)

	// ComboIDsByDishIDs — id комбо-наборов, ссылающихся на любое из блюд.
	ComboIDsByDishIDs(ctx context.Context, ids []int64) ([]int64, error)
}
