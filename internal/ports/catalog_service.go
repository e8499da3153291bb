package ports

import (
	"context"

	"github.com/mealio/takeout/internal/domain"
)

// CatalogService — прикладной сервис каталога, потребляемый транспортом.
type CatalogService interface {
	DishesByCategory(ctx context.Context, categoryID int64) ([]domain.DishWithFlavors, error)
	DishByID(ctx context.Context, id int64) (*domain.DishWithFlavors, error)
	Create(ctx context.Context, actor int64, dish *domain.Dish, flavors []domain.DishFlavor) error
	Update(ctx context.Context, actor int64, dish *domain.Dish, flavors []domain.DishFlavor) error
	Delete(ctx context.Context, ids []int64) error
	SetStatus(ctx context.Context, actor int64, id int64, status int) error
}

// ShopService — статус работы заведения для транспорта.
type ShopService interface {
	SetStatus(ctx context.Context, status int) error
	Status(ctx context.Context) (int, error)
}
