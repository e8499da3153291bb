//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/mealio/takeout/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор блюда с вкусами
func MakeDish(opts ...func(*domain.Dish)) domain.Dish {
	now := time.Now().UTC().Truncate(time.Second)

	d := domain.Dish{
		CategoryID:  1,
		Name:        "dish-" + UniqSuffix(),
		Price:       25.50,
		Image:       "img/" + UniqSuffix() + ".png",
		Description: "test dish",
		Status:      domain.DishEnabled,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   1,
		UpdatedBy:   1,
	}

	for _, fn := range opts {
		fn(&d)
	}
	return d
}

func WithCategory(categoryID int64) func(*domain.Dish) {
	return func(d *domain.Dish) { d.CategoryID = categoryID }
}

func WithStatus(status int) func(*domain.Dish) {
	return func(d *domain.Dish) { d.Status = status }
}

func MakeFlavors(n int) []domain.DishFlavor {
	flavors := make([]domain.DishFlavor, 0, n)
	for i := 0; i < n; i++ {
		flavors = append(flavors, domain.DishFlavor{
			Name:   "flavor-" + UniqSuffix(),
			Values: []string{"mild", "medium", "hot"},
		})
	}
	return flavors
}

// Мини-генератор заказа; номер уникален в пределах прогона.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		Number:    uuid.NewString(),
		UserID:    1,
		Status:    domain.OrderPendingPayment,
		Amount:    99.90,
		CreatedAt: now,
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithOrderStatus(status int) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = status }
}

func WithCreatedAt(t time.Time) func(*domain.Order) {
	return func(o *domain.Order) { o.CreatedAt = t }
}
