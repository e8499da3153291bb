package domain

import "time"

// Статусы продажи блюда.
const (
	DishDisabled = 0 // снято с продажи
	DishEnabled  = 1 // в продаже
)

// Dish — блюдо каталога. Аудит-поля заполняются сервисом мутаций
// явно (актор + часы), а не скрытым хуком.
type Dish struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   int64     `json:"created_by"`
	UpdatedBy   int64     `json:"updated_by"`
}

// DishFlavor — вариант вкуса блюда (название + список значений на выбор).
// Каждая строка привязана ровно к одному DishID; при обновлении блюда
// набор вкусов заменяется целиком.
type DishFlavor struct {
	ID     int64    `json:"id"`
	DishID int64    `json:"dish_id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// DishWithFlavors — блюдо вместе с его вкусами; единица хранения
// в кэше каталога.
type DishWithFlavors struct {
	Dish
	Flavors []DishFlavor `json:"flavors"`
}
