package domain

import "errors"

// Бизнес-ошибки каталога. Проверяются через errors.Is на верхних слоях.
var (
	// ErrDishOnSale — попытка удалить блюдо, находящееся в продаже.
	ErrDishOnSale = errors.New("dish is on sale and cannot be deleted")

	// ErrDishInCombo — блюдо входит в комбо-набор и не может быть удалено.
	ErrDishInCombo = errors.New("dish is referenced by a combo and cannot be deleted")
)
