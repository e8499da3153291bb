package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mealio/takeout/internal/domain"
	"github.com/mealio/takeout/internal/ports"
)

// Ключи кэша каталога. Точный ключ — для известной категории,
// wildcard — для батч-операций, где затронутые категории заранее неизвестны.
const dishKeyPrefix = "dish_"

// DishListPattern — wildcard-инвалидация всего кэша каталога.
const DishListPattern = dishKeyPrefix + "*"

// DishListKey — ключ кэша для списка блюд одной категории.
func DishListKey(categoryID int64) string {
	return dishKeyPrefix + strconv.FormatInt(categoryID, 10)
}

// Проверка, что CatalogService удовлетворяет интерфейсу ports.CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// CatalogService — прикладная логика каталога: cache-aside чтение списков
// по категории и транзакционные мутации с инвалидацией кэша.
// Кэш — оптимизация: любая его ошибка логируется, и запрос уходит в БД.
type CatalogService struct {
	dishes ports.DishRepository
	cache  ports.CatalogCache
	log    ports.Logger
	clock  ports.Clock
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	dishes ports.DishRepository,
	cache ports.CatalogCache,
	log ports.Logger,
	clock ports.Clock,
) *CatalogService {
	return &CatalogService{
		dishes: dishes,
		cache:  cache,
		log:    log,
		clock:  clock,
	}
}

// DishesByCategory — список блюд категории (только «в продаже») с вкусами.
// Сначала кэш; при промахе — сборка из БД с записью в кэш.
// Непустое закэшированное значение возвращается как есть, без обращения к БД.
func (s *CatalogService) DishesByCategory(ctx context.Context, categoryID int64) ([]domain.DishWithFlavors, error) {
	key := DishListKey(categoryID)

	cached, err := s.cache.GetDishList(ctx, key)
	if err != nil {
		// Кэш недоступен — не ошибка для читателя, идём в БД.
		s.log.Warnf(ctx, "cache.GetDishList failed key=%s err=%v", key, err)
	}
	if len(cached) > 0 {
		s.log.Infof(ctx, "cache hit key=%s dishes=%d", key, len(cached))
		return cached, nil
	}

	dishes, err := s.dishes.ListEnabledByCategory(ctx, categoryID)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListEnabledByCategory failed category=%d err=%v", categoryID, err)
		return nil, err
	}

	list := make([]domain.DishWithFlavors, 0, len(dishes))
	for _, dish := range dishes {
		flavors, err := s.dishes.FlavorsByDishID(ctx, dish.ID)
		if err != nil {
			s.log.Errorf(ctx, "repo.FlavorsByDishID failed dish=%d err=%v", dish.ID, err)
			return nil, err
		}
		list = append(list, domain.DishWithFlavors{Dish: *dish, Flavors: flavors})
	}

	if setErr := s.cache.SetDishList(ctx, key, list); setErr != nil {
		s.log.Warnf(ctx, "cache.SetDishList failed key=%s err=%v", key, setErr)
	}

	s.log.Infof(ctx, "cache miss key=%s dishes=%d", key, len(list))
	return list, nil
}

// DishByID — блюдо с вкусами по id; (nil, nil), если блюда нет.
func (s *CatalogService) DishByID(ctx context.Context, id int64) (*domain.DishWithFlavors, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, nil
	}

	flavors, err := s.dishes.FlavorsByDishID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.DishWithFlavors{Dish: *dish, Flavors: flavors}, nil
}

// Create — создать блюдо с вкусами.
// Точный ключ категории инвалидируется ДО записи: читатель, гонящийся
// с мутацией, перечитает из БД либо полностью старое, либо полностью
// новое зафиксированное состояние, но не половину строки.
func (s *CatalogService) Create(ctx context.Context, actor int64, dish *domain.Dish, flavors []domain.DishFlavor) error {
	if dish == nil {
		return errors.New("dish is required")
	}

	s.invalidate(ctx, DishListKey(dish.CategoryID))

	now := s.clock.Now()
	dish.CreatedAt, dish.UpdatedAt = now, now
	dish.CreatedBy, dish.UpdatedBy = actor, actor

	if err := s.dishes.Insert(ctx, dish, flavors); err != nil {
		s.log.Errorf(ctx, "repo.Insert failed dish=%q err=%v", dish.Name, err)
		return fmt.Errorf("create dish: %w", err)
	}

	s.log.Infof(ctx, "dish created id=%d category=%d flavors=%d", dish.ID, dish.CategoryID, len(flavors))
	return nil
}

// Update — обновить блюдо с полной заменой набора вкусов.
// Категория могла измениться, поэтому инвалидация — wildcard.
func (s *CatalogService) Update(ctx context.Context, actor int64, dish *domain.Dish, flavors []domain.DishFlavor) error {
	if dish == nil || dish.ID == 0 {
		return errors.New("dish id is required")
	}

	s.invalidate(ctx, DishListPattern)

	dish.UpdatedAt = s.clock.Now()
	dish.UpdatedBy = actor

	if err := s.dishes.Update(ctx, dish, flavors); err != nil {
		s.log.Errorf(ctx, "repo.Update failed dish=%d err=%v", dish.ID, err)
		return fmt.Errorf("update dish: %w", err)
	}

	s.log.Infof(ctx, "dish updated id=%d flavors=%d", dish.ID, len(flavors))
	return nil
}

// Delete — батч-удаление блюд. Весь батч отклоняется целиком, если
// хоть одно блюдо в продаже или входит в комбо; строки удаляются только
// после прохождения обеих проверок.
func (s *CatalogService) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	// Категории удаляемых блюд заранее неизвестны — wildcard.
	s.invalidate(ctx, DishListPattern)

	for _, id := range ids {
		dish, err := s.dishes.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("check dish %d: %w", id, err)
		}
		if dish != nil && dish.Status == domain.DishEnabled {
			return fmt.Errorf("dish %d: %w", id, domain.ErrDishOnSale)
		}
	}

	combos, err := s.dishes.ComboIDsByDishIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("check combos: %w", err)
	}
	if len(combos) > 0 {
		return fmt.Errorf("combos %v: %w", combos, domain.ErrDishInCombo)
	}

	if err := s.dishes.Delete(ctx, ids); err != nil {
		s.log.Errorf(ctx, "repo.Delete failed ids=%v err=%v", ids, err)
		return fmt.Errorf("delete dishes: %w", err)
	}

	s.log.Infof(ctx, "dishes deleted ids=%v", ids)
	return nil
}

// SetStatus — включить/снять блюдо с продажи.
func (s *CatalogService) SetStatus(ctx context.Context, actor int64, id int64, status int) error {
	if status != domain.DishEnabled && status != domain.DishDisabled {
		return fmt.Errorf("unknown dish status %d", status)
	}

	s.invalidate(ctx, DishListPattern)

	if err := s.dishes.SetStatus(ctx, id, status, actor, s.clock.Now()); err != nil {
		s.log.Errorf(ctx, "repo.SetStatus failed dish=%d err=%v", id, err)
		return fmt.Errorf("set dish status: %w", err)
	}

	s.log.Infof(ctx, "dish status set id=%d status=%d", id, status)
	return nil
}

// invalidate — best-effort инвалидация: ошибка кэша не прерывает мутацию,
// но оставляет известный риск устаревания до следующей инвалидации.
func (s *CatalogService) invalidate(ctx context.Context, pattern string) {
	deleted, err := s.cache.Invalidate(ctx, pattern)
	if err != nil {
		s.log.Warnf(ctx, "cache.Invalidate failed pattern=%s err=%v (stale entries may remain)", pattern, err)
		return
	}
	s.log.Infof(ctx, "cache invalidated pattern=%s keys=%d", pattern, deleted)
}
