package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mealio/takeout/internal/domain"
	"github.com/mealio/takeout/internal/ports/mocks"
	"github.com/mealio/takeout/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// fixedClock — детерминированное время для проверок аудит-полей.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDishesByCategory_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	cached := []domain.DishWithFlavors{{Dish: domain.Dish{ID: 1, CategoryID: 7, Name: "soup"}}}
	cache.EXPECT().GetDishList(gomock.Any(), "dish_7").Return(cached, nil)
	// БД не трогаем: repo без ожиданий.

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	got, err := svc.DishesByCategory(context.Background(), 7)
	if err != nil || len(got) != 1 || got[0].Name != "soup" {
		t.Fatalf("expected cache hit, got err=%v list=%+v", err, got)
	}
}

func TestDishesByCategory_CacheMiss_FetchAndPopulate(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	dish := &domain.Dish{ID: 1, CategoryID: 7, Name: "soup", Status: domain.DishEnabled}
	flavors := []domain.DishFlavor{{ID: 10, DishID: 1, Name: "spice", Values: []string{"mild", "hot"}}}
	want := []domain.DishWithFlavors{{Dish: *dish, Flavors: flavors}}

	gomock.InOrder(
		cache.EXPECT().GetDishList(gomock.Any(), "dish_7").Return(nil, nil),
		repo.EXPECT().ListEnabledByCategory(gomock.Any(), int64(7)).Return([]*domain.Dish{dish}, nil),
		repo.EXPECT().FlavorsByDishID(gomock.Any(), int64(1)).Return(flavors, nil),
		cache.EXPECT().SetDishList(gomock.Any(), "dish_7", want).Return(nil),
	)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	got, err := svc.DishesByCategory(context.Background(), 7)
	if err != nil || len(got) != 1 || len(got[0].Flavors) != 1 {
		t.Fatalf("expected assembled list, got err=%v list=%+v", err, got)
	}
}

// Ошибка чтения кэша не фатальна: запрос уходит в БД.
func TestDishesByCategory_CacheError_FallsThroughToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	cache.EXPECT().GetDishList(gomock.Any(), "dish_7").Return(nil, errors.New("redis down"))
	repo.EXPECT().ListEnabledByCategory(gomock.Any(), int64(7)).Return(nil, nil)
	cache.EXPECT().SetDishList(gomock.Any(), "dish_7", gomock.Any()).Return(errors.New("redis down"))

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	got, err := svc.DishesByCategory(context.Background(), 7)
	if err != nil {
		t.Fatalf("cache error must not fail read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

// Точный ключ категории чистится ДО вставки.
func TestCreate_InvalidatesExactKeyBeforeInsert(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	dish := &domain.Dish{CategoryID: 7, Name: "soup"}
	flavors := []domain.DishFlavor{{Name: "spice", Values: []string{"mild"}}}

	gomock.InOrder(
		cache.EXPECT().Invalidate(gomock.Any(), "dish_7").Return(int64(1), nil),
		repo.EXPECT().Insert(gomock.Any(), dish, flavors).Return(nil),
	)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	if err := svc.Create(context.Background(), 42, dish, flavors); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dish.CreatedAt != testNow || dish.UpdatedAt != testNow {
		t.Fatalf("audit time not stamped: %+v", dish)
	}
	if dish.CreatedBy != 42 || dish.UpdatedBy != 42 {
		t.Fatalf("audit actor not stamped: %+v", dish)
	}
}

// Ошибка инвалидации не прерывает мутацию.
func TestCreate_InvalidateError_StillInserts(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	dish := &domain.Dish{CategoryID: 7, Name: "soup"}

	cache.EXPECT().Invalidate(gomock.Any(), "dish_7").Return(int64(0), errors.New("redis down"))
	repo.EXPECT().Insert(gomock.Any(), dish, nil).Return(nil)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	if err := svc.Create(context.Background(), 42, dish, nil); err != nil {
		t.Fatalf("cache error must not abort create: %v", err)
	}
}

// Категория могла смениться — инвалидация по wildcard.
func TestUpdate_InvalidatesWildcard(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	dish := &domain.Dish{ID: 1, CategoryID: 8, Name: "soup"}

	gomock.InOrder(
		cache.EXPECT().Invalidate(gomock.Any(), usecase.DishListPattern).Return(int64(3), nil),
		repo.EXPECT().Update(gomock.Any(), dish, gomock.Any()).Return(nil),
	)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	if err := svc.Update(context.Background(), 42, dish, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if dish.UpdatedAt != testNow || dish.UpdatedBy != 42 {
		t.Fatalf("audit not stamped: %+v", dish)
	}
}

func TestDelete_RejectsDishOnSale(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	cache.EXPECT().Invalidate(gomock.Any(), usecase.DishListPattern).Return(int64(0), nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(&domain.Dish{ID: 1, Status: domain.DishEnabled}, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	err := svc.Delete(context.Background(), []int64{1, 2})
	if !errors.Is(err, domain.ErrDishOnSale) {
		t.Fatalf("want ErrDishOnSale, got %v", err)
	}
}

func TestDelete_RejectsDishInCombo(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	cache.EXPECT().Invalidate(gomock.Any(), usecase.DishListPattern).Return(int64(0), nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(&domain.Dish{ID: 1, Status: domain.DishDisabled}, nil)
	repo.EXPECT().ComboIDsByDishIDs(gomock.Any(), []int64{1}).Return([]int64{5}, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	err := svc.Delete(context.Background(), []int64{1})
	if !errors.Is(err, domain.ErrDishInCombo) {
		t.Fatalf("want ErrDishInCombo, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	gomock.InOrder(
		cache.EXPECT().Invalidate(gomock.Any(), usecase.DishListPattern).Return(int64(2), nil),
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&domain.Dish{ID: 1, Status: domain.DishDisabled}, nil),
		repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil),
		repo.EXPECT().ComboIDsByDishIDs(gomock.Any(), []int64{1, 2}).Return(nil, nil),
		repo.EXPECT().Delete(gomock.Any(), []int64{1, 2}).Return(nil),
	)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	if err := svc.Delete(context.Background(), []int64{1, 2}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestDelete_EmptyBatch_NoOp(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)
	// ни кэш, ни БД не трогаем

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	if err := svc.Delete(context.Background(), nil); err != nil {
		t.Fatalf("empty batch must be a no-op: %v", err)
	}
}

func TestSetStatus_UnknownStatus_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)
	// невалидный статус отклоняется до обращений к кэшу и БД

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	if err := svc.SetStatus(context.Background(), 42, 1, 7); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestSetStatus_InvalidatesWildcard(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	gomock.InOrder(
		cache.EXPECT().Invalidate(gomock.Any(), usecase.DishListPattern).Return(int64(1), nil),
		repo.EXPECT().SetStatus(gomock.Any(), int64(1), domain.DishDisabled, int64(42), testNow).Return(nil),
	)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	if err := svc.SetStatus(context.Background(), 42, 1, domain.DishDisabled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
}

func TestDishByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	cache := mocks.NewMockCatalogCache(ctrl)

	repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	svc := usecase.NewCatalogService(repo, cache, noopLogger{}, fixedClock{testNow})

	got, err := svc.DishByID(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", got, err)
	}
}
