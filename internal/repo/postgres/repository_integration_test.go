//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/mealio/takeout/internal/domain"
	pgrepo "github.com/mealio/takeout/internal/repo/postgres"
	"github.com/mealio/takeout/internal/testutil"
)

// подъём контейнера + миграции + пул; общий пролог интеграционных тестов
func setupPG(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctxTest, cancelTest := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancelTest)

	pool, err := pgxpool.New(ctxTest, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return ctxTest, pool
}

// 1) Вставка блюда с вкусами и чтение списка по категории
func TestDishRepo_InsertAndList_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := setupPG(t)
	repo := pgrepo.NewDishRepository(pool)

	dish := testutil.MakeDish(testutil.WithCategory(7))
	flavors := testutil.MakeFlavors(2)
	require.NoError(t, repo.Insert(ctx, &dish, flavors))
	require.NotZero(t, dish.ID)

	// блюдо другой категории и снятое с продажи в выборку не попадают
	other := testutil.MakeDish(testutil.WithCategory(8))
	require.NoError(t, repo.Insert(ctx, &other, nil))
	disabled := testutil.MakeDish(testutil.WithCategory(7), testutil.WithStatus(domain.DishDisabled))
	require.NoError(t, repo.Insert(ctx, &disabled, nil))

	list, err := repo.ListEnabledByCategory(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, dish.ID, list[0].ID)

	got, err := repo.FlavorsByDishID(ctx, dish.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, []string{"mild", "medium", "hot"}, got[0].Values)
}

// 2) Update — полная замена набора вкусов
func TestDishRepo_Update_FlavorsReplace_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := setupPG(t)
	repo := pgrepo.NewDishRepository(pool)

	dish := testutil.MakeDish()
	require.NoError(t, repo.Insert(ctx, &dish, testutil.MakeFlavors(3)))

	dish.Name = dish.Name + "-v2"
	newFlavors := []domain.DishFlavor{{Name: "sweetness", Values: []string{"less", "normal"}}}
	require.NoError(t, repo.Update(ctx, &dish, newFlavors))

	got, err := repo.FlavorsByDishID(ctx, dish.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "sweetness", got[0].Name)

	reread, err := repo.GetByID(ctx, dish.ID)
	require.NoError(t, err)
	require.NotNil(t, reread)
	require.Equal(t, dish.Name, reread.Name)
}

// 3) Батч-удаление блюд вместе с вкусами
func TestDishRepo_Delete_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := setupPG(t)
	repo := pgrepo.NewDishRepository(pool)

	d1 := testutil.MakeDish(testutil.WithStatus(domain.DishDisabled))
	require.NoError(t, repo.Insert(ctx, &d1, testutil.MakeFlavors(1)))
	d2 := testutil.MakeDish(testutil.WithStatus(domain.DishDisabled))
	require.NoError(t, repo.Insert(ctx, &d2, nil))

	require.NoError(t, repo.Delete(ctx, []int64{d1.ID, d2.ID}))

	got, err := repo.GetByID(ctx, d1.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	flavors, err := repo.FlavorsByDishID(ctx, d1.ID)
	require.NoError(t, err)
	require.Empty(t, flavors)
}

// 4) Предикат свипера: выборка по статусу и возрасту, повторная выборка пуста
func TestOrderRepo_SweepPredicate_TC(t *testing.T) {
	t.Parallel()

	ctx, pool := setupPG(t)
	repo := pgrepo.NewOrderRepository(pool)

	now := time.Now().UTC().Truncate(time.Second)

	expired := testutil.MakeOrder(testutil.WithCreatedAt(now.Add(-20 * time.Minute)))
	require.NoError(t, repo.Insert(ctx, &expired))
	fresh := testutil.MakeOrder(testutil.WithCreatedAt(now.Add(-5 * time.Minute)))
	require.NoError(t, repo.Insert(ctx, &fresh))
	delivering := testutil.MakeOrder(
		testutil.WithOrderStatus(domain.OrderDeliveryInProgress),
		testutil.WithCreatedAt(now.Add(-30*time.Minute)),
	)
	require.NoError(t, repo.Insert(ctx, &delivering))

	cutoff := now.Add(-15 * time.Minute)
	due, err := repo.ListByStatusCreatedBefore(ctx, domain.OrderPendingPayment, cutoff)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, expired.ID, due[0].ID)

	// перевод статуса выводит строку из предиката
	due[0].Status = domain.OrderCancelled
	due[0].CancelReason = "payment timed out, auto-cancelled"
	cancelledAt := now
	due[0].CancelledAt = &cancelledAt
	require.NoError(t, repo.Update(ctx, due[0]))

	again, err := repo.ListByStatusCreatedBefore(ctx, domain.OrderPendingPayment, cutoff)
	require.NoError(t, err)
	require.Empty(t, again)

	reread, err := repo.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	require.NotNil(t, reread)
	require.Equal(t, domain.OrderCancelled, reread.Status)
	require.Equal(t, "payment timed out, auto-cancelled", reread.CancelReason)
	require.NotNil(t, reread.CancelledAt)
}
