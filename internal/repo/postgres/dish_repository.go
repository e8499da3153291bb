package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mealio/takeout/internal/domain"
	"github.com/mealio/takeout/internal/ports"
)

// Проверка, что DishRepository удовлетворяет интерфейсу ports.DishRepository.
var _ ports.DishRepository = (*DishRepository)(nil)

// DishRepository — реализация репозитория блюд на Postgres (pgxpool).
// Выборки по наборам значений строятся через squirrel, записи — raw SQL.
type DishRepository struct {
	pool *pgxpool.Pool
	sq   squirrel.StatementBuilderType
}

// NewDishRepository — конструктор DishRepository.
func NewDishRepository(pool *pgxpool.Pool) *DishRepository {
	return &DishRepository{
		pool: pool,
		// Плейсхолдеры в стиле PostgreSQL ($1, $2, ...).
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert — транзакционная вставка блюда и его вкусов.
// id нового блюда проставляется в dish.ID и в каждую строку flavors.
func (r *DishRepository) Insert(ctx context.Context, dish *domain.Dish, flavors []domain.DishFlavor) error {
	if dish == nil || dish.Name == "" {
		return errors.New("dish is empty or name is required")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if err := tx.QueryRow(ctx, `
		INSERT INTO dish (category_id, name, price, image, description, status,
			created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		dish.CategoryID, dish.Name, dish.Price, dish.Image, dish.Description, dish.Status,
		dish.CreatedAt, dish.UpdatedAt, dish.CreatedBy, dish.UpdatedBy,
	).Scan(&dish.ID); err != nil {
		return fmt.Errorf("insert dish: %w", err)
	}

	if len(flavors) > 0 {
		for i := range flavors {
			flavors[i].DishID = dish.ID
		}
		if err := copyFlavors(ctx, tx, flavors); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Update — транзакционное обновление блюда с полной заменой вкусов:
// старые строки dish_flavor удаляются, новый набор вставляется заново.
func (r *DishRepository) Update(ctx context.Context, dish *domain.Dish, flavors []domain.DishFlavor) error {
	if dish == nil || dish.ID == 0 {
		return errors.New("dish is empty or id is required")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `
		UPDATE dish SET
			category_id = $1, name = $2, price = $3, image = $4, description = $5,
			status = $6, updated_at = $7, updated_by = $8
		WHERE id = $9
	`,
		dish.CategoryID, dish.Name, dish.Price, dish.Image, dish.Description,
		dish.Status, dish.UpdatedAt, dish.UpdatedBy, dish.ID,
	); err != nil {
		return fmt.Errorf("update dish: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM dish_flavor WHERE dish_id = $1`, dish.ID); err != nil {
		return fmt.Errorf("delete flavors: %w", err)
	}
	if len(flavors) > 0 {
		for i := range flavors {
			flavors[i].DishID = dish.ID
		}
		if err := copyFlavors(ctx, tx, flavors); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete — транзакционное удаление блюд и их вкусов по набору id.
// Бизнес-проверки (статус продажи, принадлежность комбо) выполняет сервис.
func (r *DishRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM dish_flavor WHERE dish_id = ANY($1::bigint[])`, ids); err != nil {
		return fmt.Errorf("delete flavors: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM dish WHERE id = ANY($1::bigint[])`, ids); err != nil {
		return fmt.Errorf("delete dishes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// SetStatus — обновляет только статус продажи и аудит-поля.
func (r *DishRepository) SetStatus(ctx context.Context, id int64, status int, updatedBy int64, updatedAt time.Time) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE dish SET status = $1, updated_by = $2, updated_at = $3 WHERE id = $4
	`, status, updatedBy, updatedAt, id); err != nil {
		return fmt.Errorf("set dish status: %w", err)
	}
	return nil
}

// GetByID — точечное чтение блюда. Если строки нет, возвращает (nil, nil).
func (r *DishRepository) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.pool.QueryRow(ctx, `
		SELECT id, category_id, name, price, image, description, status,
			created_at, updated_at, created_by, updated_by
		FROM dish WHERE id = $1
	`, id).Scan(
		&dish.ID, &dish.CategoryID, &dish.Name, &dish.Price, &dish.Image, &dish.Description,
		&dish.Status, &dish.CreatedAt, &dish.UpdatedAt, &dish.CreatedBy, &dish.UpdatedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select dish: %w", err)
	}
	return &dish, nil
}

// ListEnabledByCategory — блюда категории со статусом «в продаже».
func (r *DishRepository) ListEnabledByCategory(ctx context.Context, categoryID int64) ([]*domain.Dish, error) {
	sql, args, err := r.sq.
		Select("id", "category_id", "name", "price", "image", "description", "status",
			"created_at", "updated_at", "created_by", "updated_by").
		From("dish").
		Where(squirrel.Eq{"category_id": categoryID, "status": domain.DishEnabled}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dish list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select dishes: %w", err)
	}
	defer rows.Close()

	var result []*domain.Dish
	for rows.Next() {
		dish := &domain.Dish{}
		if err := rows.Scan(
			&dish.ID, &dish.CategoryID, &dish.Name, &dish.Price, &dish.Image, &dish.Description,
			&dish.Status, &dish.CreatedAt, &dish.UpdatedAt, &dish.CreatedBy, &dish.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		result = append(result, dish)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dish rows: %w", err)
	}
	return result, nil
}

// FlavorsByDishID — вкусы одного блюда.
func (r *DishRepository) FlavorsByDishID(ctx context.Context, dishID int64) ([]domain.DishFlavor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, dish_id, name, options
		FROM dish_flavor WHERE dish_id = $1
		ORDER BY id
	`, dishID)
	if err != nil {
		return nil, fmt.Errorf("select flavors: %w", err)
	}
	defer rows.Close()

	var result []domain.DishFlavor
	for rows.Next() {
		var flavor domain.DishFlavor
		if err := rows.Scan(&flavor.ID, &flavor.DishID, &flavor.Name, &flavor.Values); err != nil {
			return nil, fmt.Errorf("scan flavor: %w", err)
		}
		result = append(result, flavor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("flavor rows: %w", err)
	}
	return result, nil
}

// ComboIDsByDishIDs — id комбо-наборов, в которые входит любое из блюд.
func (r *DishRepository) ComboIDsByDishIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := r.sq.
		Select("DISTINCT combo_id").
		From("combo_dish").
		Where(squirrel.Eq{"dish_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build combo lookup: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select combo ids: %w", err)
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var comboID int64
		if err := rows.Scan(&comboID); err != nil {
			return nil, fmt.Errorf("scan combo id: %w", err)
		}
		result = append(result, comboID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("combo rows: %w", err)
	}
	return result, nil
}

// copyFlavors — вставка вкусов через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyFlavors(ctx context.Context, tx pgx.Tx, flavors []domain.DishFlavor) error {
	rows := make([][]any, 0, len(flavors))
	for _, flavor := range flavors {
		rows = append(rows, []any{flavor.DishID, flavor.Name, flavor.Values})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"dish_flavor"},
		[]string{"dish_id", "name", "options"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy flavors: %w", err)
	}
	return nil
}

// rollback — откат транзакции в defer; ErrTxClosed после успешного Commit игнорируем.
func rollback(ctx context.Context, tx pgx.Tx) {
	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		_ = rbErr
	}
}
