package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mealio/takeout/internal/domain"
	"github.com/mealio/takeout/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу ports.OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Insert — вставка заказа; id проставляется в order.ID.
func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	if order == nil || order.Number == "" {
		return errors.New("order is empty or number is required")
	}

	if err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (number, user_id, status, amount, created_at, cancel_reason, cancelled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		order.Number, order.UserID, order.Status, order.Amount,
		order.CreatedAt, order.CancelReason, order.CancelledAt,
	).Scan(&order.ID); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID — точечное чтение заказа. Если строки нет, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, number, user_id, status, amount, created_at, cancel_reason, cancelled_at
		FROM orders WHERE id = $1
	`, id).Scan(
		&order.ID, &order.Number, &order.UserID, &order.Status, &order.Amount,
		&order.CreatedAt, &order.CancelReason, &order.CancelledAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &order, nil
}

// ListByStatusCreatedBefore — заказы в статусе status, созданные раньше before.
// Предикат свипера: повторный прогон после перевода статусов ничего не находит.
func (r *OrderRepository) ListByStatusCreatedBefore(ctx context.Context, status int, before time.Time) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, number, user_id, status, amount, created_at, cancel_reason, cancelled_at
		FROM orders
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at, id
	`, status, before)
	if err != nil {
		return nil, fmt.Errorf("select orders by status: %w", err)
	}
	defer rows.Close()

	var result []*domain.Order
	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(
			&order.ID, &order.Number, &order.UserID, &order.Status, &order.Amount,
			&order.CreatedAt, &order.CancelReason, &order.CancelledAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order rows: %w", err)
	}
	return result, nil
}

// Update — обновление статуса и полей отмены одной строкой (атомарный UPDATE).
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == 0 {
		return errors.New("order is empty or id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $1, cancel_reason = $2, cancelled_at = $3 WHERE id = $4
	`, order.Status, order.CancelReason, order.CancelledAt, order.ID); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}
