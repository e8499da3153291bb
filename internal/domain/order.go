package domain

import "time"

// Статусы заказа. Свипер переводит заказы только вперёд:
// PendingPayment → Cancelled и DeliveryInProgress → Completed;
// терминальные статусы никогда не переоткрываются.
const (
	OrderPendingPayment     = 1
	OrderToBeConfirmed      = 2
	OrderConfirmed          = 3
	OrderDeliveryInProgress = 4
	OrderCompleted          = 5
	OrderCancelled          = 6
)

// Order — заказ. Для свипера значимы статус, время создания
// и поля отмены.
type Order struct {
	ID           int64      `json:"id"`
	Number       string     `json:"number"`
	UserID       int64      `json:"user_id"`
	Status       int        `json:"status"`
	Amount       float64    `json:"amount"`
	CreatedAt    time.Time  `json:"created_at"`
	CancelReason string     `json:"cancel_reason,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

// OrderEvent — событие смены статуса заказа (публикуется свипером).
type OrderEvent struct {
	OrderID    int64     `json:"order_id"`
	Number     string    `json:"number"`
	Status     int       `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
