package task

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mealio/takeout/internal/domain"
	"github.com/mealio/takeout/internal/ports"
	"github.com/mealio/takeout/pkg/metrics"
)

// CancelReasonPaymentTimeout — фиксированная причина автоотмены.
const CancelReasonPaymentTimeout = "payment timed out, auto-cancelled"

// Имена свипов для логов и метрик.
const (
	sweepPaymentTimeout = "payment_timeout"
	sweepStuckDelivery  = "stuck_delivery"
)

// SweeperConfig — расписание и пороги свипов.
type SweeperConfig struct {
	PaymentInterval time.Duration // период свипа неоплаченных заказов
	PaymentTimeout  time.Duration // порог ожидания оплаты
	DeliveryHour    int           // час ежедневного свипа доставки [0..23]
	DeliveryTimeout time.Duration // порог «зависшей» доставки
}

// Sweeper — периодическая задача жизненного цикла заказов.
// Два независимых свипа, оба идемпотентны: смена статуса выводит строку
// из предиката выборки, поэтому повторный или запоздавший прогон — no-op.
// Явных блокировок между scan и update нет; корректность держится на
// атомарности построчного UPDATE.
type Sweeper struct {
	orders ports.OrderRepository
	events ports.EventPublisher
	log    ports.Logger
	clock  ports.Clock

	cfg SweeperConfig

	// Защита от наложения прогонов: если предыдущий ещё идёт,
	// очередной срабатывание таймера пропускается.
	paymentRunning  atomic.Bool
	deliveryRunning atomic.Bool
}

// NewSweeper — конструктор. Нулевые поля конфигурации получают
// значения по умолчанию: раз в минуту / 15 минут / 01:00 / 60 минут.
func NewSweeper(
	orders ports.OrderRepository,
	events ports.EventPublisher,
	log ports.Logger,
	clock ports.Clock,
	cfg SweeperConfig,
) *Sweeper {
	if cfg.PaymentInterval <= 0 {
		cfg.PaymentInterval = time.Minute
	}
	if cfg.PaymentTimeout <= 0 {
		cfg.PaymentTimeout = 15 * time.Minute
	}
	if cfg.DeliveryHour < 0 || cfg.DeliveryHour > 23 {
		cfg.DeliveryHour = 1
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = 60 * time.Minute
	}

	return &Sweeper{
		orders: orders,
		events: events,
		log:    log,
		clock:  clock,
		cfg:    cfg,
	}
}

// Run — основной цикл: тикер свипа оплаты и таймер ежедневного свипа
// доставки. Останавливается по отмене контекста.
func (s *Sweeper) Run(ctx context.Context) error {
	s.log.Infof(ctx, "order sweeper started payment_interval=%s payment_timeout=%s delivery_hour=%02d:00 delivery_timeout=%s",
		s.cfg.PaymentInterval, s.cfg.PaymentTimeout, s.cfg.DeliveryHour, s.cfg.DeliveryTimeout)

	paymentTicker := time.NewTicker(s.cfg.PaymentInterval)
	defer paymentTicker.Stop()

	deliveryTimer := time.NewTimer(s.untilNextDeliveryRun())
	defer deliveryTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Infof(ctx, "order sweeper stopped")
			return ctx.Err()

		case <-paymentTicker.C:
			if _, err := s.SweepPendingPayment(ctx); err != nil {
				s.log.Warnf(ctx, "payment sweep failed: %v", err)
			}

		case <-deliveryTimer.C:
			if _, err := s.SweepStuckDelivery(ctx); err != nil {
				s.log.Warnf(ctx, "delivery sweep failed: %v", err)
			}
			deliveryTimer.Reset(s.untilNextDeliveryRun())
		}
	}
}

// SweepPendingPayment — один проход свипа оплаты: заказы в статусе
// «ждёт оплаты», созданные раньше now-PaymentTimeout, отменяются
// с фиксированной причиной и временем отмены.
// Возвращает число переведённых заказов.
func (s *Sweeper) SweepPendingPayment(ctx context.Context) (int, error) {
	if !s.paymentRunning.CompareAndSwap(false, true) {
		s.log.Warnf(ctx, "sweep=%s skipped: previous run still in progress", sweepPaymentTimeout)
		return 0, nil
	}
	defer s.paymentRunning.Store(false)

	now := s.clock.Now()
	cutoff := now.Add(-s.cfg.PaymentTimeout)

	orders, err := s.orders.ListByStatusCreatedBefore(ctx, domain.OrderPendingPayment, cutoff)
	if err != nil {
		return 0, err
	}
	metrics.SweepRuns.WithLabelValues(sweepPaymentTimeout).Inc()

	processed := 0
	for _, order := range orders {
		order.Status = domain.OrderCancelled
		order.CancelReason = CancelReasonPaymentTimeout
		cancelledAt := now
		order.CancelledAt = &cancelledAt

		// Ошибка одной строки не прерывает проход по остальным.
		if err := s.orders.Update(ctx, order); err != nil {
			metrics.SweepOrdersFailed.WithLabelValues(sweepPaymentTimeout).Inc()
			s.log.Errorf(ctx, "sweep=%s update failed order=%d err=%v", sweepPaymentTimeout, order.ID, err)
			continue
		}
		metrics.SweepOrdersProcessed.WithLabelValues(sweepPaymentTimeout).Inc()
		processed++

		s.publish(ctx, domain.OrderEvent{
			OrderID:    order.ID,
			Number:     order.Number,
			Status:     domain.OrderCancelled,
			Reason:     CancelReasonPaymentTimeout,
			OccurredAt: now,
		})
	}

	if processed > 0 {
		s.log.Infof(ctx, "sweep=%s cancelled=%d cutoff=%s", sweepPaymentTimeout, processed, cutoff.Format(time.RFC3339))
	}
	return processed, nil
}

// SweepStuckDelivery — один проход свипа доставки: заказы «в доставке»,
// созданные раньше now-DeliveryTimeout, переводятся в «завершён».
func (s *Sweeper) SweepStuckDelivery(ctx context.Context) (int, error) {
	if !s.deliveryRunning.CompareAndSwap(false, true) {
		s.log.Warnf(ctx, "sweep=%s skipped: previous run still in progress", sweepStuckDelivery)
		return 0, nil
	}
	defer s.deliveryRunning.Store(false)

	now := s.clock.Now()
	cutoff := now.Add(-s.cfg.DeliveryTimeout)

	orders, err := s.orders.ListByStatusCreatedBefore(ctx, domain.OrderDeliveryInProgress, cutoff)
	if err != nil {
		return 0, err
	}
	metrics.SweepRuns.WithLabelValues(sweepStuckDelivery).Inc()

	processed := 0
	for _, order := range orders {
		order.Status = domain.OrderCompleted

		if err := s.orders.Update(ctx, order); err != nil {
			metrics.SweepOrdersFailed.WithLabelValues(sweepStuckDelivery).Inc()
			s.log.Errorf(ctx, "sweep=%s update failed order=%d err=%v", sweepStuckDelivery, order.ID, err)
			continue
		}
		metrics.SweepOrdersProcessed.WithLabelValues(sweepStuckDelivery).Inc()
		processed++

		s.publish(ctx, domain.OrderEvent{
			OrderID:    order.ID,
			Number:     order.Number,
			Status:     domain.OrderCompleted,
			OccurredAt: now,
		})
	}

	if processed > 0 {
		s.log.Infof(ctx, "sweep=%s completed=%d cutoff=%s", sweepStuckDelivery, processed, cutoff.Format(time.RFC3339))
	}
	return processed, nil
}

// publish — best-effort публикация события; источник истины — БД.
func (s *Sweeper) publish(ctx context.Context, event domain.OrderEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.log.Warnf(ctx, "publish order event failed order=%d err=%v", event.OrderID, err)
	}
}

// untilNextDeliveryRun — время до ближайшего DeliveryHour:00.
func (s *Sweeper) untilNextDeliveryRun() time.Duration {
	now := s.clock.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.cfg.DeliveryHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}
