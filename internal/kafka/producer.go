package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/mealio/takeout/internal/domain"
	"github.com/mealio/takeout/internal/ports"
	"github.com/mealio/takeout/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет интерфейсу ports.EventPublisher.
var _ ports.EventPublisher = (*Producer)(nil)

// ProducerConfig — адреса брокеров и топик событий заказов.
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его фейком в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — публикация событий смены статуса заказа в Kafka.
// Ключ сообщения — id заказа: события одного заказа попадают
// в одну партицию и сохраняют порядок.
type Producer struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewProducer — конструктор поверх kafka.Writer.
func NewProducer(cfg ProducerConfig, log ports.Logger) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w, topic: cfg.Topic, log: log}
}

// PublishOrderEvent — сериализует событие в JSON и отправляет в топик.
func (p *Producer) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: raw,
	}); err != nil {
		metrics.OrderEventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write order event: %w", err)
	}

	metrics.OrderEventsPublished.WithLabelValues(p.topic).Inc()
	p.log.Infof(ctx, "order event published topic=%s order=%d status=%d", p.topic, event.OrderID, event.Status)
	return nil
}

// Close — закрывает writer; повторные вызовы безопасны.
func (p *Producer) Close() error {
	var err error
	p.closeOnce.Do(func() { err = p.writer.Close() })
	return err
}

// NopPublisher — заглушка для конфигурации без Kafka.
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(context.Context, domain.OrderEvent) error { return nil }
func (NopPublisher) Close() error                                               { return nil }
