package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mealio/takeout/config"
	"github.com/mealio/takeout/internal/kafka"
	"github.com/mealio/takeout/internal/ports"
	"github.com/mealio/takeout/internal/repo/postgres"
	"github.com/mealio/takeout/internal/task"
	"github.com/mealio/takeout/pkg/logger"
)

// CLI-приложение для разового прогона свипов заказов (ручная эксплуатация:
// догнать пропущенные прогоны после простоя сервиса).
func main() {
	which := flag.String("sweep", "all", "which sweep to run: payment|delivery|all")
	timeout := flag.Duration("timeout", 30*time.Second, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		logg.Errorf(ctx, "postgres pool: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	var publisher ports.EventPublisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled {
		p := kafka.NewProducer(kafka.ProducerConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic}, logg)
		defer func() { _ = p.Close() }()
		publisher = p
	}

	sweeper := task.NewSweeper(postgres.NewOrderRepository(pool), publisher, logg, ports.SystemClock{}, task.SweeperConfig{
		PaymentTimeout:  cfg.Sweeper.PaymentTimeout,
		DeliveryTimeout: cfg.Sweeper.DeliveryTimeout,
	})

	exitCode := 0

	if *which == "payment" || *which == "all" {
		n, err := sweeper.SweepPendingPayment(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "payment sweep: %v\n", err)
			exitCode = 1
		}
		fmt.Fprintf(os.Stderr, "payment sweep done: %d order(s) cancelled\n", n)
	}

	if *which == "delivery" || *which == "all" {
		n, err := sweeper.SweepStuckDelivery(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "delivery sweep: %v\n", err)
			exitCode = 1
		}
		fmt.Fprintf(os.Stderr, "delivery sweep done: %d order(s) completed\n", n)
	}

	os.Exit(exitCode)
}
