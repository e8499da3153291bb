package app_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mealio/takeout/internal/app"
	"github.com/mealio/takeout/internal/kafka"
	"github.com/mealio/takeout/internal/ports"
	"github.com/mealio/takeout/internal/ports/mocks"
	"github.com/mealio/takeout/internal/task"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestAppRun_GracefulShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	// Свипер с интервалами, заведомо большими времени теста:
	// ни одного прогона случиться не должно, репозиторий без ожиданий.
	sweeper := task.NewSweeper(
		mocks.NewMockOrderRepository(ctrl),
		kafka.NopPublisher{},
		nopLogger{},
		ports.SystemClock{},
		task.SweeperConfig{PaymentInterval: time.Hour},
	)

	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: srv,
		Sweeper:    sweeper,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}
