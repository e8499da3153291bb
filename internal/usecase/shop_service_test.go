package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mealio/takeout/internal/ports"
	"github.com/mealio/takeout/internal/ports/mocks"
	"github.com/mealio/takeout/internal/usecase"
)

func TestShopSetStatus_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockShopStateStore(ctrl)
	store.EXPECT().SetStatus(gomock.Any(), ports.ShopOpen).Return(nil)

	svc := usecase.NewShopService(store, noopLogger{})

	if err := svc.SetStatus(context.Background(), ports.ShopOpen); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
}

func TestShopSetStatus_UnknownStatus_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockShopStateStore(ctrl)
	// до хранилища дойти не должны

	svc := usecase.NewShopService(store, noopLogger{})

	if err := svc.SetStatus(context.Background(), 2); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestShopStatus_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockShopStateStore(ctrl)
	store.EXPECT().GetStatus(gomock.Any()).Return(ports.ShopClosed, nil)

	svc := usecase.NewShopService(store, noopLogger{})

	got, err := svc.Status(context.Background())
	if err != nil || got != ports.ShopClosed {
		t.Fatalf("Status: got %d err=%v", got, err)
	}
}
