package usecase

import (
	"context"
	"errors"
	"testing"

	"invoice-recon/internal/domain/entities"
	mock_interfaces "invoice-recon/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListPriceHistoryByInvoiceNumber(t *testing.T) {
	t.Run("invalid invoice number", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.ListPriceHistoryByInvoiceNumber(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidInvoiceNumber) {
			t.Fatalf("expected ErrInvalidInvoiceNumber, got %v", err)
		}
	})

	t.Run("returns rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		history := mock_interfaces.NewMockIPriceHistoryRepository(ctrl)
		uc := NewCatalogUseCase(nil, history)

		history.EXPECT().ListByInvoiceNumber(gomock.Any(), "INV-001").Return([]entities.PriceHistory{{ProductID: "prod-001"}}, nil)

		rows, err := uc.ListPriceHistoryByInvoiceNumber(context.Background(), " INV-001 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].ProductID != "prod-001" {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})
}

func TestCatalogUseCase_ListProductsByLastInvoiceNumber(t *testing.T) {
	t.Run("invalid invoice number", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.ListProductsByLastInvoiceNumber(context.Background(), "")
		if !errors.Is(err, ErrInvalidInvoiceNumber) {
			t.Fatalf("expected ErrInvalidInvoiceNumber, got %v", err)
		}
	})

	t.Run("returns products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		products.EXPECT().ListByLastInvoiceNumber(gomock.Any(), "INV-001").Return([]entities.Product{{ID: "prod-001"}}, nil)

		got, err := uc.ListProductsByLastInvoiceNumber(context.Background(), "INV-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "prod-001" {
			t.Fatalf("unexpected products: %+v", got)
		}
	})
}
