package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"invoice-recon/internal/domain/entities"
	mock_interfaces "invoice-recon/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validIngest() IngestInvoice {
	return IngestInvoice{
		InvoiceNumber: "INV-001",
		VendorName:    "Acme Wholesale",
		InvoiceDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Currency:      "USD",
		Subtotal:      100.00,
		TaxAmount:     8.00,
		TotalAmount:   108.00,
		Items: []IngestItem{
			{LineNumber: 1, ProductName: "Olive Oil", Quantity: 2, Units: 1, UnitPrice: 4.00, TotalPrice: 8.00},
			{LineNumber: 2, ProductName: "Whole Milk", Quantity: 1, Units: 12, UnitPrice: 24.00, TotalPrice: 24.00},
		},
	}
}

func TestInvoiceUseCase_Ingest(t *testing.T) {
	t.Run("missing invoice number", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, DefaultReconcileConfig())
		cmd := validIngest()
		cmd.InvoiceNumber = "   "
		_, err := uc.Ingest(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidInvoicePayload) {
			t.Fatalf("expected ErrInvalidInvoicePayload, got %v", err)
		}
	})

	t.Run("missing vendor", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, DefaultReconcileConfig())
		cmd := validIngest()
		cmd.VendorName = ""
		_, err := uc.Ingest(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidInvoicePayload) {
			t.Fatalf("expected ErrInvalidInvoicePayload, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, DefaultReconcileConfig())
		cmd := validIngest()
		cmd.Items = nil
		_, err := uc.Ingest(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidInvoicePayload) {
			t.Fatalf("expected ErrInvalidInvoicePayload, got %v", err)
		}
	})

	t.Run("totals mismatch", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, DefaultReconcileConfig())
		cmd := validIngest()
		cmd.TotalAmount = 120.00
		_, err := uc.Ingest(context.Background(), cmd)
		if !errors.Is(err, ErrInvoiceTotalsMismatch) {
			t.Fatalf("expected ErrInvoiceTotalsMismatch, got %v", err)
		}
	})

	t.Run("totals within epsilon pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		cmd := validIngest()
		cmd.TotalAmount = 108.04

		repo.EXPECT().GetByVendorAndNumber(gomock.Any(), "Acme Wholesale", "INV-001").Return(entities.Invoice{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, items []entities.InvoiceItem) (entities.Invoice, error) {
				return inv, nil
			},
		)

		if _, err := uc.Ingest(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate line numbers", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, DefaultReconcileConfig())
		cmd := validIngest()
		cmd.Items[1].LineNumber = 1
		_, err := uc.Ingest(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidInvoicePayload) {
			t.Fatalf("expected ErrInvalidInvoicePayload, got %v", err)
		}
	})

	t.Run("already ingested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		repo.EXPECT().GetByVendorAndNumber(gomock.Any(), "Acme Wholesale", "INV-001").Return(entities.Invoice{ID: "existing"}, nil)

		_, err := uc.Ingest(context.Background(), validIngest())
		if !errors.Is(err, ErrDuplicateInvoice) {
			t.Fatalf("expected ErrDuplicateInvoice, got %v", err)
		}
	})

	t.Run("repo lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		repo.EXPECT().GetByVendorAndNumber(gomock.Any(), "Acme Wholesale", "INV-001").Return(entities.Invoice{}, errors.New("db"))

		_, err := uc.Ingest(context.Background(), validIngest())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		repo.EXPECT().GetByVendorAndNumber(gomock.Any(), "Acme Wholesale", "INV-001").Return(entities.Invoice{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, items []entities.InvoiceItem) (entities.Invoice, error) {
				if inv.ID == "" || inv.InvoiceNumber != "INV-001" || inv.VendorName != "Acme Wholesale" {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				if inv.ProcessingStatus != entities.ProcessingStatusPending {
					t.Fatalf("expected pending status, got %s", inv.ProcessingStatus)
				}
				if len(items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(items))
				}
				for _, it := range items {
					if it.ID == "" || it.InvoiceID != inv.ID {
						t.Fatalf("unexpected item: %+v", it)
					}
				}
				return inv, nil
			},
		)

		inv, err := uc.Ingest(context.Background(), validIngest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("currency defaults to USD", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		cmd := validIngest()
		cmd.Currency = ""

		repo.EXPECT().GetByVendorAndNumber(gomock.Any(), "Acme Wholesale", "INV-001").Return(entities.Invoice{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, items []entities.InvoiceItem) (entities.Invoice, error) {
				if inv.Currency != "USD" {
					t.Fatalf("expected USD, got %s", inv.Currency)
				}
				return inv, nil
			},
		)

		if _, err := uc.Ingest(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_GetLatest(t *testing.T) {
	t.Run("no invoices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		repo.EXPECT().GetLatest(gomock.Any()).Return(entities.Invoice{}, nil)

		_, err := uc.GetLatest(context.Background())
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("returns invoice with items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		repo.EXPECT().GetLatest(gomock.Any()).Return(entities.Invoice{ID: "inv-1"}, nil)
		repo.EXPECT().ListItems(gomock.Any(), "inv-1").Return([]entities.InvoiceItem{{ID: "item-1"}}, nil)

		inv, err := uc.GetLatest(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(inv.Items) != 1 || inv.Items[0].ID != "item-1" {
			t.Fatalf("unexpected items: %+v", inv.Items)
		}
	})
}

func TestInvoiceUseCase_ListItems(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, DefaultReconcileConfig())
		_, err := uc.ListItems(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		repo.EXPECT().GetByID(gomock.Any(), "inv-404").Return(entities.Invoice{}, nil)

		_, err := uc.ListItems(context.Background(), "inv-404")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("returns items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, DefaultReconcileConfig())

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1"}, nil)
		repo.EXPECT().ListItems(gomock.Any(), "inv-1").Return([]entities.InvoiceItem{{ID: "a"}, {ID: "b"}}, nil)

		items, err := uc.ListItems(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
	})
}
