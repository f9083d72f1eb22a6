package interfaces

import (
	"context"

	"invoice-recon/internal/domain/entities"
)

// IPriceHistoryRepository abstracts the append-only price change ledger.
type IPriceHistoryRepository interface {
	Create(ctx context.Context, h entities.PriceHistory) (entities.PriceHistory, error)
	ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.PriceHistory, error)
}
