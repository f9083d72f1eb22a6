package interfaces

import (
	"context"

	"invoice-recon/internal/domain/entities"
)

// IInvoiceRepository abstracts Postgres persistence for Invoice and its items.
//
// The reconciliation engine must be able to:
//   - persist an ingested invoice together with its line items
//   - read an invoice and its items back in line_number order
//   - drive the processing_status state machine
//   - apply the match outcome of a single item exactly once
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice, items []entities.InvoiceItem) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByVendorAndNumber(ctx context.Context, vendorName, invoiceNumber string) (entities.Invoice, error)
	GetLatest(ctx context.Context) (entities.Invoice, error)
	ListItems(ctx context.Context, invoiceID string) ([]entities.InvoiceItem, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProcessingStatus) (entities.Invoice, error)
	ApplyItemMatch(ctx context.Context, itemID string, match entities.ItemMatch) error
}
