package interfaces

import (
	"context"

	"invoice-recon/internal/domain/entities"
)

// IProductRepository abstracts Postgres persistence for the product catalog
// and its alias table.
//
// GetByIDForUpdate must take a row-level lock when called inside a unit of
// work, so that two invoices reconciling the same product serialize their
// read-modify-write of Cost instead of losing an update.
type IProductRepository interface {
	ListAll(ctx context.Context) ([]entities.Product, error)
	ListAliases(ctx context.Context) ([]entities.ProductAlias, error)
	GetByIDForUpdate(ctx context.Context, id string) (entities.Product, error)
	ApplyCostUpdate(ctx context.Context, id string, cost float64, invoiceNumber string) (entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	ListByLastInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.Product, error)
}
