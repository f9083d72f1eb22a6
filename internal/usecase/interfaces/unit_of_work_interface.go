package interfaces

import "context"

// RepositorySet is the bundle of repositories bound to one transaction.
type RepositorySet struct {
	Invoices     IInvoiceRepository
	Products     IProductRepository
	PriceHistory IPriceHistoryRepository
}

// IUnitOfWork runs fn inside a single store transaction: every write made
// through the RepositorySet is committed together, or rolled back together if
// fn returns an error. This carries the per-invoice atomicity guarantee: a
// product cost update can never land without its history row, or vice versa.
type IUnitOfWork interface {
	Do(ctx context.Context, fn func(repos RepositorySet) error) error
}
