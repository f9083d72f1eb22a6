package usecase

import (
	"context"
	"errors"
	"strings"

	"invoice-recon/internal/domain/entities"
	"invoice-recon/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceNumber = errors.New("invalid invoice number")
)

// ICatalogUseCase backs the read-only verification queries over the catalog
// side of the store: price history rows by invoice number, and products last
// touched by an invoice.

type ICatalogUseCase interface {
	ListPriceHistoryByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.PriceHistory, error)
	ListProductsByLastInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.Product, error)
}

type CatalogUseCase struct {
	products interfaces.IProductRepository
	history  interfaces.IPriceHistoryRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, history interfaces.IPriceHistoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, history: history}
}

func (u *CatalogUseCase) ListPriceHistoryByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.PriceHistory, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return nil, ErrInvalidInvoiceNumber
	}
	return u.history.ListByInvoiceNumber(ctx, invoiceNumber)
}

func (u *CatalogUseCase) ListProductsByLastInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.Product, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return nil, ErrInvalidInvoiceNumber
	}
	return u.products.ListByLastInvoiceNumber(ctx, invoiceNumber)
}
