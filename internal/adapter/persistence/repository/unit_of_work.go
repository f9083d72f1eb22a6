package repository

import (
	"context"

	"invoice-recon/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// GormUnitOfWork maps the engine's atomic-write contract onto a single
// Postgres transaction. Repositories handed to fn are bound to that
// transaction, so the full write set of one invoice commits or rolls back as
// one unit.

type GormUnitOfWork struct {
	db *gorm.DB
}

var _ interfaces.IUnitOfWork = (*GormUnitOfWork)(nil)

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Do(ctx context.Context, fn func(repos interfaces.RepositorySet) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(interfaces.RepositorySet{
			Invoices:     NewInvoiceGormRepository(tx),
			Products:     NewProductGormRepository(tx),
			PriceHistory: NewPriceHistoryGormRepository(tx),
		})
	})
}
