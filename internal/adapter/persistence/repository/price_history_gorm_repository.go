package repository

import (
	"context"

	"invoice-recon/internal/domain/entities"
	"invoice-recon/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// PriceHistoryGormRepository persists the append-only price change ledger.
// Rows are only ever inserted; the unique (product_id, invoice_number) index
// makes an accidental double-record fail loudly instead of silently doubling.

type PriceHistoryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPriceHistoryRepository = (*PriceHistoryGormRepository)(nil)

func NewPriceHistoryGormRepository(db *gorm.DB) *PriceHistoryGormRepository {
	return &PriceHistoryGormRepository{db: db}
}

func (r *PriceHistoryGormRepository) Create(ctx context.Context, h entities.PriceHistory) (entities.PriceHistory, error) {
	if err := r.db.WithContext(ctx).Create(&h).Error; err != nil {
		return entities.PriceHistory{}, err
	}
	return h, nil
}

func (r *PriceHistoryGormRepository) ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.PriceHistory, error) {
	var rows []entities.PriceHistory
	err := r.db.WithContext(ctx).
		Where("invoice_number = ?", invoiceNumber).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
