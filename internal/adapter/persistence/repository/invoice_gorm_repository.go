package repository

import (
	"context"
	"errors"

	"invoice-recon/internal/domain/entities"
	"invoice-recon/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// InvoiceGormRepository persists Invoice and InvoiceItem rows in Postgres.
//
// Not-found reads return a zero-value entity with a nil error; callers decide
// whether an empty ID is an error at their boundary.

type InvoiceGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IInvoiceRepository = (*InvoiceGormRepository)(nil)

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

func (r *InvoiceGormRepository) Create(ctx context.Context, inv entities.Invoice, items []entities.InvoiceItem) (entities.Invoice, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Items = items
	return inv, nil
}

func (r *InvoiceGormRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var inv entities.Invoice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceGormRepository) GetByVendorAndNumber(ctx context.Context, vendorName, invoiceNumber string) (entities.Invoice, error) {
	var inv entities.Invoice
	err := r.db.WithContext(ctx).
		Where("vendor_name = ? AND invoice_number = ?", vendorName, invoiceNumber).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceGormRepository) GetLatest(ctx context.Context) (entities.Invoice, error) {
	var inv entities.Invoice
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceGormRepository) ListItems(ctx context.Context, invoiceID string) ([]entities.InvoiceItem, error) {
	var items []entities.InvoiceItem
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("line_number ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InvoiceGormRepository) UpdateStatus(ctx context.Context, id string, status entities.ProcessingStatus) (entities.Invoice, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Invoice{}).
		Where("id = ?", id).
		Update("processing_status", status)
	if res.Error != nil {
		return entities.Invoice{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Invoice{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *InvoiceGormRepository) ApplyItemMatch(ctx context.Context, itemID string, match entities.ItemMatch) error {
	return r.db.WithContext(ctx).
		Model(&entities.InvoiceItem{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"product_id":       match.ProductID,
			"match_strategy":   match.MatchStrategy,
			"match_confidence": match.MatchConfidence,
			"cost_per_unit":    match.CostPerUnit,
		}).Error
}
