package repository

import (
	"context"
	"errors"
	"time"

	"invoice-recon/internal/domain/entities"
	"invoice-recon/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductGormRepository persists the product catalog and alias table.

type ProductGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProductRepository = (*ProductGormRepository)(nil)

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) ListAll(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListAliases(ctx context.Context) ([]entities.ProductAlias, error) {
	var aliases []entities.ProductAlias
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&aliases).Error; err != nil {
		return nil, err
	}
	return aliases, nil
}

// GetByIDForUpdate reads a product under SELECT ... FOR UPDATE. Inside a
// transaction this serializes concurrent invoices that both want to move the
// same product's cost; the second one blocks until the first commits.
func (r *ProductGormRepository) GetByIDForUpdate(ctx context.Context, id string) (entities.Product, error) {
	var p entities.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Product{}, nil
	}
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) ApplyCostUpdate(ctx context.Context, id string, cost float64, invoiceNumber string) (entities.Product, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"cost":                cost,
			"last_invoice_number": invoiceNumber,
			"last_update_date":    time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Product{}, nil
	}

	var p entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) ListByLastInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.Product, error) {
	var products []entities.Product
	err := r.db.WithContext(ctx).
		Where("last_invoice_number = ?", invoiceNumber).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
