package entities

import "time"

// Product is a long-lived catalog entry shared across many invoices.
//
// Cost is the current canonical per-atomic-unit cost. Only the reconciliation
// coordinator mutates it, at most once per reconciled invoice per product, and
// LastUpdateDate strictly increases with each mutation.
type Product struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"not null;uniqueIndex"`
	Brand             string    `json:"brand" gorm:"index"`
	Category          string    `json:"category"`
	Cost              float64   `json:"cost"`
	Currency          string    `json:"currency" gorm:"not null;default:'USD'"`
	LastInvoiceNumber string    `json:"last_invoice_number" gorm:"index"`
	LastUpdateDate    time.Time `json:"last_update_date"`
	CreatedAt         time.Time `json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductAlias links a known alternate spelling of a product name to its
// catalog entry. The matcher resolves aliases at fixed 0.95 confidence.
type ProductAlias struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Alias     string    `json:"alias" gorm:"not null;uniqueIndex"`
	ProductID string    `json:"product_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProductAlias) TableName() string {
	return "product_aliases"
}
