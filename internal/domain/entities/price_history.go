package entities

import "time"

// PriceHistory is an append-only ledger of detected cost changes.
//
// One row per (product, invoice) where the reconciled cost rounded to a
// different cent than the catalog cost. Rows reference product id and invoice
// number weakly; they are never updated or deleted. The unique index doubles
// as the idempotence backstop against double-counting a re-run.
type PriceHistory struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ProductID     string    `json:"product_id" gorm:"not null;uniqueIndex:idx_price_history_product_invoice"`
	InvoiceNumber string    `json:"invoice_number" gorm:"not null;uniqueIndex:idx_price_history_product_invoice"`
	OldCost       float64   `json:"old_cost"`
	NewCost       float64   `json:"new_cost"`
	Currency      string    `json:"currency" gorm:"not null;default:'USD'"`
	ChangePercent float64   `json:"change_percent"`
	CreatedAt     time.Time `json:"created_at"`
}

func (PriceHistory) TableName() string {
	return "price_history"
}
