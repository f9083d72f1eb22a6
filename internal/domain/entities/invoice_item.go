package entities

import "time"

// InvoiceItem is one line of an invoice, owned by exactly one Invoice.
//
// Storage model (Postgres):
//   - PK: id (uuid)
//   - unique (invoice_id, line_number): line numbers define reconciliation order
//
// The extraction step writes the raw fields (ProductName, Quantity, Units,
// UnitPrice, TotalPrice). The reconciliation coordinator fills ProductID,
// MatchStrategy, MatchConfidence and CostPerUnit exactly once; everything
// else is immutable after ingestion.
type InvoiceItem struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	InvoiceID       string    `json:"invoice_id" gorm:"not null;uniqueIndex:idx_invoice_items_line"`
	LineNumber      int       `json:"line_number" gorm:"not null;uniqueIndex:idx_invoice_items_line"`
	ProductName     string    `json:"product_name" gorm:"not null"`
	Quantity        float64   `json:"quantity"`
	Units           int       `json:"units" gorm:"default:1"`
	UnitPrice       float64   `json:"unit_price"`
	TotalPrice      float64   `json:"total_price"`
	CostPerUnit     float64   `json:"cost_per_unit"`
	ProductID       *string   `json:"product_id" gorm:"index"`
	MatchStrategy   string    `json:"match_strategy"`
	MatchConfidence float64   `json:"match_confidence"`
	CreatedAt       time.Time `json:"created_at"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// ItemMatch carries the reconciliation outcome applied to an InvoiceItem.
type ItemMatch struct {
	ProductID       *string
	MatchStrategy   string
	MatchConfidence float64
	CostPerUnit     float64
}
