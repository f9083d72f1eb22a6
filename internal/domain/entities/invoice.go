package entities

import "time"

// ProcessingStatus represents the lifecycle of an ingested invoice.
//
// Transitions are monotonic: pending -> processing -> {completed, failed}.
// A failed invoice may be reconciled again as a fresh run; a completed one
// is terminal and guarded against re-processing.

type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "pending"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

// Invoice is one ingested vendor invoice.
//
// Storage model (Postgres):
//   - PK: id (uuid)
//   - unique (vendor_name, invoice_number): invoice numbers are vendor-scoped
//
// Monetary invariant: TotalAmount ~= Subtotal + TaxAmount within the
// configured epsilon, enforced at ingestion time.
type Invoice struct {
	ID               string           `json:"id" gorm:"primaryKey"`
	InvoiceNumber    string           `json:"invoice_number" gorm:"not null;uniqueIndex:idx_invoices_vendor_number"`
	VendorName       string           `json:"vendor_name" gorm:"not null;uniqueIndex:idx_invoices_vendor_number"`
	InvoiceDate      time.Time        `json:"invoice_date"`
	Currency         string           `json:"currency" gorm:"not null;default:'USD'"`
	Subtotal         float64          `json:"subtotal"`
	TaxAmount        float64          `json:"tax_amount"`
	TotalAmount      float64          `json:"total_amount"`
	ProcessingStatus ProcessingStatus `json:"processing_status" gorm:"not null;default:'pending'"`
	ExtractionMethod string           `json:"extraction_method"`
	CreatedAt        time.Time        `json:"created_at"`

	Items []InvoiceItem `json:"items,omitempty" gorm:"foreignKey:InvoiceID"`
}

func (Invoice) TableName() string {
	return "invoices"
}
