package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInvoiceDate = errors.New("invalid invoice date")
)

// InvoiceItemRequest mirrors one structured line item from the extraction
// step. Units is the pack size of the priced unit; a missing or zero value is
// normalized downstream to 1.
type InvoiceItemRequest struct {
	LineNumber  int     `json:"line_number" binding:"required"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Units       int     `json:"units"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// InvoiceRequest is the ingestion payload: the structured invoice object
// produced by the (external) document extraction step.
type InvoiceRequest struct {
	InvoiceNumber    string               `json:"invoice_number" binding:"required"`
	VendorName       string               `json:"vendor_name" binding:"required"`
	InvoiceDate      string               `json:"invoice_date"`
	Currency         string               `json:"currency"`
	Subtotal         float64              `json:"subtotal"`
	TaxAmount        float64              `json:"tax_amount"`
	TotalAmount      float64              `json:"total_amount" binding:"required"`
	ExtractionMethod string               `json:"extraction_method"`
	Items            []InvoiceItemRequest `json:"items" binding:"required"`
}

func (r InvoiceRequest) ResolveInvoiceNumber() string {
	return strings.TrimSpace(r.InvoiceNumber)
}

func (r InvoiceRequest) ResolveVendorName() string {
	return strings.TrimSpace(r.VendorName)
}

// ResolveInvoiceDate accepts the date formats extraction emits: bare dates
// and full RFC3339 timestamps. An empty date resolves to the zero time.
func (r InvoiceRequest) ResolveInvoiceDate() (time.Time, error) {
	raw := strings.TrimSpace(r.InvoiceDate)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidInvoiceDate
}
