package response

import (
	"time"

	"invoice-recon/internal/domain/entities"
)

type InvoiceItemResponse struct {
	ID              string  `json:"id"`
	LineNumber      int     `json:"line_number"`
	ProductName     string  `json:"product_name"`
	Quantity        float64 `json:"quantity"`
	Units           int     `json:"units"`
	UnitPrice       float64 `json:"unit_price"`
	TotalPrice      float64 `json:"total_price"`
	CostPerUnit     float64 `json:"cost_per_unit"`
	ProductID       *string `json:"product_id"`
	MatchStrategy   string  `json:"match_strategy"`
	MatchConfidence float64 `json:"match_confidence"`
}

type InvoiceResponse struct {
	ID               string                `json:"id"`
	InvoiceNumber    string                `json:"invoice_number"`
	VendorName       string                `json:"vendor_name"`
	InvoiceDate      time.Time             `json:"invoice_date"`
	Currency         string                `json:"currency"`
	Subtotal         float64               `json:"subtotal"`
	TaxAmount        float64               `json:"tax_amount"`
	TotalAmount      float64               `json:"total_amount"`
	ProcessingStatus string                `json:"processing_status"`
	ExtractionMethod string                `json:"extraction_method"`
	CreatedAt        time.Time             `json:"created_at"`
	Items            []InvoiceItemResponse `json:"items,omitempty"`
}

func FromInvoiceItem(it entities.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ID:              it.ID,
		LineNumber:      it.LineNumber,
		ProductName:     it.ProductName,
		Quantity:        it.Quantity,
		Units:           it.Units,
		UnitPrice:       it.UnitPrice,
		TotalPrice:      it.TotalPrice,
		CostPerUnit:     it.CostPerUnit,
		ProductID:       it.ProductID,
		MatchStrategy:   it.MatchStrategy,
		MatchConfidence: it.MatchConfidence,
	}
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:               inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		VendorName:       inv.VendorName,
		InvoiceDate:      inv.InvoiceDate,
		Currency:         inv.Currency,
		Subtotal:         inv.Subtotal,
		TaxAmount:        inv.TaxAmount,
		TotalAmount:      inv.TotalAmount,
		ProcessingStatus: string(inv.ProcessingStatus),
		ExtractionMethod: inv.ExtractionMethod,
		CreatedAt:        inv.CreatedAt,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, FromInvoiceItem(it))
	}
	return resp
}

func FromInvoiceItems(items []entities.InvoiceItem) []InvoiceItemResponse {
	out := make([]InvoiceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromInvoiceItem(it))
	}
	return out
}
