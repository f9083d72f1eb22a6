package response

import (
	"time"

	"invoice-recon/internal/domain/entities"
)

type ProductResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Brand             string    `json:"brand"`
	Category          string    `json:"category"`
	Cost              float64   `json:"cost"`
	Currency          string    `json:"currency"`
	LastInvoiceNumber string    `json:"last_invoice_number"`
	LastUpdateDate    time.Time `json:"last_update_date"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Brand:             p.Brand,
		Category:          p.Category,
		Cost:              p.Cost,
		Currency:          p.Currency,
		LastInvoiceNumber: p.LastInvoiceNumber,
		LastUpdateDate:    p.LastUpdateDate,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
