package response

import (
	"time"

	"invoice-recon/internal/domain/entities"
)

type PriceHistoryResponse struct {
	ProductID     string    `json:"product_id"`
	InvoiceNumber string    `json:"invoice_number"`
	OldCost       float64   `json:"old_cost"`
	NewCost       float64   `json:"new_cost"`
	Currency      string    `json:"currency"`
	ChangePercent float64   `json:"change_percent"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPriceHistory(h entities.PriceHistory) PriceHistoryResponse {
	return PriceHistoryResponse{
		ProductID:     h.ProductID,
		InvoiceNumber: h.InvoiceNumber,
		OldCost:       h.OldCost,
		NewCost:       h.NewCost,
		Currency:      h.Currency,
		ChangePercent: h.ChangePercent,
		CreatedAt:     h.CreatedAt,
	}
}

func FromPriceHistories(rows []entities.PriceHistory) []PriceHistoryResponse {
	out := make([]PriceHistoryResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, FromPriceHistory(h))
	}
	return out
}
