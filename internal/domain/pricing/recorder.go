package pricing

import (
	"time"

	"invoice-recon/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const DefaultChangeTolerance = 0.01

// Recorder decides whether a reconciled cost constitutes a price change worth
// recording. Tolerance is the minimum absolute delta, in currency units, that
// counts as a change (default: one cent, i.e. old and new round to different
// cents).
type Recorder struct {
	Tolerance float64
}

func NewRecorder(tolerance float64) Recorder {
	if tolerance <= 0 {
		tolerance = DefaultChangeTolerance
	}
	return Recorder{Tolerance: tolerance}
}

// Changed reports whether newCost differs from oldCost beyond the tolerance,
// comparing rounded cents.
func (r Recorder) Changed(oldCost, newCost float64) bool {
	diff := decimal.NewFromFloat(newCost).Round(2).
		Sub(decimal.NewFromFloat(oldCost).Round(2)).
		Abs()
	return diff.GreaterThanOrEqual(decimal.NewFromFloat(r.Tolerance))
}

// Entry builds the history row for a detected change. Callers must only
// invoke it for matched products (there is no prior cost to compare against
// otherwise); first observations of auto-created products record no history.
func (r Recorder) Entry(productID, invoiceNumber, currency string, oldCost, newCost float64) entities.PriceHistory {
	return entities.PriceHistory{
		ProductID:     productID,
		InvoiceNumber: invoiceNumber,
		OldCost:       RoundMoney(oldCost),
		NewCost:       RoundMoney(newCost),
		Currency:      currency,
		ChangePercent: changePercent(oldCost, newCost),
		CreatedAt:     time.Now().UTC(),
	}
}

func changePercent(oldCost, newCost float64) float64 {
	if oldCost == 0 {
		return 0
	}
	pct := decimal.NewFromFloat(newCost).
		Sub(decimal.NewFromFloat(oldCost)).
		Div(decimal.NewFromFloat(oldCost)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	return pct.InexactFloat64()
}
