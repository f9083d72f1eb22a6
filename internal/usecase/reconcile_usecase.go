package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"invoice-recon/internal/domain/entities"
	"invoice-recon/internal/domain/matching"
	"invoice-recon/internal/domain/pricing"
	"invoice-recon/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ReconcileResult summarizes one reconciliation run.
type ReconcileResult struct {
	InvoiceID       string                    `json:"invoice_id"`
	InvoiceNumber   string                    `json:"invoice_number"`
	Status          entities.ProcessingStatus `json:"status"`
	ItemsProcessed  int                       `json:"items_processed"`
	ItemsMatched    int                       `json:"items_matched"`
	ItemsUnmatched  int                       `json:"items_unmatched"`
	PriceUpdates    int                       `json:"price_updates"`
	ProductsCreated int                       `json:"products_created"`
}

// itemPlan is the staged outcome for one line item.
type itemPlan struct {
	itemID string
	match  entities.ItemMatch
}

// productStage is the staged cost update for one catalog product. Line items
// are walked in ascending line_number order, so when several lines match the
// same product the last one wins: it alone decides the new cost, and the
// invoice produces at most one history row per product.
type productStage struct {
	productID string
	newCost   float64
}

// Reconcile runs the per-invoice state machine: pending -> processing ->
// {completed, failed}.
//
// Per-item failures (missing name, negative price) degrade the item to
// unmatched with confidence 0 and never abort the run. Only infrastructure
// failures flip the invoice to failed, and the transactional unit of work
// guarantees that a failed run leaves no partial rows behind.
func (u *InvoiceUseCase) Reconcile(ctx context.Context, invoiceID string) (ReconcileResult, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return ReconcileResult{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if inv.ID == "" {
		return ReconcileResult{}, ErrInvoiceNotFound
	}

	// Re-running a completed invoice would double-count price history.
	switch inv.ProcessingStatus {
	case entities.ProcessingStatusCompleted:
		return ReconcileResult{}, ErrInvoiceAlreadyReconciled
	case entities.ProcessingStatusProcessing:
		return ReconcileResult{}, ErrInvoiceBeingProcessed
	}

	log.Printf("[reconcile][usecase] start invoice_id=%s invoice_number=%s vendor=%s", inv.ID, inv.InvoiceNumber, inv.VendorName)

	if _, err := u.repo.UpdateStatus(ctx, inv.ID, entities.ProcessingStatusProcessing); err != nil {
		return ReconcileResult{}, err
	}

	result := ReconcileResult{InvoiceID: inv.ID, InvoiceNumber: inv.InvoiceNumber}

	items, err := u.repo.ListItems(ctx, inv.ID)
	if err != nil {
		return u.fail(ctx, inv.ID, result, err)
	}

	catalog, err := u.loadCatalog(ctx)
	if err != nil {
		return u.fail(ctx, inv.ID, result, err)
	}

	plans, stages, created := u.planItems(inv, items, catalog)
	result.ItemsProcessed = len(plans)
	for _, p := range plans {
		if p.match.ProductID != nil {
			result.ItemsMatched++
		} else {
			result.ItemsUnmatched++
		}
	}

	err = u.uow.Do(ctx, func(repos interfaces.RepositorySet) error {
		for _, p := range plans {
			if err := repos.Invoices.ApplyItemMatch(ctx, p.itemID, p.match); err != nil {
				return err
			}
		}

		for _, stage := range stages {
			// Lock the row and re-read the cost: a concurrent invoice may
			// have updated this product since the catalog snapshot.
			current, err := repos.Products.GetByIDForUpdate(ctx, stage.productID)
			if err != nil {
				return err
			}
			if !u.recorder.Changed(current.Cost, stage.newCost) {
				continue
			}
			entry := u.recorder.Entry(stage.productID, inv.InvoiceNumber, inv.Currency, current.Cost, stage.newCost)
			if _, err := repos.PriceHistory.Create(ctx, entry); err != nil {
				return err
			}
			if _, err := repos.Products.ApplyCostUpdate(ctx, stage.productID, stage.newCost, inv.InvoiceNumber); err != nil {
				return err
			}
			result.PriceUpdates++
		}

		for _, p := range created {
			if _, err := repos.Products.Create(ctx, p); err != nil {
				return err
			}
			result.ProductsCreated++
		}

		if _, err := repos.Invoices.UpdateStatus(ctx, inv.ID, entities.ProcessingStatusCompleted); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return u.fail(ctx, inv.ID, result, err)
	}

	result.Status = entities.ProcessingStatusCompleted
	log.Printf("[reconcile][usecase] completed invoice_id=%s items=%d matched=%d unmatched=%d price_updates=%d created=%d",
		inv.ID, result.ItemsProcessed, result.ItemsMatched, result.ItemsUnmatched, result.PriceUpdates, result.ProductsCreated)
	return result, nil
}

func (u *InvoiceUseCase) loadCatalog(ctx context.Context) (*matching.Catalog, error) {
	products, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	aliases, err := u.products.ListAliases(ctx)
	if err != nil {
		return nil, err
	}
	return matching.NewCatalog(products, aliases), nil
}

// planItems walks the items in line order and stages every write without
// touching the store. Matching and cost derivation are pure; the staged plan
// is replayed inside the unit of work afterwards.
func (u *InvoiceUseCase) planItems(inv entities.Invoice, items []entities.InvoiceItem, catalog *matching.Catalog) ([]itemPlan, []productStage, []entities.Product) {
	plans := make([]itemPlan, 0, len(items))
	stageIndex := map[string]int{}
	var stages []productStage
	var created []entities.Product
	createdNames := map[string]bool{}

	for _, item := range items {
		cost, costErr := pricing.CostPerUnit(item.UnitPrice, item.Units)
		if item.ProductName == "" || costErr != nil {
			if costErr != nil {
				log.Printf("[reconcile][usecase] degraded item invoice_id=%s line=%d err=%v", inv.ID, item.LineNumber, costErr)
			}
			plans = append(plans, itemPlan{itemID: item.ID, match: entities.ItemMatch{MatchStrategy: matching.StrategyUnmatched}})
			continue
		}

		res := u.matcher.Match(item.ProductName, catalog)
		if !res.Matched {
			plans = append(plans, itemPlan{itemID: item.ID, match: entities.ItemMatch{
				MatchStrategy: matching.StrategyUnmatched,
				CostPerUnit:   cost,
			}})
			if u.cfg.AutoCreateUnmatched {
				norm := matching.NormalizeName(item.ProductName)
				if !createdNames[norm] {
					createdNames[norm] = true
					now := time.Now().UTC()
					created = append(created, entities.Product{
						ID:                uuid.NewString(),
						Name:              item.ProductName,
						Cost:              cost,
						Currency:          inv.Currency,
						LastInvoiceNumber: inv.InvoiceNumber,
						LastUpdateDate:    now,
						CreatedAt:         now,
					})
				}
			}
			continue
		}

		productID := res.ProductID
		plans = append(plans, itemPlan{itemID: item.ID, match: entities.ItemMatch{
			ProductID:       &productID,
			MatchStrategy:   res.Strategy,
			MatchConfidence: res.Confidence,
			CostPerUnit:     cost,
		}})

		if idx, ok := stageIndex[productID]; ok {
			stages[idx].newCost = cost
		} else {
			stageIndex[productID] = len(stages)
			stages = append(stages, productStage{productID: productID, newCost: cost})
		}
	}

	return plans, stages, created
}

// fail marks the invoice failed (best effort; the transactional writes are
// already rolled back) and translates the cause into the single failure
// sentinel surfaced at the engine boundary.
func (u *InvoiceUseCase) fail(ctx context.Context, invoiceID string, result ReconcileResult, cause error) (ReconcileResult, error) {
	log.Printf("[reconcile][usecase] failed invoice_id=%s err=%v", invoiceID, cause)
	if _, err := u.repo.UpdateStatus(ctx, invoiceID, entities.ProcessingStatusFailed); err != nil {
		log.Printf("[reconcile][usecase] could not mark invoice failed invoice_id=%s err=%v", invoiceID, err)
	}
	result.Status = entities.ProcessingStatusFailed
	result.PriceUpdates = 0
	result.ProductsCreated = 0
	return result, ErrReconcileFailed
}
