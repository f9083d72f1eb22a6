package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"invoice-recon/internal/domain/entities"
	"invoice-recon/internal/domain/matching"
	"invoice-recon/internal/domain/pricing"
	"invoice-recon/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInvoiceID         = errors.New("invalid invoice id")
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvalidInvoicePayload    = errors.New("invalid invoice payload")
	ErrInvoiceTotalsMismatch    = errors.New("invoice totals mismatch")
	ErrDuplicateInvoice         = errors.New("invoice already ingested for this vendor")
	ErrInvoiceAlreadyReconciled = errors.New("invoice already reconciled")
	ErrInvoiceBeingProcessed    = errors.New("invoice reconciliation already in progress")
	ErrReconcileFailed          = errors.New("invoice reconciliation failed")
)

const DefaultTotalsEpsilon = 0.05

// IInvoiceUseCase exposes the invoice reconciliation engine.
//
// Operations map to the ingestion/reconciliation pipeline:
//   - Ingest persists a structured invoice from the extraction step as pending
//   - Reconcile runs the match/normalize/record state machine over it
//   - GetLatest / ListItems back the read-only verification surface

type IInvoiceUseCase interface {
	Ingest(ctx context.Context, cmd IngestInvoice) (entities.Invoice, error)
	Reconcile(ctx context.Context, invoiceID string) (ReconcileResult, error)
	GetLatest(ctx context.Context) (entities.Invoice, error)
	ListItems(ctx context.Context, invoiceID string) ([]entities.InvoiceItem, error)
}

// IngestItem is one structured line from the extraction step.
type IngestItem struct {
	LineNumber  int
	ProductName string
	Quantity    float64
	Units       int
	UnitPrice   float64
	TotalPrice  float64
}

// IngestInvoice is the structured invoice object produced by the (external)
// extraction step. ExtractionMethod is recorded verbatim as provenance.
type IngestInvoice struct {
	InvoiceNumber    string
	VendorName       string
	InvoiceDate      time.Time
	Currency         string
	Subtotal         float64
	TaxAmount        float64
	TotalAmount      float64
	ExtractionMethod string
	Items            []IngestItem
}

// ReconcileConfig carries the engine tunables. Thresholds and tolerances were
// inferred from observed behavior, not an authoritative source, so all of
// them are configuration rather than constants.
type ReconcileConfig struct {
	Matching            matching.Config
	ChangeTolerance     float64
	TotalsEpsilon       float64
	AutoCreateUnmatched bool
}

func DefaultReconcileConfig() ReconcileConfig {
	return ReconcileConfig{
		Matching:        matching.DefaultConfig(),
		ChangeTolerance: pricing.DefaultChangeTolerance,
		TotalsEpsilon:   DefaultTotalsEpsilon,
	}
}

type InvoiceUseCase struct {
	repo     interfaces.IInvoiceRepository
	products interfaces.IProductRepository
	uow      interfaces.IUnitOfWork
	matcher  *matching.Matcher
	recorder pricing.Recorder
	cfg      ReconcileConfig
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	products interfaces.IProductRepository,
	uow interfaces.IUnitOfWork,
	cfg ReconcileConfig,
) *InvoiceUseCase {
	if cfg.TotalsEpsilon <= 0 {
		cfg.TotalsEpsilon = DefaultTotalsEpsilon
	}
	return &InvoiceUseCase{
		repo:     repo,
		products: products,
		uow:      uow,
		matcher:  matching.NewMatcher(cfg.Matching),
		recorder: pricing.NewRecorder(cfg.ChangeTolerance),
		cfg:      cfg,
	}
}

func (u *InvoiceUseCase) Ingest(ctx context.Context, cmd IngestInvoice) (entities.Invoice, error) {
	cmd.InvoiceNumber = strings.TrimSpace(cmd.InvoiceNumber)
	cmd.VendorName = strings.TrimSpace(cmd.VendorName)
	if cmd.InvoiceNumber == "" || cmd.VendorName == "" || len(cmd.Items) == 0 {
		return entities.Invoice{}, ErrInvalidInvoicePayload
	}
	if cmd.Currency == "" {
		cmd.Currency = "USD"
	}

	if !pricing.WithinEpsilon(cmd.TotalAmount, cmd.Subtotal+cmd.TaxAmount, u.cfg.TotalsEpsilon) {
		return entities.Invoice{}, ErrInvoiceTotalsMismatch
	}

	seen := make(map[int]bool, len(cmd.Items))
	for _, it := range cmd.Items {
		if it.LineNumber <= 0 || seen[it.LineNumber] {
			return entities.Invoice{}, ErrInvalidInvoicePayload
		}
		seen[it.LineNumber] = true
	}

	// Invoice numbers are vendor-scoped; the same document must not ingest twice.
	if existing, err := u.repo.GetByVendorAndNumber(ctx, cmd.VendorName, cmd.InvoiceNumber); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrDuplicateInvoice
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:               uuid.NewString(),
		InvoiceNumber:    cmd.InvoiceNumber,
		VendorName:       cmd.VendorName,
		InvoiceDate:      cmd.InvoiceDate,
		Currency:         cmd.Currency,
		Subtotal:         cmd.Subtotal,
		TaxAmount:        cmd.TaxAmount,
		TotalAmount:      cmd.TotalAmount,
		ProcessingStatus: entities.ProcessingStatusPending,
		ExtractionMethod: cmd.ExtractionMethod,
		CreatedAt:        now,
	}

	items := make([]entities.InvoiceItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		items = append(items, entities.InvoiceItem{
			ID:          uuid.NewString(),
			InvoiceID:   inv.ID,
			LineNumber:  it.LineNumber,
			ProductName: strings.TrimSpace(it.ProductName),
			Quantity:    it.Quantity,
			Units:       it.Units,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			CreatedAt:   now,
		})
	}

	return u.repo.Create(ctx, inv, items)
}

func (u *InvoiceUseCase) GetLatest(ctx context.Context) (entities.Invoice, error) {
	inv, err := u.repo.GetLatest(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	items, err := u.repo.ListItems(ctx, inv.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Items = items
	return inv, nil
}

func (u *InvoiceUseCase) ListItems(ctx context.Context, invoiceID string) ([]entities.InvoiceItem, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.ID == "" {
		return nil, ErrInvoiceNotFound
	}
	return u.repo.ListItems(ctx, invoiceID)
}
