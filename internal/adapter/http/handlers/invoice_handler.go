package handlers

import (
	"errors"
	"log"
	"net/http"

	"invoice-recon/internal/adapter/http/dto/request"
	"invoice-recon/internal/adapter/http/dto/response"
	"invoice-recon/internal/usecase"
	"invoice-recon/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoice ingestion, reconciliation
// and the invoice-side verification reads.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice ingests a structured invoice and reconciles it in one call.
// The response is the reconciliation summary, not the raw rows; the read
// endpoints expose those.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoiceDate, err := payload.ResolveInvoiceDate()
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	cmd := usecase.IngestInvoice{
		InvoiceNumber:    payload.ResolveInvoiceNumber(),
		VendorName:       payload.ResolveVendorName(),
		InvoiceDate:      invoiceDate,
		Currency:         payload.Currency,
		Subtotal:         payload.Subtotal,
		TaxAmount:        payload.TaxAmount,
		TotalAmount:      payload.TotalAmount,
		ExtractionMethod: payload.ExtractionMethod,
	}
	for _, it := range payload.Items {
		cmd.Items = append(cmd.Items, usecase.IngestItem{
			LineNumber:  it.LineNumber,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Units:       it.Units,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}

	inv, err := h.usecase.Ingest(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[invoice][handler] ingest failed invoice_number=%s err=%v", cmd.InvoiceNumber, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Reconcile(c.Request.Context(), inv.ID)
	if err != nil {
		log.Printf("[invoice][handler] reconcile failed invoice_id=%s err=%v", inv.ID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ReconcileInvoice re-runs reconciliation for a pending or failed invoice.
func (h *InvoiceHandler) ReconcileInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	result, err := h.usecase.Reconcile(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[invoice][handler] reconcile failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLatestInvoice returns the most recently ingested invoice with its items.
func (h *InvoiceHandler) GetLatestInvoice(c *gin.Context) {
	inv, err := h.usecase.GetLatest(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ListInvoiceItems returns the line items of one invoice in line order.
func (h *InvoiceHandler) ListInvoiceItems(c *gin.Context) {
	invoiceID := c.Param("id")

	items, err := h.usecase.ListItems(c.Request.Context(), invoiceID)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceItems(items))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoicePayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceTotalsMismatch):
		return pkg.NewDomainErrorSimple("INVOICE_TOTALS_MISMATCH", "Invoice totals do not add up", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateInvoice):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already ingested for this vendor", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyReconciled):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_RECONCILED", "Invoice already reconciled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceBeingProcessed):
		return pkg.NewDomainErrorSimple("INVOICE_IN_PROGRESS", "Invoice reconciliation already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrReconcileFailed):
		return pkg.NewDomainError("RECONCILE_FAILED", "Invoice reconciliation failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
