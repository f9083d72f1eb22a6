package handlers

import (
	"errors"
	"net/http"

	"invoice-recon/internal/adapter/http/dto/response"
	"invoice-recon/internal/usecase"
	"invoice-recon/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles the read-only verification queries over the catalog:
// price history by invoice number, products last touched by an invoice.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetPriceHistory returns the price change ledger rows recorded by one
// invoice number.
func (h *CatalogHandler) GetPriceHistory(c *gin.Context) {
	invoiceNumber := c.Query("invoice_number")

	rows, err := h.usecase.ListPriceHistoryByInvoiceNumber(c.Request.Context(), invoiceNumber)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceHistories(rows))
}

// GetProducts returns products whose cost was last set by the given invoice
// number.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	invoiceNumber := c.Query("last_invoice_number")

	products, err := h.usecase.ListProductsByLastInvoiceNumber(c.Request.Context(), invoiceNumber)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
