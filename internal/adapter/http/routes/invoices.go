package routes

import (
	"invoice-recon/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices     = "/invoices"
	PathPriceHistory = "/price-history"
	PathProducts     = "/products"
)

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, catalogHandler *handlers.CatalogHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.POST("/:id/reconcile", invoiceHandler.ReconcileInvoice)
		invoices.GET("/latest", invoiceHandler.GetLatestInvoice)
		invoices.GET("/:id/items", invoiceHandler.ListInvoiceItems)
	}

	rg.GET(PathPriceHistory, catalogHandler.GetPriceHistory)
	rg.GET(PathProducts, catalogHandler.GetProducts)
}
