package routes

import (
	"log"
	"os"
	"strconv"

	_ "invoice-recon/docs" // This will be auto-generated
	"invoice-recon/internal/adapter/http/handlers"
	"invoice-recon/internal/adapter/persistence/repository"
	"invoice-recon/internal/infrastructure/database"
	"invoice-recon/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.ConnectPostgres()

	invoiceRepo := repository.NewInvoiceGormRepository(db)
	productRepo := repository.NewProductGormRepository(db)
	historyRepo := repository.NewPriceHistoryGormRepository(db)
	uow := repository.NewGormUnitOfWork(db)

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, productRepo, uow, reconcileConfigFromEnv())
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, historyRepo)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoiceRoutes(v1, invoiceHandler, catalogHandler)
}

// reconcileConfigFromEnv builds the engine tunables from the environment,
// falling back to the defaults when a variable is unset or unparsable.
func reconcileConfigFromEnv() usecase.ReconcileConfig {
	cfg := usecase.DefaultReconcileConfig()
	cfg.Matching.FuzzyThreshold = getenvFloat("FUZZY_MATCH_THRESHOLD", cfg.Matching.FuzzyThreshold)
	cfg.Matching.BrandFuzzyThreshold = getenvFloat("BRAND_FUZZY_THRESHOLD", cfg.Matching.BrandFuzzyThreshold)
	cfg.ChangeTolerance = getenvFloat("PRICE_CHANGE_TOLERANCE", cfg.ChangeTolerance)
	cfg.TotalsEpsilon = getenvFloat("TOTALS_EPSILON", cfg.TotalsEpsilon)
	cfg.AutoCreateUnmatched = getenvBool("AUTO_CREATE_UNMATCHED", cfg.AutoCreateUnmatched)
	return cfg
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[routes][config] ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return f
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[routes][config] ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return b
}
