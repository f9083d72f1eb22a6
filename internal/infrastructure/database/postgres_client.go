package database

import (
	"log"
	"os"

	"invoice-recon/internal/domain/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectPostgres opens the GORM connection from environment variables and
// migrates the reconciliation schema.
//
// Supported env vars:
//   - DATABASE_URL (required; postgres DSN)
//
// A missing or unreachable database is a startup-fatal configuration error:
// the engine never attempts partial processing without its store.
func ConnectPostgres() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatalf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Invoice{},
		&entities.InvoiceItem{},
		&entities.Product{},
		&entities.ProductAlias{},
		&entities.PriceHistory{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
