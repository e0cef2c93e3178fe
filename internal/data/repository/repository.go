package repository

import (
	"museumpass/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Catalog CatalogRepository
	Ledger  BookingLedger
}

func NewRepository(catalog CatalogRepository, ledger BookingLedger) *Repository {
	return &Repository{
		Catalog: catalog,
		Ledger:  ledger,
	}
}

// NewLedger picks the ledger backend. db is only used by the postgres driver.
func NewLedger(driver, path string, db database.PgxIface, log *zap.Logger) BookingLedger {
	if driver == "postgres" && db != nil {
		return NewPostgresLedger(db, log)
	}
	return NewFileLedger(path, log)
}
