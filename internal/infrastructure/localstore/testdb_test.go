package localstore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/erp/companion/internal/domain/record"
)

// setupTestDB creates an in-memory SQLite cache with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&Setting{},
		&record.Customer{},
		&record.StockItem{},
		&record.SalesOrder{},
		&record.SalesOrderItem{},
		&record.Quote{},
		&record.QuoteItem{},
		&record.WorkOrder{},
		&record.WorkOrderItem{},
	)
	require.NoError(t, err)

	return db
}
