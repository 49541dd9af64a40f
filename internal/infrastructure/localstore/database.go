package localstore

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/infrastructure/config"
	"github.com/erp/companion/internal/infrastructure/logger"
)

// Database holds the embedded sqlite connection backing the offline cache
type Database struct {
	DB *gorm.DB
}

// Open opens (or creates) the sqlite cache file and migrates the schema.
// Foreign keys are enabled so line items cascade with their parent.
func Open(cfg *config.DatabaseConfig, zapLogger *zap.Logger) (*Database, error) {
	dsn := cfg.Path
	if dsn == ":memory:" {
		dsn = "file::memory:"
	}
	dsn += "?_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.NewGormLogger(zapLogger, gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	return &Database{DB: db}, nil
}

// migrate creates or updates the cache schema
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}

// Close closes the underlying connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
