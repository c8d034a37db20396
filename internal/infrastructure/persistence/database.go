package persistence

import (
	"fmt"

	"github.com/factura/backend/internal/domain/billing"
	"github.com/factura/backend/internal/domain/catalog"
	"github.com/factura/backend/internal/domain/partner"
	"github.com/factura/backend/internal/infrastructure/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the datastore connection. The store is a single SQLite file
// on the device running the simulator, standing in for a browser's local
// storage; all access goes through one connection to keep SQLite happy.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the local datastore with the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return newDatabase(cfg.DSN(), logger.Default.LogMode(logger.Silent))
}

// NewDatabaseWithLogger opens the local datastore with a custom GORM logger
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	return newDatabase(cfg.DSN(), gormLogger)
}

// NewInMemoryDatabase opens an ephemeral in-memory store, used in tests
func NewInMemoryDatabase() (*Database, error) {
	return newDatabase(":memory:", logger.Default.LogMode(logger.Silent))
}

func newDatabase(dsn string, gormLogger logger.Interface) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite allows a single writer; one connection avoids lock contention
	// and is plenty for a single-user tool
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping datastore: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates or updates the schema for every stored entity
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&catalog.Product{},
		&partner.Customer{},
		&billing.Invoice{},
		&billing.InvoiceItem{},
		&billing.IssuerProfile{},
		&invoiceCounterRow{},
	)
}

// Close closes the datastore connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the datastore connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}

// Transaction executes a function within a datastore transaction
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.DB.Transaction(fn)
}
