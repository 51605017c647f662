package infra

import (
	"strings"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"
	"github.com/super-sam-code/VyaparTracker/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store owns the single connection to the embedded database file. All data
// access goes through repositories built on Store.DB(); the presentation layer
// never touches the connection directly.
type Store struct {
	db     *gorm.DB
	closed bool
}

// Open establishes the SQLite connection, creates the five tables if absent,
// and seeds the default categories idempotently. Any failure here is
// ErrStorageUnavailable — the caller should abort startup.
func Open(path string) (*Store, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		// mattn/go-sqlite3 connection parameter; FKs are off by default
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, apperror.Newf(apperror.ErrStorageUnavailable, "open %s: %v", path, err)
	}

	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.InventoryRecord{},
		&model.StockTransaction{},
	); err != nil {
		return nil, apperror.Newf(apperror.ErrStorageUnavailable, "migrate schema: %v", err)
	}

	if err := seedDefaultCategories(db); err != nil {
		return nil, apperror.Newf(apperror.ErrStorageUnavailable, "seed categories: %v", err)
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying *gorm.DB for repositories.
func (s *Store) DB() *gorm.DB { return s.db }

// Close releases the connection. Safe to call multiple times; calls after the
// first are no-ops.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return apperror.New(apperror.ErrStorage, err.Error())
	}
	if err := sqlDB.Close(); err != nil {
		return apperror.New(apperror.ErrStorage, err.Error())
	}
	s.closed = true
	return nil
}

// Closed reports whether Close has completed. Backup and restore require a
// closed store.
func (s *Store) Closed() bool { return s.closed }

func strPtr(s string) *string { return &s }

// defaultCategories is the fixed Indian-retail seed set. Keyed on the unique
// name so re-opening an existing database changes nothing.
var defaultCategories = []model.Category{
	{Name: "Groceries & Staples", Description: strPtr("Rice, Dal, Flour, etc.")},
	{Name: "Electronics", Description: strPtr("Mobile phones, Laptops, Appliances")},
	{Name: "Clothing", Description: strPtr("Men's, Women's and Children's apparel")},
	{Name: "Home & Kitchen", Description: strPtr("Utensils, Cookware")},
	{Name: "Beauty & Personal Care", Description: strPtr("Cosmetics, Toiletries")},
	{Name: "Stationery", Description: strPtr("Books, Office supplies")},
	{Name: "Snacks & Beverages", Description: strPtr("Biscuits, Soft drinks")},
	{Name: "Dairy Products", Description: strPtr("Milk, Curd, Paneer")},
}

func seedDefaultCategories(db *gorm.DB) error {
	cats := make([]model.Category, len(defaultCategories))
	copy(cats, defaultCategories)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&cats).Error
}
