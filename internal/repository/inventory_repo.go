package repository

import (
	"context"
	"time"

	"github.com/super-sam-code/VyaparTracker/internal/dto"
	"github.com/super-sam-code/VyaparTracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryRepository defines data access for the one-to-one stock rows.
// The ...Tx methods run inside a caller-owned transaction — the stock
// mutation algorithm reads and writes the record in the same tx that appends
// the audit transaction row.
type InventoryRepository interface {
	FindByProductIDTx(tx *gorm.DB, productID uuid.UUID) (*model.InventoryRecord, error)
	CreateTx(tx *gorm.DB, rec *model.InventoryRecord) error
	// UpdateQuantityTx writes the new quantity and refreshes last_updated.
	UpdateQuantityTx(tx *gorm.DB, productID uuid.UUID, quantity int) error
	DeleteByProductTx(tx *gorm.DB, productID uuid.UUID) error

	// LowStock returns products with quantity at or below their reorder level
	// (or at or below threshold when supplied), ordered by quantity ascending.
	LowStock(ctx context.Context, threshold *int) ([]dto.LowStockItem, error)
	// TopStock returns the highest-quantity products, capped at limit.
	TopStock(ctx context.Context, limit int) ([]dto.TopStockItem, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) FindByProductIDTx(tx *gorm.DB, productID uuid.UUID) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	if err := tx.Where("product_id = ?", productID).First(&rec).Error; err != nil {
		return nil, translateError(err)
	}
	return &rec, nil
}

func (r *inventoryRepo) CreateTx(tx *gorm.DB, rec *model.InventoryRecord) error {
	return translateError(tx.Create(rec).Error)
}

func (r *inventoryRepo) UpdateQuantityTx(tx *gorm.DB, productID uuid.UUID, quantity int) error {
	return translateError(tx.Model(&model.InventoryRecord{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"quantity":     quantity,
			"last_updated": time.Now(),
		}).Error)
}

func (r *inventoryRepo) DeleteByProductTx(tx *gorm.DB, productID uuid.UUID) error {
	return translateError(tx.Delete(&model.InventoryRecord{}, "product_id = ?", productID).Error)
}

func (r *inventoryRepo) LowStock(ctx context.Context, threshold *int) ([]dto.LowStockItem, error) {
	q := r.db.WithContext(ctx).
		Table("inventory").
		Select("inventory.product_id, products.name, inventory.quantity, inventory.reorder_level").
		Joins("JOIN products ON products.id = inventory.product_id").
		Order("inventory.quantity ASC")
	if threshold != nil {
		q = q.Where("inventory.quantity <= ?", *threshold)
	} else {
		q = q.Where("inventory.quantity <= inventory.reorder_level")
	}

	var rows []dto.LowStockItem
	err := q.Scan(&rows).Error
	return rows, translateError(err)
}

func (r *inventoryRepo) TopStock(ctx context.Context, limit int) ([]dto.TopStockItem, error) {
	var rows []dto.TopStockItem
	err := r.db.WithContext(ctx).
		Table("inventory").
		Select("products.name, inventory.quantity").
		Joins("JOIN products ON products.id = inventory.product_id").
		Order("inventory.quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, translateError(err)
}

func (r *inventoryRepo) DB() *gorm.DB { return r.db }
