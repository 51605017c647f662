package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryRecord is the one-to-one stock row for a product. Quantity must
// never go below zero; the bound is enforced at the mutation boundary
// (StockService.Adjust), not as a storage constraint.
type InventoryRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Quantity  int       `gorm:"not null;default:0"`
	// ReorderLevel is the threshold at or below which the product is flagged
	// as low stock.
	ReorderLevel int       `gorm:"not null;default:10"`
	LastUpdated  time.Time `gorm:"not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

// DefaultReorderLevel applies when an inventory record is created without an
// explicit threshold.
const DefaultReorderLevel = 10

func (InventoryRecord) TableName() string { return "inventory" }

func (r *InventoryRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
