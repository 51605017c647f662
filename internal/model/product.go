package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a sellable item. Every product owns exactly one InventoryRecord
// (provisioned atomically at creation) and any number of StockTransactions.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index;not null"`
	Description *string
	CategoryID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	SupplierID  *uuid.UUID `gorm:"type:uuid;index"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// GSTPercentage is the tax rate applied to this product (Indian GST).
	GSTPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:18.0"`
	// HSNCode is the Harmonized System Nomenclature tax classification code.
	HSNCode   *string
	CreatedAt time.Time

	Category  *Category        `gorm:"foreignKey:CategoryID"`
	Supplier  *Supplier        `gorm:"foreignKey:SupplierID"`
	Inventory *InventoryRecord `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
