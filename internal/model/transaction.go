package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types. Every accepted stock change records exactly one of these.
const (
	TransactionPurchase   = "purchase"
	TransactionSale       = "sale"
	TransactionAdjustment = "adjustment"
)

// StockTransaction is the append-only audit row behind every stock change.
// Rows are never updated; they are removed only when their product is deleted.
// Per product, the signed quantities always sum to the current inventory
// quantity.
type StockTransaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"not null"` // "purchase" | "sale" | "adjustment"
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Quantity is the signed delta: positive = stock in, negative = stock out.
	Quantity        int       `gorm:"not null"`
	TransactionDate time.Time `gorm:"not null"`
	Notes           string

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (StockTransaction) TableName() string { return "transactions" }

func (t *StockTransaction) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
