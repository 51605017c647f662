package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier holds a vendor's commercial and tax data. Products reference
// suppliers optionally; deleting a supplier detaches its products rather than
// cascading to them.
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"index;not null"`
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	// GSTIN is the supplier's GST registration number, unique when present.
	GSTIN *string `gorm:"column:gstin;uniqueIndex"`

	Products []Product `gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string { return "suppliers" }

func (s *Supplier) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
