package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies products. A fixed set of Indian-retail categories is
// seeded on first open; more can be added but none are ever auto-deleted.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
}

func (Category) TableName() string { return "categories" }

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
