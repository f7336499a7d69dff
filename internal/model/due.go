package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Due is a single payment obligation tied to a customer. The unique index
// on CustomerID enforces at most one due per customer, which is what makes
// the upsert-by-customer path well defined.
type Due struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	CustomerID string    `gorm:"type:uuid;not null;uniqueIndex"`
	Amount     float64   `gorm:"type:decimal(10,2);not null"`
	DueDate    time.Time `gorm:"not null"`
	Paid       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`

	// Associations
	Customer Customer `gorm:"constraint:OnDelete:CASCADE"`
}

func (d *Due) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
