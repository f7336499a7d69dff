package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a resident enrolled at a hostel, optionally assigned to a
// room. RoomID stays nil until a room number is supplied.
type Customer struct {
	ID           string     `gorm:"type:uuid;primaryKey"`
	HostelID     string     `gorm:"type:uuid;not null;index"`
	RoomID       *string    `gorm:"type:uuid;index"`
	Name         string     `gorm:"size:256;not null"`
	Phone        string     `gorm:"size:32"`
	FatherPhone  string     `gorm:"size:32"`
	College      string     `gorm:"size:256"`
	Course       string     `gorm:"size:128"`
	CheckinDate  time.Time  `gorm:"not null"`
	CheckoutDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Associations
	Hostel Hostel `gorm:"constraint:OnDelete:CASCADE"`
	Room   *Room  `gorm:"constraint:OnDelete:SET NULL"`
	Due    *Due   `gorm:"foreignKey:CustomerID"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
