package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hostel is the root entity; deleting one removes its rooms, customers and
// dues.
type Hostel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:256;not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	Rooms     []Room     `gorm:"foreignKey:HostelID"`
	Customers []Customer `gorm:"foreignKey:HostelID"`
}

func (h *Hostel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
