package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room is a physical unit within a hostel. Rooms are created lazily the
// first time a customer references a room number; the composite unique
// index makes that find-or-create safe under concurrent requests.
type Room struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	HostelID    string `gorm:"type:uuid;not null;uniqueIndex:idx_rooms_hostel_number"`
	RoomNumber  string `gorm:"size:64;not null;uniqueIndex:idx_rooms_hostel_number"`
	Type        string `gorm:"size:32;not null"`
	MaxCapacity int    `gorm:"not null"`
	CreatedAt   time.Time

	// Associations
	Hostel    Hostel     `gorm:"constraint:OnDelete:CASCADE"`
	Customers []Customer `gorm:"foreignKey:RoomID"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
