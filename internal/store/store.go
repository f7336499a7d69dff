package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-manager-backend/internal/model"
)

// Room rows created lazily on first customer assignment get these defaults.
const (
	defaultRoomType     = "triple"
	defaultRoomCapacity = 3
)

// Store defines the interface for all database operations.
type Store interface {
	ListHostels(ctx context.Context) ([]model.Hostel, error)
	CreateHostel(ctx context.Context, name string) (model.Hostel, error)
	GetHostel(ctx context.Context, id string) (model.Hostel, error)
	DeleteHostel(ctx context.Context, id string) (string, error)

	FindOrCreateRoom(ctx context.Context, hostelID, roomNumber string) (model.Room, error)
	ListRoomsWithGuests(ctx context.Context, hostelID string) ([]RoomWithGuests, error)

	ListCustomers(ctx context.Context, hostelID, search string) ([]CustomerRow, error)
	CreateCustomer(ctx context.Context, hostelID string, p CustomerParams) (model.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, p CustomerParams) (model.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error

	ListDues(ctx context.Context, hostelID string) ([]DueRow, error)
	CreateDue(ctx context.Context, customerID string, amount float64, dueDate time.Time) (model.Due, error)
	UpsertDueForCustomer(ctx context.Context, customerID string, paid *bool, dueDate *time.Time) error
	UpdateDue(ctx context.Context, dueID string, paid *bool, dueDate *time.Time) (model.Due, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db               *gorm.DB
	defaultDueAmount float64
}

// NewGormStore creates a new GORM-backed store. defaultDueAmount is the
// amount assigned to dues created without an explicit amount.
func NewGormStore(db *gorm.DB, defaultDueAmount float64) Store {
	return &gormStore{db: db, defaultDueAmount: defaultDueAmount}
}

func (s *gormStore) ListHostels(ctx context.Context) ([]model.Hostel, error) {
	var hostels []model.Hostel
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&hostels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hostels: %w", err)
	}
	return hostels, nil
}

func (s *gormStore) CreateHostel(ctx context.Context, name string) (model.Hostel, error) {
	hostel := model.Hostel{Name: name}
	if err := s.db.WithContext(ctx).Create(&hostel).Error; err != nil {
		return model.Hostel{}, fmt.Errorf("failed to create hostel: %w", err)
	}
	return hostel, nil
}

func (s *gormStore) GetHostel(ctx context.Context, id string) (model.Hostel, error) {
	var hostel model.Hostel
	if err := s.db.WithContext(ctx).First(&hostel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Hostel{}, fmt.Errorf("hostel %s: %w", id, ErrNotFound)
		}
		return model.Hostel{}, fmt.Errorf("failed to fetch hostel: %w", err)
	}
	return hostel, nil
}

// DeleteHostel removes a hostel and everything it owns. The cascade runs
// explicitly inside one transaction so behavior does not depend on the
// database enforcing FK cascades. Returns the deleted hostel's name.
func (s *gormStore) DeleteHostel(ctx context.Context, id string) (string, error) {
	var hostel model.Hostel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&hostel, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("hostel %s: %w", id, ErrNotFound)
			}
			return err
		}

		customerIDs := tx.Model(&model.Customer{}).Select("id").Where("hostel_id = ?", id)
		if err := tx.Where("customer_id IN (?)", customerIDs).Delete(&model.Due{}).Error; err != nil {
			return fmt.Errorf("failed to delete dues for hostel %s: %w", id, err)
		}
		if err := tx.Where("hostel_id = ?", id).Delete(&model.Customer{}).Error; err != nil {
			return fmt.Errorf("failed to delete customers for hostel %s: %w", id, err)
		}
		if err := tx.Where("hostel_id = ?", id).Delete(&model.Room{}).Error; err != nil {
			return fmt.Errorf("failed to delete rooms for hostel %s: %w", id, err)
		}
		if err := tx.Delete(&model.Hostel{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete hostel %s: %w", id, err)
		}
		return nil
	})
	return hostel.Name, err
}

// FindOrCreateRoom resolves a room by (hostel, room number), creating it
// with default type and capacity when absent.
func (s *gormStore) FindOrCreateRoom(ctx context.Context, hostelID, roomNumber string) (model.Room, error) {
	return findOrCreateRoom(s.db.WithContext(ctx), hostelID, roomNumber)
}

// findOrCreateRoom is the transaction-scoped implementation. The insert is
// a single ON CONFLICT DO NOTHING keyed on (hostel_id, room_number), so two
// concurrent callers for the same pair cannot create duplicate rows; the
// read-back returns whichever row won.
func findOrCreateRoom(tx *gorm.DB, hostelID, roomNumber string) (model.Room, error) {
	room := model.Room{
		HostelID:    hostelID,
		RoomNumber:  roomNumber,
		Type:        defaultRoomType,
		MaxCapacity: defaultRoomCapacity,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hostel_id"}, {Name: "room_number"}},
		DoNothing: true,
	}).Create(&room).Error; err != nil {
		return model.Room{}, fmt.Errorf("failed to create room %q: %w", roomNumber, err)
	}

	// Re-read into a fresh struct: on conflict the generated id above is
	// not the surviving row's id.
	var saved model.Room
	if err := tx.Where("hostel_id = ? AND room_number = ?", hostelID, roomNumber).First(&saved).Error; err != nil {
		return model.Room{}, fmt.Errorf("failed to fetch room %q after upsert: %w", roomNumber, err)
	}
	return saved, nil
}

func (s *gormStore) ListRoomsWithGuests(ctx context.Context, hostelID string) ([]RoomWithGuests, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).
		Preload("Customers", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Where("hostel_id = ?", hostelID).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	out := make([]RoomWithGuests, 0, len(rooms))
	for _, r := range rooms {
		guests := make([]Guest, 0, len(r.Customers))
		for _, c := range r.Customers {
			guests = append(guests, Guest{
				Name:    c.Name,
				Phone:   c.Phone,
				CheckIn: c.CheckinDate.Format(DateLayout),
			})
		}
		out = append(out, RoomWithGuests{RoomNo: r.RoomNumber, Guests: guests})
	}
	return out, nil
}
