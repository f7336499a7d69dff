package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hostel-manager-backend/internal/model"
)

// customerJoinRow is the scan target for the customer listing query.
type customerJoinRow struct {
	ID          string
	Name        string
	Phone       string
	FatherPhone string
	College     string
	Course      string
	CheckinDate time.Time
	RoomNumber  *string
	DueDate     *time.Time
}

// ListCustomers returns the customers of a hostel with their joined room
// number and due date. A non-empty search filters case-insensitively on
// name or phone substring; an empty search returns everything.
func (s *gormStore) ListCustomers(ctx context.Context, hostelID, search string) ([]CustomerRow, error) {
	q := s.db.WithContext(ctx).
		Model(&model.Customer{}).
		Select(`customers.id, customers.name, customers.phone, customers.father_phone,
			customers.college, customers.course, customers.checkin_date,
			rooms.room_number AS room_number, dues.due_date AS due_date`).
		Joins("LEFT JOIN rooms ON rooms.id = customers.room_id").
		Joins("LEFT JOIN dues ON dues.customer_id = customers.id").
		Where("customers.hostel_id = ?", hostelID)

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		like := "%" + term + "%"
		q = q.Where("LOWER(customers.name) LIKE ? OR LOWER(customers.phone) LIKE ?", like, like)
	}

	var rows []customerJoinRow
	if err := q.Order("customers.name ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	out := make([]CustomerRow, 0, len(rows))
	for _, r := range rows {
		row := CustomerRow{
			ID:          r.ID,
			Name:        r.Name,
			Phone:       r.Phone,
			FatherPhone: r.FatherPhone,
			College:     r.College,
			Course:      r.Course,
			CheckinDate: r.CheckinDate.Format(DateLayout),
			Room:        r.RoomNumber,
		}
		if r.DueDate != nil {
			due := r.DueDate.Format(DateLayout)
			row.DueDate = &due
		}
		out = append(out, row)
	}
	return out, nil
}

// CreateCustomer enrolls a customer at a hostel in a single transaction:
// the room is resolved or created first, then the customer, then the
// initial due when a due date was supplied. A failure at any step leaves
// nothing behind.
func (s *gormStore) CreateCustomer(ctx context.Context, hostelID string, p CustomerParams) (model.Customer, error) {
	customer := model.Customer{
		HostelID:     hostelID,
		Name:         p.Name,
		Phone:        p.Phone,
		FatherPhone:  p.FatherPhone,
		College:      p.College,
		Course:       p.Course,
		CheckinDate:  p.CheckinDate,
		CheckoutDate: p.CheckoutDate,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Hostel{}, "id = ?", hostelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("hostel %s: %w", hostelID, ErrNotFound)
			}
			return err
		}

		if p.RoomNumber != "" {
			room, err := findOrCreateRoom(tx, hostelID, p.RoomNumber)
			if err != nil {
				return err
			}
			customer.RoomID = &room.ID
		}

		if err := tx.Create(&customer).Error; err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		if p.DueDate != nil {
			due := model.Due{
				CustomerID: customer.ID,
				Amount:     s.defaultDueAmount,
				DueDate:    *p.DueDate,
			}
			if err := tx.Create(&due).Error; err != nil {
				return fmt.Errorf("failed to create initial due: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// UpdateCustomer rewrites a customer's profile. A supplied room number
// reassigns the room (creating it when absent); a supplied due date
// upserts the customer's due. Everything happens in one transaction.
func (s *gormStore) UpdateCustomer(ctx context.Context, customerID string, p CustomerParams) (model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, "id = ?", customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
			}
			return err
		}

		customer.Name = p.Name
		customer.Phone = p.Phone
		customer.FatherPhone = p.FatherPhone
		customer.College = p.College
		customer.Course = p.Course
		customer.CheckinDate = p.CheckinDate

		if p.RoomNumber != "" {
			room, err := findOrCreateRoom(tx, customer.HostelID, p.RoomNumber)
			if err != nil {
				return err
			}
			customer.RoomID = &room.ID
		}

		if err := tx.Save(&customer).Error; err != nil {
			return fmt.Errorf("failed to update customer %s: %w", customerID, err)
		}

		if p.DueDate != nil {
			if err := s.upsertDue(tx, customerID, nil, *p.DueDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer and its due record.
func (s *gormStore) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer model.Customer
		if err := tx.First(&customer, "id = ?", customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
			}
			return err
		}
		if err := tx.Where("customer_id = ?", customerID).Delete(&model.Due{}).Error; err != nil {
			return fmt.Errorf("failed to delete due for customer %s: %w", customerID, err)
		}
		if err := tx.Delete(&model.Customer{}, "id = ?", customerID).Error; err != nil {
			return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
		}
		return nil
	})
}
