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

// dueJoinRow is the scan target for the dues listing query.
type dueJoinRow struct {
	ID         string
	Name       string
	RoomNumber *string
	Amount     float64
	DueDate    time.Time
	Paid       bool
}

// ListDues returns every due whose customer belongs to the hostel, ordered
// by due date then customer name. Customers without a room get the
// "No Room" placeholder.
func (s *gormStore) ListDues(ctx context.Context, hostelID string) ([]DueRow, error) {
	var rows []dueJoinRow
	if err := s.db.WithContext(ctx).
		Model(&model.Due{}).
		Select(`dues.id, customers.name, rooms.room_number AS room_number,
			dues.amount, dues.due_date, dues.paid`).
		Joins("JOIN customers ON customers.id = dues.customer_id").
		Joins("LEFT JOIN rooms ON rooms.id = customers.room_id").
		Where("customers.hostel_id = ?", hostelID).
		Order("dues.due_date ASC, customers.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list dues: %w", err)
	}

	out := make([]DueRow, 0, len(rows))
	for _, r := range rows {
		room := "No Room"
		if r.RoomNumber != nil {
			room = *r.RoomNumber
		}
		out = append(out, DueRow{
			ID:      r.ID,
			Name:    r.Name,
			Room:    room,
			Amount:  r.Amount,
			DueDate: r.DueDate.Format(DateLayout),
			Paid:    r.Paid,
		})
	}
	return out, nil
}

// CreateDue records a due for a customer. An amount of zero or less takes
// the configured default. If the customer already has a due, its amount
// and date are overwritten rather than creating a second row.
func (s *gormStore) CreateDue(ctx context.Context, customerID string, amount float64, dueDate time.Time) (model.Due, error) {
	if amount <= 0 {
		amount = s.defaultDueAmount
	}
	due := model.Due{CustomerID: customerID, Amount: amount, DueDate: dueDate}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Customer{}, "id = ?", customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
			}
			return err
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "due_date"}),
		}).Create(&due).Error; err != nil {
			return fmt.Errorf("failed to create due: %w", err)
		}
		// On conflict the inserted id loses to the existing row's.
		var saved model.Due
		if err := tx.Where("customer_id = ?", customerID).First(&saved).Error; err != nil {
			return err
		}
		due = saved
		return nil
	})
	if err != nil {
		return model.Due{}, err
	}
	return due, nil
}

// UpsertDueForCustomer updates the customer's due, creating it when a due
// date is supplied and no due exists yet. At least one of paid/dueDate is
// required. A paid-only call on a customer without a due fails with
// ErrNotFound: a due cannot be created without a date.
func (s *gormStore) UpsertDueForCustomer(ctx context.Context, customerID string, paid *bool, dueDate *time.Time) error {
	if paid == nil && dueDate == nil {
		return ErrNoFields
	}

	if dueDate == nil {
		res := s.db.WithContext(ctx).
			Model(&model.Due{}).
			Where("customer_id = ?", customerID).
			Update("paid", *paid)
		if res.Error != nil {
			return fmt.Errorf("failed to update due for customer %s: %w", customerID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("due for customer %s: %w", customerID, ErrNotFound)
		}
		return nil
	}

	return s.upsertDue(s.db.WithContext(ctx), customerID, paid, *dueDate)
}

// upsertDue is a single atomic insert-or-update keyed on customer_id, so
// concurrent upserts for the same customer resolve in the database rather
// than racing across two round trips.
func (s *gormStore) upsertDue(tx *gorm.DB, customerID string, paid *bool, dueDate time.Time) error {
	due := model.Due{
		CustomerID: customerID,
		Amount:     s.defaultDueAmount,
		DueDate:    dueDate,
	}
	assignments := []string{"due_date"}
	if paid != nil {
		due.Paid = *paid
		assignments = append(assignments, "paid")
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns(assignments),
	}).Create(&due).Error; err != nil {
		return fmt.Errorf("failed to upsert due for customer %s: %w", customerID, err)
	}
	return nil
}

// UpdateDue updates the supplied fields of a specific due record and
// returns the updated row.
func (s *gormStore) UpdateDue(ctx context.Context, dueID string, paid *bool, dueDate *time.Time) (model.Due, error) {
	if paid == nil && dueDate == nil {
		return model.Due{}, ErrNoFields
	}

	var due model.Due
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&due, "id = ?", dueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("due %s: %w", dueID, ErrNotFound)
			}
			return err
		}

		updates := map[string]any{}
		if paid != nil {
			updates["paid"] = *paid
			due.Paid = *paid
		}
		if dueDate != nil {
			updates["due_date"] = *dueDate
			due.DueDate = *dueDate
		}
		if err := tx.Model(&model.Due{}).Where("id = ?", dueID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update due %s: %w", dueID, err)
		}
		return nil
	})
	if err != nil {
		return model.Due{}, err
	}
	return due, nil
}
