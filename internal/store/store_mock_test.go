package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a gorm connection backed by sqlmock, for injecting
// database failures that a real sqlite database cannot produce.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestListHostelsStorageError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB, 5000)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hostels"`)).
		WillReturnError(errors.New("connection reset"))

	_, err := s.ListHostels(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteHostelRollsBackOnFailure(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB, 5000)

	hostelID := "7f9c24e8-3b12-4d71-90ab-1c2d3e4f5a6b"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hostels"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(hostelID, "Doomed House", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "dues"`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := s.DeleteHostel(context.Background(), hostelID)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
