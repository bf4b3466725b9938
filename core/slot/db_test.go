package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDBSlot_ReadError(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &DBSlot{db: db, name: "matcher-progress"}

	mock.ExpectQuery("SELECT \\* FROM `ledger_slots`").WillReturnError(errors.New("connection reset"))

	_, err := s.Read(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSlot_ReadRow(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &DBSlot{db: db, name: "matcher-progress"}

	rows := sqlmock.NewRows([]string{"name", "payload", "updated_at"}).
		AddRow("matcher-progress", []byte(`{"1": 9}`), time.Now())
	mock.ExpectQuery("SELECT \\* FROM `ledger_slots`").WillReturnRows(rows)

	data, err := s.Read(context.Background())
	assert.NoError(t, err)
	assert.JSONEq(t, `{"1": 9}`, string(data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSlot_WriteUpsert(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &DBSlot{db: db, name: "matcher-progress"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `ledger_slots`.*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assert.NoError(t, s.Write(context.Background(), []byte(`{}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSlot_WriteError(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &DBSlot{db: db, name: "matcher-progress"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `ledger_slots`").WillReturnError(errors.New("read-only"))
	mock.ExpectRollback()

	err := s.Write(context.Background(), []byte(`{}`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSlot_ClearError(t *testing.T) {
	db, mock := setupMockDB(t)
	s := &DBSlot{db: db, name: "matcher-progress"}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `ledger_slots`").WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	assert.Error(t, s.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
