package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"item-matcher/core/reconcile"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerSlot is one named payload in the ledger_slots table.
type LedgerSlot struct {
	Name      string         `gorm:"primaryKey;size:191"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the table name used by LedgerSlot.
func (LedgerSlot) TableName() string {
	return "ledger_slots"
}

// DBSlot stores the payload as a row of the ledger_slots table.
type DBSlot struct {
	db   *gorm.DB
	name string
}

// NewDBSlot creates a slot for the row name, creating the table if needed.
func NewDBSlot(db *gorm.DB, name string) (*DBSlot, error) {
	if err := db.AutoMigrate(&LedgerSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate ledger_slots: %w", err)
	}
	return &DBSlot{db: db, name: name}, nil
}

// Read implements reconcile.Slot.
func (s *DBSlot) Read(ctx context.Context) ([]byte, error) {
	var row LedgerSlot
	err := s.db.WithContext(ctx).Where("name = ?", s.name).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reconcile.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", s.name, err)
	}
	return []byte(row.Payload), nil
}

// Write implements reconcile.Slot with an upsert on the slot name.
func (s *DBSlot) Write(ctx context.Context, data []byte) error {
	row := LedgerSlot{Name: s.name, Payload: datatypes.JSON(data), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.name, err)
	}
	return nil
}

// Clear implements reconcile.Slot.
func (s *DBSlot) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("name = ?", s.name).Delete(&LedgerSlot{}).Error; err != nil {
		return fmt.Errorf("failed to clear slot %s: %w", s.name, err)
	}
	return nil
}
