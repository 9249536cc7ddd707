// Package sqlite persists the employee collection as a single key-value slot
// in a local SQLite file, mirroring the one-slot layout of the original
// durable medium.
package sqlite

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frahmantamala/employee-records/internal/employee"
)

// SlotKey is the key under which the serialized collection lives.
const SlotKey = "employees"

type slot struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (slot) TableName() string {
	return "kv_store"
}

// Storage implements employee.Storage on top of GORM.
type Storage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// Migrate creates the slot table. The migrate subcommand does the same via
// goose; this is for tests and embedded use.
func (s *Storage) Migrate() error {
	return s.db.AutoMigrate(&slot{})
}

// Load reads the whole collection. found is false only when the slot has
// never been written.
func (s *Storage) Load() ([]employee.Employee, bool, error) {
	var row slot
	err := s.db.Where("key = ?", SlotKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var records []employee.Employee
	if err := json.Unmarshal([]byte(row.Value), &records); err != nil {
		return nil, false, fmt.Errorf("decode employees slot: %w", err)
	}
	return records, true, nil
}

// Save writes the whole collection, replacing whatever the slot held.
func (s *Storage) Save(records []employee.Employee) error {
	if records == nil {
		records = []employee.Employee{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode employees slot: %w", err)
	}

	row := slot{
		Key:       SlotKey,
		Value:     string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// Clear drops the slot entirely so the next Initialize re-seeds.
func (s *Storage) Clear() error {
	return s.db.Where("key = ?", SlotKey).Delete(&slot{}).Error
}
