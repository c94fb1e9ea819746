package audit

import (
	"errors"
	"fmt"

	"github.com/bme-wacoisd/google-classroom/feature/audit/models"

	"gorm.io/gorm"
)

// ErrNoDatabase is returned for run-history operations when the service runs
// without a database connection.
var ErrNoDatabase = errors.New("run history requires a database connection")

// Store persists audit runs. A nil *gorm.DB is allowed: the audit still runs,
// it just keeps no history.
type Store struct {
	db *gorm.DB
}

// NewStore wraps the optional database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Available reports whether run history is backed by a database.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// EnsureSchema migrates the audit_runs table.
func (s *Store) EnsureSchema() error {
	if !s.Available() {
		return ErrNoDatabase
	}
	if err := s.db.AutoMigrate(&models.Run{}); err != nil {
		return fmt.Errorf("failed to migrate audit_runs: %w", err)
	}
	return nil
}

// Save inserts a finished run.
func (s *Store) Save(run *models.Run) error {
	if !s.Available() {
		return ErrNoDatabase
	}
	return s.db.Create(run).Error
}

// Latest returns the most recent run, or gorm.ErrRecordNotFound when the
// history is empty.
func (s *Store) Latest() (*models.Run, error) {
	if !s.Available() {
		return nil, ErrNoDatabase
	}
	var run models.Run
	if err := s.db.Order("created_at DESC").First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns up to limit runs, newest first.
func (s *Store) List(limit int) ([]models.Run, error) {
	if !s.Available() {
		return nil, ErrNoDatabase
	}
	var runs []models.Run
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// Get returns one run by ID, or gorm.ErrRecordNotFound.
func (s *Store) Get(id string) (*models.Run, error) {
	if !s.Available() {
		return nil, ErrNoDatabase
	}
	var run models.Run
	if err := s.db.Where("id = ?", id).First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// MarkArchived flags a run as uploaded to object storage.
func (s *Store) MarkArchived(id string) error {
	if !s.Available() {
		return ErrNoDatabase
	}
	return s.db.Model(&models.Run{}).Where("id = ?", id).Update("archived", true).Error
}
