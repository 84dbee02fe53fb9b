package objects

import (
	"context"
	"fmt"

	"ucs/feature/objects/models"

	"gorm.io/gorm"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// Ledger persists object activity.
type Ledger struct {
	db *gorm.DB
}

// NewLedger creates a ledger on db.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Migrate creates or updates the activity table.
func (l *Ledger) Migrate() error {
	if err := l.db.AutoMigrate(&models.Activity{}); err != nil {
		return fmt.Errorf("failed to migrate activity table: %w", err)
	}
	return nil
}

// Record stores a single activity entry.
func (l *Ledger) Record(ctx context.Context, entry *models.Activity) error {
	if err := l.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// Recent returns the newest entries first, at most limit of them.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	limit = clampLimit(limit)

	var entries []models.Activity
	err := l.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultActivityLimit
	case limit > maxActivityLimit:
		return maxActivityLimit
	default:
		return limit
	}
}
