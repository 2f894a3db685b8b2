package history

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"asset-sorter/core/reconcile"

	"gorm.io/gorm"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
	maxErrorLen  = 1024
)

// Repository stores reorder events. A repository without a database is a no-op.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a repository. db may be nil.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Enabled reports whether a database is attached.
func (r *Repository) Enabled() bool {
	return r != nil && r.db != nil
}

// DB returns the attached database, or nil.
func (r *Repository) DB() *gorm.DB {
	if r == nil {
		return nil
	}
	return r.db
}

// Migrate creates or updates the history table.
func (r *Repository) Migrate(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&Event{}); err != nil {
		return fmt.Errorf("failed to migrate history table: %w", err)
	}
	return nil
}

// Record stores one event per change in report.
func (r *Repository) Record(ctx context.Context, report *reconcile.Report, rayID string) error {
	if !r.Enabled() || report == nil || len(report.Changes) == 0 {
		return nil
	}

	failed := make(map[string]error, len(report.Failures))
	for _, f := range report.Failures {
		failed[f.ItemID] = f.Err
	}

	now := r.now()
	events := make([]Event, 0, len(report.Changes))
	for _, c := range report.Changes {
		ev := Event{
			Folder:       report.Folder,
			ItemID:       c.ItemID,
			FromPosition: c.From,
			ToPosition:   c.To,
			Status:       StatusOK,
			RayID:        rayID,
			CreatedAt:    now,
		}
		if err, ok := failed[c.ItemID]; ok {
			ev.Status = StatusFailed
			ev.Error = truncate(err.Error(), maxErrorLen)
		}
		events = append(events, ev)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(events, 100).Error; err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// List returns the newest events, optionally filtered by folder.
func (r *Repository) List(ctx context.Context, folder string, limit int) ([]Event, error) {
	if !r.Enabled() {
		return []Event{}, nil
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit)
	if folder != "" {
		q = q.Where("folder = ?", folder)
	}

	var events []Event
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return events, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
