package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository reads and writes event rows. Bind it to a transaction with WithTx.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{DB: tx}
}

// ===========================
// 🎯 Create Event
func (r *Repository) Create(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

// ===========================
// 🔒 Lock Event
// LockByID reads the event row and holds a write lock on it until the
// surrounding transaction ends. Returns nil, nil when the event is missing.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 🔍 Get Event
// FindByID returns nil, nil when the event is missing.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID, includeSetlist bool) (*Event, error) {
	var e Event
	query := r.DB.WithContext(ctx).Preload("CreatedBy")
	if includeSetlist {
		query = query.Preload("SetlistEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_in_setlist ASC")
		}).Preload("SetlistEntries.Song")
	}
	err := query.First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ===========================
// 📋 List Events
func (r *Repository) List(ctx context.Context, f ListFilter) ([]Event, int64, error) {
	var (
		events []Event
		total  int64
	)

	query := r.DB.WithContext(ctx).Model(&Event{})
	if v := strings.TrimSpace(f.Title); v != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(f.Venue); v != "" {
		query = query.Where("LOWER(venue_name) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if f.IsPublic != nil {
		query = query.Where("is_public = ?", *f.IsPublic)
	}
	if f.DateFrom != nil {
		query = query.Where("event_date >= ?", f.DateFrom.UTC())
	}
	if f.DateTo != nil {
		query = query.Where("event_date <= ?", f.DateTo.UTC())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("CreatedBy")
	if f.IncludeSetlist {
		query = query.Preload("SetlistEntries").Preload("SetlistEntries.Song")
	}

	err := query.Order("event_date DESC").Order("title ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&events).Error
	return events, total, err
}

// ListPublicBetween returns public events dated in [from, to), earliest first.
func (r *Repository) ListPublicBetween(ctx context.Context, from, to time.Time) ([]Event, error) {
	var events []Event
	err := r.DB.WithContext(ctx).
		Where("is_public = ? AND event_date >= ? AND event_date < ?", true, from.UTC(), to.UTC()).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}

// ===========================
// 🛠️ Update Event
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Updates(updates).Error
}

// ===========================
// 🗑️ Delete Event
// Delete removes the event row in one statement; the foreign key cascade
// removes its setlist entries as part of it.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&Event{})
	return res.RowsAffected > 0, res.Error
}
