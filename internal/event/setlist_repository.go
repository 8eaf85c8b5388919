package event

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 100

// SetlistRepository reads and writes setlist_entries rows.
type SetlistRepository struct {
	DB *gorm.DB
}

func NewSetlistRepository(db *gorm.DB) *SetlistRepository {
	return &SetlistRepository{DB: db}
}

func (r *SetlistRepository) WithTx(tx *gorm.DB) *SetlistRepository {
	return &SetlistRepository{DB: tx}
}

// ForEvent returns the entries of one event with their songs, lowest order first.
func (r *SetlistRepository) ForEvent(ctx context.Context, eventID uuid.UUID) ([]SetlistEntry, error) {
	var entries []SetlistEntry
	err := r.DB.WithContext(ctx).
		Preload("Song").
		Where("event_id = ?", eventID).
		Order("order_in_setlist ASC").
		Find(&entries).Error
	return entries, err
}

// FindBySong returns nil, nil when the song is not in the event's setlist.
func (r *SetlistRepository) FindBySong(ctx context.Context, eventID, songID uuid.UUID) (*SetlistEntry, error) {
	var entry SetlistEntry
	err := r.DB.WithContext(ctx).
		Preload("Song").
		Where("event_id = ? AND song_id = ?", eventID, songID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *SetlistRepository) Insert(ctx context.Context, entry *SetlistEntry) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
}

// InsertAll writes a whole setlist as bulk inserts.
func (r *SetlistRepository) InsertAll(ctx context.Context, entries []SetlistEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Omit(clause.Associations).CreateInBatches(&entries, insertBatchSize).Error
}

func (r *SetlistRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&SetlistEntry{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SetlistRepository) DeleteBySong(ctx context.Context, eventID, songID uuid.UUID) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("event_id = ? AND song_id = ?", eventID, songID).
		Delete(&SetlistEntry{})
	return res.RowsAffected > 0, res.Error
}

// DeleteForEvent clears an event's setlist.
func (r *SetlistRepository) DeleteForEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).Where("event_id = ?", eventID).Delete(&SetlistEntry{})
	return res.RowsAffected, res.Error
}

func (r *SetlistRepository) CountForEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&SetlistEntry{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
