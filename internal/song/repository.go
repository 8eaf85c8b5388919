package song

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithTx binds the repository to an open transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{DB: tx}
}

func (r *Repository) Create(ctx context.Context, s *Song) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

// FindByID returns nil, nil when the song does not exist.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*Song, error) {
	var s Song
	err := r.DB.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByIDs loads every song in ids, keyed by id.
func (r *Repository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Song, error) {
	found := make(map[uuid.UUID]Song, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	var songs []Song
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&songs).Error; err != nil {
		return nil, err
	}
	for _, s := range songs {
		found[s.ID] = s
	}
	return found, nil
}

func (r *Repository) List(ctx context.Context, f ListFilter) ([]Song, int64, error) {
	var (
		songs []Song
		total int64
	)

	query := r.DB.WithContext(ctx).Model(&Song{})
	query = whereContains(query, "title", f.Title)
	query = whereContains(query, "original_artist", f.Artist)
	query = whereContains(query, "genre", f.Genre)
	query = whereContains(query, "song_key", f.Key)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("title ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&songs).Error
	return songs, total, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&Song{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the song; setlist entries pointing at it go with it.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&Song{})
	return res.RowsAffected > 0, res.Error
}

// whereContains adds a case-insensitive substring match when value is set.
func whereContains(q *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	return q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}
