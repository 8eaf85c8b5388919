package member

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

func (r *Repository) Create(ctx context.Context, m *Member) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	var m Member
	err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) List(ctx context.Context, f ListFilter) ([]Member, int64, error) {
	var (
		members []Member
		total   int64
	)

	query := r.DB.WithContext(ctx).Model(&Member{})
	if v := strings.TrimSpace(f.Name); v != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(f.RoleInBand); v != "" {
		query = query.Where("LOWER(role_in_band) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(f.Instrument); v != "" {
		query = query.Where("LOWER(instrument) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if f.Active != nil {
		query = query.Where("is_active_member = ?", *f.Active)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&members).Error
	return members, total, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&Member{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&Member{})
	return res.RowsAffected > 0, res.Error
}
