package auditlog

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, record *AuditLog) error
	GetByFilter(ctx context.Context, filter AuditLogFilter) ([]AuditLogResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*AuditLogResponse, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Records are read joined with users so the actor's username travels along.
const recordColumns = "al.id, al.user_id, al.target_id, al.action, al.details, " +
	"al.ip_address, al.status, al.created_at, u.username AS user_name"

func (r *repository) records(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("audit_logs al").
		Joins("LEFT JOIN users u ON u.id = al.user_id")
}

func (r *repository) Create(ctx context.Context, record *AuditLog) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByFilter returns one page, newest first, and the total match count.
// The service normalises Page and Limit before calling.
func (r *repository) GetByFilter(ctx context.Context, f AuditLogFilter) ([]AuditLogResponse, int64, error) {
	q := applyFilter(r.records(ctx), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []AuditLogResponse
	err := q.Select(recordColumns).
		Order("al.created_at DESC, al.id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Scan(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetByID returns nil, nil when no record has the id.
func (r *repository) GetByID(ctx context.Context, id uint) (*AuditLogResponse, error) {
	var out []AuditLogResponse
	err := r.records(ctx).
		Select(recordColumns).
		Where("al.id = ?", id).
		Limit(1).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func applyFilter(q *gorm.DB, f AuditLogFilter) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("al.user_id = ?", *f.UserID)
	}
	if f.TargetID != nil {
		q = q.Where("al.target_id = ?", *f.TargetID)
	}
	if f.Action != "" {
		q = q.Where("LOWER(al.action) LIKE ?", "%"+strings.ToLower(f.Action)+"%")
	}
	if f.Status != "" {
		q = q.Where("al.status = ?", f.Status)
	}
	if f.FromDate != nil {
		q = q.Where("al.created_at >= ?", f.FromDate.UTC())
	}
	if f.ToDate != nil {
		q = q.Where("al.created_at <= ?", f.ToDate.UTC())
	}
	return q
}
