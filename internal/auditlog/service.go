package auditlog

import (
	"context"
	"encoding/json"
	"math"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Service interface {
	LogAction(ctx context.Context, actor Actor, targetID *uuid.UUID, action string, details map[string]interface{}, status string) error
	GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error)
	GetAuditLogByID(ctx context.Context, id uint) (*AuditLogResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction records one action. Details that cannot be encoded are stored as {}.
func (s *service) LogAction(ctx context.Context, actor Actor, targetID *uuid.UUID, action string, details map[string]interface{}, status string) error {
	encoded := []byte("{}")
	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			encoded = b
		}
	}

	return s.repo.Create(ctx, &AuditLog{
		UserID:    actor.UserID,
		TargetID:  targetID,
		Action:    action,
		Details:   datatypes.JSON(encoded),
		IPAddress: actor.IP,
		Status:    status,
	})
}

func (s *service) GetAuditLogs(ctx context.Context, filter AuditLogFilter) (*PaginatedAuditLogs, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "list audit logs")
	}
	if records == nil {
		records = []AuditLogResponse{}
	}

	return &PaginatedAuditLogs{
		Data:       records,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *service) GetAuditLogByID(ctx context.Context, id uint) (*AuditLogResponse, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "find audit log")
	}
	if record == nil {
		return nil, apperror.NotFound("audit log %d not found", id)
	}
	return record, nil
}
