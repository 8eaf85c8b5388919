package member

import (
	"context"
	"math"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/google/uuid"
)

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) CreateMember(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	active := true
	if req.IsActiveMember != nil {
		active = *req.IsActiveMember
	}

	m := &Member{
		Name:           req.Name,
		RoleInBand:     req.RoleInBand,
		Bio:            req.Bio,
		PhotoURL:       req.PhotoURL,
		Instrument:     req.Instrument,
		IsActiveMember: active,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, apperror.TransactionFailure(err, "create member")
	}
	return m, nil
}

func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (*Member, error) {
	m, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "find member")
	}
	if m == nil {
		return nil, apperror.NotFound("member not found")
	}
	return m, nil
}

func (s *Service) ListMembers(ctx context.Context, f ListFilter) (*PaginatedMembers, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	members, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "list members")
	}
	return &PaginatedMembers{
		Data:       members,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}, nil
}

func (s *Service) UpdateMember(ctx context.Context, id uuid.UUID, req UpdateMemberRequest) (*Member, error) {
	if _, err := s.GetMember(ctx, id); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, id, req.changes()); err != nil {
		return nil, apperror.TransactionFailure(err, "update member")
	}
	return s.GetMember(ctx, id)
}

func (s *Service) DeleteMember(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperror.TransactionFailure(err, "delete member")
	}
	if !deleted {
		return apperror.NotFound("member not found")
	}
	return nil
}
