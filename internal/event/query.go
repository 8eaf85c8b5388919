package event

import (
	"context"
	"math"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// QueryService assembles events for reading.
type QueryService struct {
	Repo *Repository
}

func NewQueryService(db *gorm.DB) *QueryService {
	return &QueryService{Repo: NewRepository(db)}
}

// GetByID loads one event; with includeSetlist the entries come sorted by position.
func (q *QueryService) GetByID(ctx context.Context, id uuid.UUID, includeSetlist bool) (*Event, error) {
	e, err := q.Repo.FindByID(ctx, id, includeSetlist)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "load event")
	}
	if e == nil {
		return nil, errEventNotFound
	}
	if includeSetlist {
		sortEntries(e.SetlistEntries)
	} else {
		e.SetlistEntries = nil
	}
	return e, nil
}

// List returns one page of events, newest first and then by title.
func (q *QueryService) List(ctx context.Context, f ListFilter) (*PaginatedEvents, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateTo.Before(*f.DateFrom) {
		return nil, apperror.InvalidInput("date_to is before date_from")
	}

	events, total, err := q.Repo.List(ctx, f)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "list events")
	}
	for i := range events {
		sortEntries(events[i].SetlistEntries)
	}

	return &PaginatedEvents{
		Data:       events,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}, nil
}
