package notification

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// Publisher delivers committed changes to one downstream channel.
type Publisher interface {
	Publish(ctx context.Context, change SetlistChange) error
}

// Service fans a change out to every configured publisher.
type Service interface {
	Notify(ctx context.Context, change SetlistChange)
}

type service struct {
	publishers []Publisher
}

func NewService(publishers ...Publisher) Service {
	return &service{publishers: publishers}
}

// Notify never fails the caller; delivery errors are logged.
func (s *service) Notify(ctx context.Context, change SetlistChange) {
	var errs []error
	for _, p := range s.publishers {
		if err := p.Publish(ctx, change); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Warn("notification delivery failed", "type", change.Type, "event_id", change.EventID, "err", err)
	}
}

// NopService discards every change.
type NopService struct{}

func (NopService) Notify(context.Context, SetlistChange) {}
