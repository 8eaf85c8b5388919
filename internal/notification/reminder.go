package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"github.com/charmbracelet/log"
)

// UpcomingLister returns public events dated within [from, to].
type UpcomingLister interface {
	UpcomingPublicEvents(ctx context.Context, from, to time.Time) ([]UpcomingEvent, error)
}

// ReminderScheduler publishes an event.reminder change for every public
// event inside the window each time the cron expression fires.
type ReminderScheduler struct {
	Expr   string
	Window time.Duration
	Events UpcomingLister
	Notify Service
	now    func() time.Time
}

func NewReminderScheduler(expr string, window time.Duration, events UpcomingLister, notify Service) (*ReminderScheduler, error) {
	if !gronx.New().IsValid(expr) {
		return nil, fmt.Errorf("invalid reminder cron expression %q", expr)
	}
	return &ReminderScheduler{Expr: expr, Window: window, Events: events, Notify: notify, now: time.Now}, nil
}

// Run blocks until ctx is cancelled.
func (s *ReminderScheduler) Run(ctx context.Context) error {
	for {
		next, err := gronx.NextTickAfter(s.Expr, s.now(), false)
		if err != nil {
			return fmt.Errorf("next reminder tick: %w", err)
		}
		log.Debug("next reminder run", "at", next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if n, err := s.RunOnce(ctx); err != nil {
			log.Error("reminder run failed", "err", err)
		} else {
			log.Info("reminders sent", "count", n)
		}
	}
}

// RunOnce sends reminders for the window starting now.
func (s *ReminderScheduler) RunOnce(ctx context.Context) (int, error) {
	from := s.now().UTC()
	events, err := s.Events.UpcomingPublicEvents(ctx, from, from.Add(s.Window))
	if err != nil {
		return 0, err
	}
	for _, e := range events {
		s.Notify.Notify(ctx, SetlistChange{
			Type:    TypeEventReminder,
			EventID: e.ID,
			Title:   e.Title,
			At:      from,
		})
	}
	return len(events), nil
}
