package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	events   []UpcomingEvent
	err      error
	from, to time.Time
}

func (f *fakeLister) UpcomingPublicEvents(_ context.Context, from, to time.Time) ([]UpcomingEvent, error) {
	f.from, f.to = from, to
	return f.events, f.err
}

func TestNewReminderSchedulerRejectsBadExpression(t *testing.T) {
	_, err := NewReminderScheduler("not a cron", time.Hour, &fakeLister{}, NopService{})
	assert.Error(t, err)
}

func TestReminderRunOncePublishesEachUpcomingEvent(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	lister := &fakeLister{events: []UpcomingEvent{
		{ID: uuid.New(), Title: "Friday Gig", Date: now.Add(10 * time.Hour)},
		{ID: uuid.New(), Title: "Saturday Gig", Date: now.Add(20 * time.Hour)},
	}}
	pub := &recordingPublisher{}

	s, err := NewReminderScheduler("0 9 * * *", 24*time.Hour, lister, NewService(pub))
	require.NoError(t, err)
	s.now = func() time.Time { return now }

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, now, lister.from)
	assert.Equal(t, now.Add(24*time.Hour), lister.to)

	require.Len(t, pub.changes, 2)
	assert.Equal(t, TypeEventReminder, pub.changes[0].Type)
	assert.Equal(t, "Friday Gig", pub.changes[0].Title)
}

func TestReminderRunOnceReturnsListerError(t *testing.T) {
	s, err := NewReminderScheduler("*/5 * * * *", time.Hour, &fakeLister{err: errors.New("db down")}, NopService{})
	require.NoError(t, err)

	_, err = s.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestReminderRunStopsOnCancel(t *testing.T) {
	s, err := NewReminderScheduler("0 9 * * *", time.Hour, &fakeLister{}, NopService{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, s.Run(ctx))
}
