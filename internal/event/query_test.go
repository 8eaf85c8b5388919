package event

import (
	"context"
	"testing"
	"time"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/auditlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvents(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	public := true
	venue := func(v string) *string { return &v }

	inputs := []CreateEventInput{
		{Title: "Rooftop Session", Date: time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC), VenueName: venue("Sky Bar"), IsPublic: &public},
		{Title: "Album Launch", Date: time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC), VenueName: venue("The Roxy"), IsPublic: &public},
		{Title: "Rehearsal", Date: time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC), VenueName: venue("Garage")},
		{Title: "Winter Ball", Date: time.Date(2025, 12, 20, 21, 0, 0, 0, time.UTC), VenueName: venue("roxy annex"), IsPublic: &public},
	}
	for _, in := range inputs {
		_, err := f.svc.CreateEvent(ctx, in, auditlog.Actor{})
		require.NoError(t, err)
	}
}

func titles(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func TestListEventsOrderingAndPaging(t *testing.T) {
	f := newFixture(t, 0)
	seedEvents(t, f)
	ctx := context.Background()

	page, err := f.svc.ListEvents(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageSize, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []string{"Album Launch", "Rooftop Session", "Rehearsal", "Winter Ball"}, titles(page.Data))

	page, err = f.svc.ListEvents(ctx, ListFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, []string{"Winter Ball"}, titles(page.Data))

	page, err = f.svc.ListEvents(ctx, ListFilter{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, page.Limit)
}

func TestListEventsFilters(t *testing.T) {
	f := newFixture(t, 0)
	seedEvents(t, f)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter ListFilter
		want   []string
	}{
		{name: "title substring ignores case", filter: ListFilter{Title: "ROOF"}, want: []string{"Rooftop Session"}},
		{name: "venue substring ignores case", filter: ListFilter{Venue: "Roxy"}, want: []string{"Album Launch", "Winter Ball"}},
		{name: "private only", filter: ListFilter{IsPublic: new(bool)}, want: []string{"Rehearsal"}},
		{
			name: "date range",
			filter: ListFilter{
				DateFrom: ptrTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
				DateTo:   ptrTime(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)),
			},
			want: []string{"Rehearsal"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.svc.ListEvents(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(page.Data))
		})
	}

	_, err := f.svc.ListEvents(ctx, ListFilter{
		DateFrom: ptrTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		DateTo:   ptrTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestListEventsIncludeSetlist(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	f.createEvent(t, "Gig",
		SetlistItem{SongID: f.songs[0].ID, Order: intPtr(3)},
		SetlistItem{SongID: f.songs[1].ID, Order: intPtr(1)},
	)

	page, err := f.svc.ListEvents(ctx, ListFilter{IncludeSetlist: true})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, []int{1, 3}, orders(page.Data[0].SetlistEntries))

	page, err = f.svc.ListEvents(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Data[0].SetlistEntries)
}

func TestGetEventByIDWithoutSetlist(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	e := f.createEvent(t, "Gig", SetlistItem{SongID: f.songs[0].ID})

	got, err := f.svc.GetEventByID(ctx, e.ID, false)
	require.NoError(t, err)
	assert.Nil(t, got.SetlistEntries)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, "editor", got.CreatedBy.Username)
}

func ptrTime(t time.Time) *time.Time { return &t }
