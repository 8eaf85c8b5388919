package event

import (
	"context"
	"errors"
	"testing"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStorageErrorClassifiesConstraintViolations(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	e := f.createEvent(t, "Backstop", SetlistItem{SongID: f.songs[0].ID, Order: intPtr(1)})
	entries := NewSetlistRepository(f.db)

	tests := []struct {
		name  string
		entry SetlistEntry
		kind  apperror.Kind
	}{
		{name: "same song twice", entry: SetlistEntry{EventID: e.ID, SongID: f.songs[0].ID, OrderInSetlist: 2}, kind: apperror.KindDuplicateSong},
		{name: "same position twice", entry: SetlistEntry{EventID: e.ID, SongID: f.songs[1].ID, OrderInSetlist: 1}, kind: apperror.KindOrderConflict},
		{name: "position below one", entry: SetlistEntry{EventID: e.ID, SongID: f.songs[1].ID, OrderInSetlist: 0}, kind: apperror.KindInvalidOrder},
		{name: "unknown event", entry: SetlistEntry{EventID: uuid.New(), SongID: f.songs[1].ID, OrderInSetlist: 1}, kind: apperror.KindInvalidReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := tt.entry
			err := entries.Insert(ctx, &entry)
			assert.Equal(t, tt.kind, apperror.KindOf(storageError(err, "insert")))
		})
	}
}

func TestStorageErrorPassesDomainErrorsThrough(t *testing.T) {
	assert.NoError(t, storageError(nil, "noop"))
	assert.Same(t, errEventNotFound, storageError(errEventNotFound, "noop"))

	err := storageError(errors.New("connection reset"), "load")
	assert.Equal(t, apperror.KindTransactionFailure, apperror.KindOf(err))
}
