package event

import (
	"context"
	"slices"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetlistStore performs single-entry changes to one event's setlist. Every
// mutation runs in its own transaction and first locks the owning event row,
// so writers on the same event are serialised by the database.
type SetlistStore struct {
	DB      *gorm.DB
	Events  *Repository
	Entries *SetlistRepository
	lookups lookups
}

func NewSetlistStore(db *gorm.DB) *SetlistStore {
	return &SetlistStore{
		DB:      db,
		Events:  NewRepository(db),
		Entries: NewSetlistRepository(db),
		lookups: newLookups(db),
	}
}

// ===========================
// ➕ Add Song
func (s *SetlistStore) Add(ctx context.Context, eventID uuid.UUID, in AddEntryInput) (*SetlistEntry, error) {
	var added *SetlistEntry
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockEvent(ctx, tx, eventID); err != nil {
			return err
		}

		sng, err := s.lookups.withTx(tx).song(ctx, in.SongID)
		if err != nil {
			return err
		}
		if sng == nil {
			return apperror.NotFound("song %s not found", in.SongID)
		}

		entries := s.Entries.WithTx(tx)
		current, err := entries.ForEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if slices.ContainsFunc(current, func(e SetlistEntry) bool { return e.SongID == in.SongID }) {
			return apperror.New(apperror.KindDuplicateSong, "song %s is already in this setlist", in.SongID)
		}

		order, err := ResolveOrderForNewEntry(NewOrderBook(current), in.Order)
		if err != nil {
			return err
		}

		entry := &SetlistEntry{
			EventID:        eventID,
			SongID:         in.SongID,
			OrderInSetlist: order,
			Notes:          in.Notes,
		}
		if err := entries.Insert(ctx, entry); err != nil {
			return storageError(err, "add song to setlist")
		}
		entry.Song = sng
		added = entry
		return nil
	})
	if err != nil {
		return nil, storageError(err, "add song to setlist")
	}
	return added, nil
}

// ===========================
// ➖ Remove Song
// Remove deletes one entry. Remaining positions are left as they are.
func (s *SetlistStore) Remove(ctx context.Context, eventID, songID uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockEvent(ctx, tx, eventID); err != nil {
			return err
		}
		deleted, err := s.Entries.WithTx(tx).DeleteBySong(ctx, eventID, songID)
		if err != nil {
			return err
		}
		if !deleted {
			return errEntryNotFound
		}
		return nil
	})
	return storageError(err, "remove song from setlist")
}

// ===========================
// 🔀 Update Entry
// UpdateEntry changes the position and/or notes of one entry in a single row write.
func (s *SetlistStore) UpdateEntry(ctx context.Context, eventID, songID uuid.UUID, in UpdateEntryInput) (*SetlistEntry, error) {
	var updated *SetlistEntry
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockEvent(ctx, tx, eventID); err != nil {
			return err
		}

		entries := s.Entries.WithTx(tx)
		entry, err := entries.FindBySong(ctx, eventID, songID)
		if err != nil {
			return err
		}
		if entry == nil {
			return errEntryNotFound
		}

		changes := map[string]any{}
		if in.Order != nil && *in.Order != entry.OrderInSetlist {
			current, err := entries.ForEvent(ctx, eventID)
			if err != nil {
				return err
			}
			if err := AssertOrderFree(NewOrderBook(current), *in.Order, entry.ID); err != nil {
				return err
			}
			changes["order_in_setlist"] = *in.Order
		}
		if in.Notes != nil {
			changes["notes"] = *in.Notes
		}

		if err := entries.Update(ctx, entry.ID, changes); err != nil {
			return storageError(err, "update setlist entry")
		}

		updated, err = entries.FindBySong(ctx, eventID, songID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "update setlist entry")
	}
	return updated, nil
}

// ===========================
// 📜 List Setlist
// ListForEvent returns a point-in-time snapshot of the setlist, lowest order first.
func (s *SetlistStore) ListForEvent(ctx context.Context, eventID uuid.UUID) ([]SetlistEntry, error) {
	exists, err := s.Events.Exists(ctx, eventID)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "load setlist")
	}
	if !exists {
		return nil, errEventNotFound
	}

	entries, err := s.Entries.ForEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "load setlist")
	}
	sortEntries(entries)
	return entries, nil
}

func (s *SetlistStore) lockEvent(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) error {
	e, err := s.Events.WithTx(tx).LockByID(ctx, eventID)
	if err != nil {
		return err
	}
	if e == nil {
		return errEventNotFound
	}
	return nil
}

// sortEntries orders entries by position. Storage order is never trusted.
func sortEntries(entries []SetlistEntry) {
	slices.SortStableFunc(entries, func(a, b SetlistEntry) int {
		return a.OrderInSetlist - b.OrderInSetlist
	})
}
