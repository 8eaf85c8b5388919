package event

import (
	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/google/uuid"
)

// OrderBook maps each occupied position of one setlist to the entry holding it.
type OrderBook map[int]uuid.UUID

func NewOrderBook(entries []SetlistEntry) OrderBook {
	book := make(OrderBook, len(entries))
	for _, e := range entries {
		book[e.OrderInSetlist] = e.ID
	}
	return book
}

// Max is the highest occupied position, or 0 for an empty setlist.
func (b OrderBook) Max() int {
	highest := 0
	for order := range b {
		if order > highest {
			highest = order
		}
	}
	return highest
}

func validOrder(order int) error {
	if order < 1 {
		return apperror.New(apperror.KindInvalidOrder, "order_in_setlist must be at least 1, got %d", order)
	}
	return nil
}

// ResolveOrderForNewEntry returns the requested position when it is free, or
// the position after the current highest when none was requested.
func ResolveOrderForNewEntry(book OrderBook, requested *int) (int, error) {
	if requested == nil {
		return book.Max() + 1, nil
	}
	if err := validOrder(*requested); err != nil {
		return 0, err
	}
	if _, taken := book[*requested]; taken {
		return 0, apperror.New(apperror.KindOrderConflict, "order %d is already taken in this setlist", *requested)
	}
	return *requested, nil
}

// AssertOrderFree fails when order is held by any entry other than excluding.
func AssertOrderFree(book OrderBook, order int, excluding uuid.UUID) error {
	if err := validOrder(order); err != nil {
		return err
	}
	if holder, taken := book[order]; taken && holder != excluding {
		return apperror.New(apperror.KindOrderConflict, "order %d is already taken in this setlist", order)
	}
	return nil
}

// PlannedEntry is a validated batch item with its final position.
type PlannedEntry struct {
	SongID uuid.UUID
	Order  int
	Notes  *string
}

// PlanBatch validates a full setlist before anything is written. Explicit
// positions are placed first in request order; items without one are then
// appended after the highest position in the batch.
func PlanBatch(items []SetlistItem) ([]PlannedEntry, error) {
	planned := make([]PlannedEntry, len(items))
	book := make(OrderBook, len(items))
	songs := make(map[uuid.UUID]struct{}, len(items))

	for i, item := range items {
		if item.SongID == uuid.Nil {
			return nil, apperror.InvalidInput("setlist entry %d has no song_id", i+1)
		}
		if _, dup := songs[item.SongID]; dup {
			return nil, apperror.New(apperror.KindDuplicateSong, "song %s appears more than once in the setlist", item.SongID)
		}
		songs[item.SongID] = struct{}{}

		planned[i] = PlannedEntry{SongID: item.SongID, Notes: item.Notes}
		if item.Order == nil {
			continue
		}
		order, err := ResolveOrderForNewEntry(book, item.Order)
		if err != nil {
			return nil, err
		}
		book[order] = item.SongID
		planned[i].Order = order
	}

	for i, item := range items {
		if item.Order != nil {
			continue
		}
		order := book.Max() + 1
		book[order] = item.SongID
		planned[i].Order = order
	}
	return planned, nil
}
