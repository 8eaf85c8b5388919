package event

import (
	"github.com/bandhub/band-management-backend/database"
	"github.com/bandhub/band-management-backend/internal/apperror"
)

// storageError turns a constraint violation that slipped past validation
// into the matching domain error. Anything else is a transaction failure.
func storageError(err error, op string) error {
	if err == nil || apperror.KindOf(err) != apperror.KindUnknown {
		return err
	}
	v := database.Classify(err)
	switch v.Kind {
	case database.UniqueViolation:
		if v.Mentions("idx_setlist_event_song", "song_id") {
			return apperror.Wrap(apperror.KindDuplicateSong, err, "song is already in this setlist")
		}
		if v.Mentions("idx_setlist_event_order", "order_in_setlist") {
			return apperror.Wrap(apperror.KindOrderConflict, err, "order is already taken in this setlist")
		}
	case database.ForeignKeyViolation:
		return apperror.Wrap(apperror.KindInvalidReference, err, "referenced record no longer exists")
	case database.CheckViolation:
		return apperror.Wrap(apperror.KindInvalidOrder, err, "order_in_setlist must be at least 1")
	}
	return apperror.TransactionFailure(err, op)
}

var (
	errEventNotFound = apperror.NotFound("event not found")
	errEntryNotFound = apperror.NotFound("setlist entry not found")
)
