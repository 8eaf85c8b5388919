package event

import (
	"context"

	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/bandhub/band-management-backend/internal/song"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lookups resolves songs and users on whatever handle the caller holds,
// so reads inside a transaction see that transaction's view.
type lookups struct {
	songs *song.Repository
	users auth.Repository
}

func newLookups(db *gorm.DB) lookups {
	return lookups{
		songs: song.NewRepository(db),
		users: auth.NewRepository(db),
	}
}

func (l lookups) withTx(tx *gorm.DB) lookups {
	return lookups{
		songs: l.songs.WithTx(tx),
		users: l.users.WithTx(tx),
	}
}

func (l lookups) song(ctx context.Context, id uuid.UUID) (*song.Song, error) {
	return l.songs.FindByID(ctx, id)
}

func (l lookups) songsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]song.Song, error) {
	return l.songs.FindByIDs(ctx, ids)
}

func (l lookups) user(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return l.users.FindByID(ctx, id)
}
