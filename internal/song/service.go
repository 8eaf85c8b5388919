package song

import (
	"context"
	"math"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/google/uuid"
)

// UserLookup resolves creator references.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

type Service struct {
	Repo  *Repository
	Users UserLookup
}

func NewService(r *Repository, users UserLookup) *Service {
	return &Service{Repo: r, Users: users}
}

// ===========================
// 🎵 Create Song
func (s *Service) CreateSong(ctx context.Context, req CreateSongRequest, actor *uuid.UUID) (*Song, error) {
	creator, err := s.resolveCreator(ctx, req.CreatedByUserID, actor)
	if err != nil {
		return nil, err
	}

	song := &Song{
		Title:           req.Title,
		OriginalArtist:  req.OriginalArtist,
		DurationSeconds: req.DurationSeconds,
		Lyrics:          req.Lyrics,
		Key:             req.Key,
		Genre:           req.Genre,
		AudioURL:        req.AudioURL,
		SheetMusicURL:   req.SheetMusicURL,
		CreatedByUserID: creator,
	}
	if err := s.Repo.Create(ctx, song); err != nil {
		return nil, apperror.TransactionFailure(err, "create song")
	}
	return s.GetSong(ctx, song.ID)
}

// resolveCreator fails only for an explicit id that does not exist. A stale
// actor id is dropped silently.
func (s *Service) resolveCreator(ctx context.Context, explicit, actor *uuid.UUID) (*uuid.UUID, error) {
	id := explicit
	if id == nil {
		id = actor
	}
	if id == nil {
		return nil, nil
	}
	user, err := s.Users.FindByID(ctx, *id)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "find creator")
	}
	if user == nil {
		if explicit != nil {
			return nil, apperror.InvalidReference("user %s not found", *explicit)
		}
		return nil, nil
	}
	return &user.ID, nil
}

// ===========================
// 🔍 Get Song
func (s *Service) GetSong(ctx context.Context, id uuid.UUID) (*Song, error) {
	song, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "find song")
	}
	if song == nil {
		return nil, apperror.NotFound("song not found")
	}
	return song, nil
}

// ===========================
// 📋 List Songs
func (s *Service) ListSongs(ctx context.Context, f ListFilter) (*PaginatedSongs, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	songs, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "list songs")
	}

	return &PaginatedSongs{
		Data:       songs,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}, nil
}

// ===========================
// 🛠️ Update Song
func (s *Service) UpdateSong(ctx context.Context, id uuid.UUID, req UpdateSongRequest) (*Song, error) {
	if _, err := s.GetSong(ctx, id); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, id, req.changes()); err != nil {
		return nil, apperror.TransactionFailure(err, "update song")
	}
	return s.GetSong(ctx, id)
}

// ===========================
// 🗑️ Delete Song
func (s *Service) DeleteSong(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperror.TransactionFailure(err, "delete song")
	}
	if !deleted {
		return apperror.NotFound("song not found")
	}
	return nil
}
