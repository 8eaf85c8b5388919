package song

import (
	"time"

	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Song is a catalogue entry that setlists point at.
type Song struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string     `gorm:"size:255;not null;index" json:"title"`
	OriginalArtist  *string    `gorm:"size:255" json:"original_artist,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
	Lyrics          *string    `gorm:"type:text" json:"lyrics,omitempty"`
	Key             *string    `gorm:"column:song_key;size:20" json:"key,omitempty"`
	Genre           *string    `gorm:"size:100" json:"genre,omitempty"`
	AudioURL        *string    `gorm:"size:500" json:"audio_url,omitempty"`
	SheetMusicURL   *string    `gorm:"size:500" json:"sheet_music_url,omitempty"`
	CreatedByUserID *uuid.UUID `gorm:"type:uuid;index" json:"created_by_user_id,omitempty"`
	CreatedBy       *auth.User `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:SET NULL" json:"created_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (s *Song) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ===========================
// Requests
// ===========================

type CreateSongRequest struct {
	Title           string     `json:"title" binding:"required,min=1,max=255" example:"Wonderwall"`
	OriginalArtist  *string    `json:"original_artist" binding:"omitempty,max=255" example:"Oasis"`
	DurationSeconds *int       `json:"duration_seconds" binding:"omitempty,min=1" example:"258"`
	Lyrics          *string    `json:"lyrics"`
	Key             *string    `json:"key" binding:"omitempty,max=20" example:"F#m"`
	Genre           *string    `json:"genre" binding:"omitempty,max=100" example:"Britpop"`
	AudioURL        *string    `json:"audio_url" binding:"omitempty,url"`
	SheetMusicURL   *string    `json:"sheet_music_url" binding:"omitempty,url"`
	CreatedByUserID *uuid.UUID `json:"created_by_user_id"`
}

// UpdateSongRequest touches only the fields that are present.
type UpdateSongRequest struct {
	Title           *string `json:"title" binding:"omitempty,min=1,max=255"`
	OriginalArtist  *string `json:"original_artist" binding:"omitempty,max=255"`
	DurationSeconds *int    `json:"duration_seconds" binding:"omitempty,min=1"`
	Lyrics          *string `json:"lyrics"`
	Key             *string `json:"key" binding:"omitempty,max=20"`
	Genre           *string `json:"genre" binding:"omitempty,max=100"`
	AudioURL        *string `json:"audio_url" binding:"omitempty,url"`
	SheetMusicURL   *string `json:"sheet_music_url" binding:"omitempty,url"`
}

func (r UpdateSongRequest) changes() map[string]any {
	updates := map[string]any{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.OriginalArtist != nil {
		updates["original_artist"] = *r.OriginalArtist
	}
	if r.DurationSeconds != nil {
		updates["duration_seconds"] = *r.DurationSeconds
	}
	if r.Lyrics != nil {
		updates["lyrics"] = *r.Lyrics
	}
	if r.Key != nil {
		updates["song_key"] = *r.Key
	}
	if r.Genre != nil {
		updates["genre"] = *r.Genre
	}
	if r.AudioURL != nil {
		updates["audio_url"] = *r.AudioURL
	}
	if r.SheetMusicURL != nil {
		updates["sheet_music_url"] = *r.SheetMusicURL
	}
	return updates
}

type ListFilter struct {
	Title  string
	Artist string
	Genre  string
	Key    string
	Page   int
	Limit  int
}

type PaginatedSongs struct {
	Data       []Song `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}
