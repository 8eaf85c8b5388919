package event

import (
	"time"

	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/bandhub/band-management-backend/internal/song"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a show or rehearsal. It owns its setlist: deleting the row
// removes every entry through the foreign key cascade.
type Event struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Date            time.Time      `gorm:"column:event_date;not null;index" json:"date"`
	VenueName       *string        `gorm:"size:255" json:"venue_name,omitempty"`
	VenueAddress    *string        `gorm:"type:text" json:"venue_address,omitempty"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	IsPublic        bool           `gorm:"not null;index" json:"is_public"`
	CreatedByUserID *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_user_id,omitempty"`
	CreatedBy       *auth.User     `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:SET NULL" json:"created_by,omitempty"`
	SetlistEntries  []SetlistEntry `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"setlist_entries"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// SetlistEntry places one song at one position of an event's setlist.
// (event_id, song_id) and (event_id, order_in_setlist) are unique.
type SetlistEntry struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	EventID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_setlist_event_song;uniqueIndex:idx_setlist_event_order" json:"event_id"`
	SongID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_setlist_event_song;index" json:"song_id"`
	Song           *song.Song `gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE" json:"song,omitempty"`
	OrderInSetlist int        `gorm:"not null;uniqueIndex:idx_setlist_event_order;check:chk_setlist_order_positive,order_in_setlist >= 1" json:"order_in_setlist"`
	Notes          *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (s *SetlistEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ===========================
// Inputs
// ===========================

// SetlistItem is one requested (song, order, notes) triple. A nil Order asks
// for the next free position.
type SetlistItem struct {
	SongID uuid.UUID `json:"song_id" binding:"required" example:"2f1a7a52-5a5e-4c47-8a55-6f3b8f9f2a10"`
	Order  *int      `json:"order_in_setlist" example:"1"`
	Notes  *string   `json:"notes" example:"capo 2"`
}

type CreateEventInput struct {
	Title           string
	Date            time.Time
	VenueName       *string
	VenueAddress    *string
	Description     *string
	IsPublic        *bool
	CreatedByUserID *uuid.UUID
	Setlist         []SetlistItem
}

// EventPatch carries only the fields to change.
type EventPatch struct {
	Title        *string
	Date         *time.Time
	VenueName    *string
	VenueAddress *string
	Description  *string
	IsPublic     *bool
}

func (p EventPatch) changes() map[string]any {
	updates := map[string]any{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Date != nil {
		updates["event_date"] = p.Date.UTC()
	}
	if p.VenueName != nil {
		updates["venue_name"] = *p.VenueName
	}
	if p.VenueAddress != nil {
		updates["venue_address"] = *p.VenueAddress
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.IsPublic != nil {
		updates["is_public"] = *p.IsPublic
	}
	return updates
}

type AddEntryInput struct {
	SongID uuid.UUID
	Order  *int
	Notes  *string
}

type UpdateEntryInput struct {
	Order *int
	Notes *string
}

// ListFilter fields are independent; zero values impose no constraint.
type ListFilter struct {
	Title          string
	Venue          string
	IsPublic       *bool
	DateFrom       *time.Time
	DateTo         *time.Time
	Page           int
	Limit          int
	IncludeSetlist bool
}

type PaginatedEvents struct {
	Data       []Event `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
