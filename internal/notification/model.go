package notification

import (
	"time"

	"github.com/google/uuid"
)

// Change types carried on the setlist topic and the live feed.
const (
	TypeEventCreated        = "event.created"
	TypeEventUpdated        = "event.updated"
	TypeEventDeleted        = "event.deleted"
	TypeSetlistSongAdded    = "setlist.song_added"
	TypeSetlistSongRemoved  = "setlist.song_removed"
	TypeSetlistEntryUpdated = "setlist.entry_updated"
	TypeEventReminder       = "event.reminder"
)

// SetlistChange is published after an event or its setlist was committed.
type SetlistChange struct {
	Type    string     `json:"type"`
	EventID uuid.UUID  `json:"event_id"`
	SongID  *uuid.UUID `json:"song_id,omitempty"`
	Order   *int       `json:"order_in_setlist,omitempty"`
	Title   string     `json:"title,omitempty"`
	At      time.Time  `json:"at"`
}

// UpcomingEvent is the slice of an event the reminder scheduler needs.
type UpcomingEvent struct {
	ID    uuid.UUID
	Title string
	Date  time.Time
}
