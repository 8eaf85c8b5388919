package reports

import (
	"time"

	"github.com/google/uuid"
)

const (
	// Date range presets
	DateRangeDaily   = "daily"
	DateRangeWeekly  = "weekly"
	DateRangeMonthly = "monthly"
	DateRangeYearly  = "yearly"
	DateRangeCustom  = "custom"

	// Export formats
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"

	contentTypeCSV   = "text/csv"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF   = "application/pdf"
)

// SetlistRow is one printed line of a setlist.
type SetlistRow struct {
	Order           int
	Title           string
	Artist          string
	Key             string
	DurationSeconds int
	Notes           string
}

// SetlistReport is everything a printed setlist shows.
type SetlistReport struct {
	EventID   uuid.UUID
	Title     string
	Date      time.Time
	VenueName string
	Rows      []SetlistRow
}

// TotalSeconds sums the known song durations.
func (r SetlistReport) TotalSeconds() int {
	total := 0
	for _, row := range r.Rows {
		total += row.DurationSeconds
	}
	return total
}

// ScheduleRow summarises one event of the schedule report.
type ScheduleRow struct {
	EventID      uuid.UUID `json:"event_id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	VenueName    *string   `json:"venue_name,omitempty"`
	IsPublic     bool      `json:"is_public"`
	SongCount    int       `json:"song_count"`
	TotalSeconds int       `json:"total_seconds"`
}

// ScheduleRequest selects the events of a schedule report.
type ScheduleRequest struct {
	DateRange string
	StartDate string
	EndDate   string
	Format    string // excel, csv, pdf, or empty for JSON
}

type ScheduleResponse struct {
	From   time.Time     `json:"from"`
	To     time.Time     `json:"to"`
	Events []ScheduleRow `json:"events"`
}

// Export is a rendered report file.
type Export struct {
	Data        []byte
	Filename    string
	ContentType string
}
