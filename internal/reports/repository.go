package reports

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ReportRepository interface {
	EventSchedule(ctx context.Context, from, to time.Time) ([]ScheduleRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReportRepository {
	return &repository{db: db}
}

// EventSchedule lists events dated in [from, to], earliest first, with the
// size and running time of each setlist.
func (r *repository) EventSchedule(ctx context.Context, from, to time.Time) ([]ScheduleRow, error) {
	var rows []ScheduleRow
	err := r.db.WithContext(ctx).
		Table("events e").
		Select(`e.id AS event_id, e.title, e.event_date AS date, e.venue_name, e.is_public,
			COUNT(se.id) AS song_count,
			COALESCE(SUM(s.duration_seconds), 0) AS total_seconds`).
		Joins("LEFT JOIN setlist_entries se ON se.event_id = e.id").
		Joins("LEFT JOIN songs s ON s.id = se.song_id").
		Where("e.event_date BETWEEN ? AND ?", from.UTC(), to.UTC()).
		Group("e.id, e.title, e.event_date, e.venue_name, e.is_public").
		Order("e.event_date ASC").Order("e.title ASC").
		Scan(&rows).Error
	return rows, err
}
