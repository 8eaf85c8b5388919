package reports

import (
	"context"
	"time"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/event"
	"github.com/google/uuid"
)

// EventSource loads an event together with its sorted setlist.
type EventSource interface {
	GetEventByID(ctx context.Context, id uuid.UUID, includeSetlist bool) (*event.Event, error)
}

type ReportService interface {
	ExportSetlist(ctx context.Context, eventID uuid.UUID, format string) (*Export, error)
	EventSchedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
	ExportEventSchedule(ctx context.Context, req ScheduleRequest) (*Export, error)
}

type reportService struct {
	events   EventSource
	repo     ReportRepository
	exporter ReportExporter
	now      func() time.Time
}

func NewReportService(events EventSource, repo ReportRepository, exporter ReportExporter) ReportService {
	return &reportService{events: events, repo: repo, exporter: exporter, now: time.Now}
}

func (s *reportService) ExportSetlist(ctx context.Context, eventID uuid.UUID, format string) (*Export, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	e, err := s.events.GetEventByID(ctx, eventID, true)
	if err != nil {
		return nil, err
	}
	return s.exporter.ExportSetlist(format, setlistReport(e))
}

func (s *reportService) EventSchedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error) {
	from, to, err := DateRange(req.DateRange, req.StartDate, req.EndDate, s.now())
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.EventSchedule(ctx, from, to)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "load event schedule")
	}
	if rows == nil {
		rows = []ScheduleRow{}
	}
	return &ScheduleResponse{From: from, To: to, Events: rows}, nil
}

func (s *reportService) ExportEventSchedule(ctx context.Context, req ScheduleRequest) (*Export, error) {
	if err := checkFormat(req.Format); err != nil {
		return nil, err
	}
	schedule, err := s.EventSchedule(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.exporter.ExportSchedule(req.Format, schedule.From, schedule.To, schedule.Events)
}

// setlistReport flattens an event into printable rows. Entries arrive sorted.
func setlistReport(e *event.Event) SetlistReport {
	report := SetlistReport{EventID: e.ID, Title: e.Title, Date: e.Date}
	if e.VenueName != nil {
		report.VenueName = *e.VenueName
	}
	for _, entry := range e.SetlistEntries {
		row := SetlistRow{Order: entry.OrderInSetlist}
		if entry.Notes != nil {
			row.Notes = *entry.Notes
		}
		if sng := entry.Song; sng != nil {
			row.Title = sng.Title
			row.Artist = deref(sng.OriginalArtist)
			row.Key = deref(sng.Key)
			if sng.DurationSeconds != nil {
				row.DurationSeconds = *sng.DurationSeconds
			}
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}

func checkFormat(format string) error {
	switch format {
	case FormatCSV, FormatExcel, FormatPDF:
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func unsupportedFormat(format string) error {
	return apperror.InvalidInput("unsupported format %q, use excel, csv or pdf", format)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
