package reports

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSetlist() SetlistReport {
	return SetlistReport{
		EventID:   uuid.MustParse("6f1c2b4e-8d3a-4c7e-9b1f-2a5d6e7f8a9b"),
		Title:     "Spring Show",
		Date:      time.Date(2026, 4, 18, 20, 0, 0, 0, time.UTC),
		VenueName: "The Roxy",
		Rows: []SetlistRow{
			{Order: 1, Title: "Opener", Artist: "Band", Key: "E", DurationSeconds: 215},
			{Order: 3, Title: "Ballad", Notes: "capo 2", DurationSeconds: 300},
		},
	}
}

func TestExportSetlistCSV(t *testing.T) {
	export, err := NewReportExporter().ExportSetlist(FormatCSV, sampleSetlist())
	require.NoError(t, err)
	assert.Equal(t, "setlist_20260418_6f1c2b4e.csv", export.Filename)
	assert.Equal(t, "text/csv", export.ContentType)

	records, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, setlistHeaders, records[0])
	assert.Equal(t, []string{"1", "Opener", "Band", "E", "3:35", ""}, records[1])
	assert.Equal(t, []string{"3", "Ballad", "", "", "5:00", "capo 2"}, records[2])
}

func TestExportSetlistExcel(t *testing.T) {
	export, err := NewReportExporter().ExportSetlist(FormatExcel, sampleSetlist())
	require.NoError(t, err)
	assert.Equal(t, contentTypeExcel, export.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Setlist")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, "Ballad", rows[2][1])
}

func TestExportSetlistPDF(t *testing.T) {
	export, err := NewReportExporter().ExportSetlist(FormatPDF, sampleSetlist())
	require.NoError(t, err)
	assert.Equal(t, contentTypePDF, export.ContentType)
	assert.True(t, bytes.HasPrefix(export.Data, []byte("%PDF")))
}

func TestExportScheduleFormats(t *testing.T) {
	venue := "Garage"
	rows := []ScheduleRow{
		{EventID: uuid.New(), Title: "Rehearsal", Date: time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC), VenueName: &venue, SongCount: 12, TotalSeconds: 3000},
		{EventID: uuid.New(), Title: "Gig", Date: time.Date(2026, 4, 4, 21, 0, 0, 0, time.UTC), IsPublic: true},
	}
	from, to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC)
	exporter := NewReportExporter()

	export, err := exporter.ExportSchedule(FormatCSV, from, to, rows)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04-02 18:00", "Rehearsal", "Garage", "no", "12", "50:00"}, records[1])
	assert.Equal(t, []string{"2026-04-04 21:00", "Gig", "", "yes", "0", ""}, records[2])

	for _, format := range []string{FormatExcel, FormatPDF} {
		export, err := exporter.ExportSchedule(format, from, to, rows)
		require.NoError(t, err, format)
		assert.NotEmpty(t, export.Data)
	}

	_, err = exporter.ExportSchedule("docx", from, to, rows)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}
