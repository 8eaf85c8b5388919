package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter renders reports as CSV, Excel or PDF files.
type ReportExporter interface {
	ExportSetlist(format string, report SetlistReport) (*Export, error)
	ExportSchedule(format string, from, to time.Time, rows []ScheduleRow) (*Export, error)
}

type reportExporter struct {
	now func() time.Time
}

func NewReportExporter() ReportExporter {
	return &reportExporter{now: time.Now}
}

var (
	setlistHeaders  = []string{"#", "Title", "Artist", "Key", "Duration", "Notes"}
	scheduleHeaders = []string{"Date", "Title", "Venue", "Public", "Songs", "Running Time"}
)

//// ============================
/// SETLIST
//// ============================

func (e *reportExporter) ExportSetlist(format string, report SetlistReport) (*Export, error) {
	base := fmt.Sprintf("setlist_%s_%s", report.Date.Format("20060102"), report.EventID.String()[:8])
	records := setlistRecords(report)

	switch format {
	case FormatCSV:
		data, err := writeCSV(setlistHeaders, records)
		if err != nil {
			return nil, err
		}
		return &Export{Data: data, Filename: base + ".csv", ContentType: contentTypeCSV}, nil

	case FormatExcel:
		data, err := writeExcel("Setlist", setlistHeaders, records, []float64{6, 36, 28, 8, 10, 40})
		if err != nil {
			return nil, err
		}
		return &Export{Data: data, Filename: base + ".xlsx", ContentType: contentTypeExcel}, nil

	case FormatPDF:
		data, err := e.setlistPDF(report, records)
		if err != nil {
			return nil, err
		}
		return &Export{Data: data, Filename: base + ".pdf", ContentType: contentTypePDF}, nil

	default:
		return nil, unsupportedFormat(format)
	}
}

func setlistRecords(report SetlistReport) [][]string {
	records := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		records = append(records, []string{
			strconv.Itoa(row.Order),
			row.Title,
			row.Artist,
			row.Key,
			formatDuration(row.DurationSeconds),
			row.Notes,
		})
	}
	return records
}

func (e *reportExporter) setlistPDF(report SetlistReport, records [][]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(report.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, report.Title)
	pdf.Ln(9)

	pdf.SetFont("Arial", "", 11)
	subtitle := report.Date.Format("Mon 2 Jan 2006, 15:04")
	if report.VenueName != "" {
		subtitle += " - " + report.VenueName
	}
	pdf.Cell(0, 8, subtitle)
	pdf.Ln(12)

	widths := []float64{10, 55, 40, 14, 18, 53}
	pdfTable(pdf, widths, setlistHeaders, records)

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("%d songs, running time %s", len(records), formatDuration(report.TotalSeconds())))

	return pdfBytes(pdf)
}

//// ============================
/// EVENT SCHEDULE
//// ============================

func (e *reportExporter) ExportSchedule(format string, from, to time.Time, rows []ScheduleRow) (*Export, error) {
	base := fmt.Sprintf("event_schedule_%s", e.now().Format("20060102_150405"))
	records := scheduleRecords(rows)

	switch format {
	case FormatCSV:
		data, err := writeCSV(scheduleHeaders, records)
		if err != nil {
			return nil, err
		}
		return &Export{Data: data, Filename: base + ".csv", ContentType: contentTypeCSV}, nil

	case FormatExcel:
		data, err := writeExcel("Schedule", scheduleHeaders, records, []float64{18, 36, 30, 8, 8, 14})
		if err != nil {
			return nil, err
		}
		return &Export{Data: data, Filename: base + ".xlsx", ContentType: contentTypeExcel}, nil

	case FormatPDF:
		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, fmt.Sprintf("Event Schedule %s - %s", from.Format("2006-01-02"), to.Format("2006-01-02")))
		pdf.Ln(16)
		pdfTable(pdf, []float64{40, 80, 70, 20, 20, 30}, scheduleHeaders, records)

		data, err := pdfBytes(pdf)
		if err != nil {
			return nil, err
		}
		return &Export{Data: data, Filename: base + ".pdf", ContentType: contentTypePDF}, nil

	default:
		return nil, unsupportedFormat(format)
	}
}

func scheduleRecords(rows []ScheduleRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		venue := ""
		if row.VenueName != nil {
			venue = *row.VenueName
		}
		public := "no"
		if row.IsPublic {
			public = "yes"
		}
		records = append(records, []string{
			row.Date.UTC().Format("2006-01-02 15:04"),
			row.Title,
			venue,
			public,
			strconv.Itoa(row.SongCount),
			formatDuration(row.TotalSeconds),
		})
	}
	return records
}

//// ============================
/// WRITERS
//// ============================

func writeCSV(headers []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeExcel(sheetName string, headers []string, records [][]string, widths []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		col, _ := excelize.ColumnNumberToName(i + 1)
		if i < len(widths) {
			f.SetColWidth(sheetName, col, col, widths[i])
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", lastHeader, bold)

	for r, record := range records {
		for c, value := range record {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfTable(pdf *gofpdf.Fpdf, widths []float64, headers []string, records [][]string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, record := range records {
		for i, v := range record {
			pdf.CellFormat(widths[i], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func pdfBytes(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
