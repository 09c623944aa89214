package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/yug1204/event-registration/internal/registration"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)

// csvHeaders is the fixed export header; downstream spreadsheets key on
// this exact order.
var csvHeaders = []string{
	"ID",
	"Full Name",
	"Email",
	"College Name",
	"Department",
	"Category",
	"Event Date",
	"Event ID",
	"Submission Date",
}

// Exporter serializes a registration set for download in one of the
// supported formats.
type Exporter interface {
	Export(format string, regs []registration.Registration) ([]byte, string, string, error)
}

type registrationExporter struct{}

func NewExporter() Exporter {
	return &registrationExporter{}
}

// Export returns the file bytes, filename and MIME type for the requested
// format. An empty format defaults to CSV.
func (e *registrationExporter) Export(format string, regs []registration.Registration) ([]byte, string, string, error) {
	timestamp := time.Now().Format("2006-01-02_150405")

	switch format {
	case FormatCSV, "":
		return e.exportCSV(timestamp, regs)
	case FormatExcel:
		return e.exportExcel(timestamp, regs)
	case FormatPDF:
		return e.exportPDF(timestamp, regs)
	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}
}

// exportCSV writes one line per registration after the fixed header.
// Fields are quoted only when they contain a comma, quote or newline, with
// inner quotes doubled; lines end with \n and there is no trailing blank
// line beyond the last record's terminator.
func (e *registrationExporter) exportCSV(timestamp string, regs []registration.Registration) ([]byte, string, string, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, "", "", err
	}

	for _, r := range regs {
		if err := w.Write(csvRecord(r)); err != nil {
			return nil, "", "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", "", err
	}

	fname := fmt.Sprintf("event_registrations_%s.csv", timestamp)
	return buf.Bytes(), fname, "text/csv", nil
}

func csvRecord(r registration.Registration) []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.FullName,
		r.Email,
		r.CollegeName,
		r.Department,
		r.Category,
		r.EventDate.Format("2006-01-02"),
		strconv.FormatUint(uint64(r.EventID), 10),
		r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// exportExcel mirrors the CSV layout on a single sheet.
func (e *registrationExporter) exportExcel(timestamp string, regs []registration.Registration) ([]byte, string, string, error) {
	f := excelize.NewFile()
	sheet := "Registrations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", "", err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, h := range csvHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", "", err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range regs {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.CollegeName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Department)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Category)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.EventDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.EventID)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), r.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", "", err
	}

	fname := fmt.Sprintf("event_registrations_%s.xlsx", timestamp)
	return buf.Bytes(), fname, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
}

// exportPDF renders a landscape table of the registration set.
func (e *registrationExporter) exportPDF(timestamp string, regs []registration.Registration) ([]byte, string, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Event Registrations")
	pdf.Ln(10)

	widths := []float64{12, 45, 55, 45, 35, 30, 24, 18, 36}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range csvHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range regs {
		pdf.CellFormat(widths[0], 6, fmt.Sprint(r.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.FullName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.CollegeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.Department, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, r.Category, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, r.EventDate.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[7], 6, fmt.Sprint(r.EventID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[8], 6, r.CreatedAt.Format("2006-01-02 15:04:05"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}

	fname := fmt.Sprintf("event_registrations_%s.pdf", timestamp)
	return buf.Bytes(), fname, "application/pdf", nil
}
