package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yug1204/event-registration/internal/registration"
)

func sampleRegistrations() []registration.Registration {
	return []registration.Registration{
		{
			ID:          1,
			FullName:    "John Smith",
			Email:       "john@example.com",
			CollegeName: "State College",
			Department:  "Computer Science",
			Category:    "Hackathon",
			EventDate:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			EventID:     3,
			CreatedAt:   time.Date(2026, 3, 1, 10, 15, 30, 0, time.UTC),
		},
		{
			ID:          2,
			FullName:    "O'Brien, Jr.",
			Email:       "obrien@example.com",
			CollegeName: `He said "hi" College`,
			Department:  "Physics",
			Category:    "Conference",
			EventDate:   time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
			EventID:     4,
			CreatedAt:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportCSV(t *testing.T) {
	e := NewExporter()

	data, fname, mime, err := e.Export(FormatCSV, sampleRegistrations())
	require.NoError(t, err)
	require.Equal(t, "text/csv", mime)
	require.True(t, strings.HasPrefix(fname, "event_registrations_"))
	require.True(t, strings.HasSuffix(fname, ".csv"))

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 4) // header + 2 records + empty tail after final \n
	require.Equal(t, "", lines[3])

	require.Equal(t, "ID,Full Name,Email,College Name,Department,Category,Event Date,Event ID,Submission Date", lines[0])
	require.Equal(t, "1,John Smith,john@example.com,State College,Computer Science,Hackathon,2026-05-01,3,2026-03-01 10:15:30", lines[1])

	// Fields with commas get quoted; embedded quotes are doubled.
	require.Contains(t, lines[2], `"O'Brien, Jr."`)
	require.Contains(t, lines[2], `"He said ""hi"" College"`)

	// Unix line endings, no CR.
	require.NotContains(t, string(data), "\r")
}

// A plain field is never quoted and every record ends with exactly one \n.
func TestExportCSVNoSpuriousQuoting(t *testing.T) {
	e := NewExporter()

	data, _, _, err := e.Export(FormatCSV, sampleRegistrations()[:1])
	require.NoError(t, err)

	out := string(data)
	require.NotContains(t, out, `"John Smith"`)
	require.True(t, strings.HasSuffix(out, "2026-03-01 10:15:30\n"))
	require.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestExportCSVEmptySet(t *testing.T) {
	e := NewExporter()

	data, _, _, err := e.Export(FormatCSV, nil)
	require.NoError(t, err)
	require.Equal(t, "ID,Full Name,Email,College Name,Department,Category,Event Date,Event ID,Submission Date\n", string(data))
}

func TestExportDefaultsToCSV(t *testing.T) {
	e := NewExporter()

	_, fname, mime, err := e.Export("", sampleRegistrations())
	require.NoError(t, err)
	require.Equal(t, "text/csv", mime)
	require.True(t, strings.HasSuffix(fname, ".csv"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	e := NewExporter()

	_, _, _, err := e.Export("docx", sampleRegistrations())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported export format")
}

func TestExportExcel(t *testing.T) {
	e := NewExporter()

	data, fname, mime, err := e.Export(FormatExcel, sampleRegistrations())
	require.NoError(t, err)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", mime)
	require.True(t, strings.HasSuffix(fname, ".xlsx"))
	// xlsx files are zip archives.
	require.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestExportPDF(t *testing.T) {
	e := NewExporter()

	data, fname, mime, err := e.Export(FormatPDF, sampleRegistrations())
	require.NoError(t, err)
	require.Equal(t, "application/pdf", mime)
	require.True(t, strings.HasSuffix(fname, ".pdf"))
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
