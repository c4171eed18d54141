package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"resumely/internal/domain"
)

const sheetName = "Profiles"

// columns defines the export header row.
var columns = []interface{}{
	"File Name",
	"Parse Source",
	"Parser Model",
	"Name",
	"Email",
	"Phone",
	"Location",
	"Summary",
	"Skills",
	"Experience Count",
	"Latest Title",
	"Latest Company",
	"Languages",
	"Links",
	"Parsed At",
	"Created At",
}

// WriteProfilesXLSX writes all parsed résumés as an XLSX workbook with one
// row per résumé. Résumés whose stored profile fails to decode still get a
// metadata row with empty profile columns.
func WriteProfilesXLSX(w io.Writer, resumes []domain.Resume) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range resumes {
		row := resumeToRow(&resumes[i])
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func resumeToRow(r *domain.Resume) []interface{} {
	row := make([]interface{}, len(columns))
	for i := range row {
		row[i] = ""
	}

	row[0] = r.FileName
	row[1] = string(r.ParseSource)
	row[2] = r.ParserModel
	row[14] = formatTime(r.ParsedAt)
	row[15] = r.CreatedAt.Format(time.RFC3339)

	if r.ParsingStatus != domain.ParsingStatusCompleted || len(r.Profile) == 0 {
		return row
	}

	var prof domain.CanonicalProfile
	if err := json.Unmarshal(r.Profile, &prof); err != nil {
		return row
	}

	row[3] = deref(prof.Contact.Name)
	row[4] = deref(prof.Contact.Email)
	row[5] = deref(prof.Contact.Phone)
	row[6] = deref(prof.Contact.Location)
	row[7] = prof.Summary
	row[8] = strings.Join(prof.Skills, ", ")
	row[9] = len(prof.Experience)
	if len(prof.Experience) > 0 {
		row[10] = prof.Experience[0].Title
		row[11] = prof.Experience[0].Company
	}
	row[12] = strings.Join(prof.Languages, ", ")
	row[13] = strings.Join(prof.Links, ", ")

	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
