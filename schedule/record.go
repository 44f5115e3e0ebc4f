package schedule

import (
	"errors"
	"fmt"
	"strings"

	"brasscal/report"
)

// EventRecord is one normalized schedule row.
type EventRecord struct {
	DateText  string // e.g. "Sunday, October 12, 2025"
	TimeText  string // e.g. "7:00 PM", "6PM-8PM", "TBD"
	Category  string // sport or rehearsal code: vball, hoc, mbb, wbb, rehearsal
	Opponent  string
	Ensemble  string
	Conductor string
	Venue     string
}

// IndexedRecord pairs a record with its zero-based position in the source
// range. The position is the join key into the event-ID mapping, so it
// must survive row drops.
type IndexedRecord struct {
	Row    int
	Record EventRecord
}

// ErrShortRow marks a source row with too few cells to map.
var ErrShortRow = errors.New("not enough columns")

// minSheetColumns is the minimum cell count for the spreadsheet layout.
// Trailing cells (category, ensemble, conductor) may be absent because
// the Sheets API truncates rows at the last non-empty cell.
const minSheetColumns = 4

// RecordFromSheetRow maps one spreadsheet row to a record. The sheet
// layout is positional: date, opponent, venue, time, category, ensemble,
// conductor.
func RecordFromSheetRow(row []string) (EventRecord, error) {
	if len(row) < minSheetColumns {
		return EventRecord{}, fmt.Errorf("%w: got %d, need %d", ErrShortRow, len(row), minSheetColumns)
	}
	rec := EventRecord{
		DateText:  cell(row, 0),
		Opponent:  cell(row, 1),
		Venue:     cell(row, 2),
		TimeText:  cell(row, 3),
		Category:  cell(row, 4),
		Ensemble:  cell(row, 5),
		Conductor: cell(row, 6),
	}
	if strings.TrimSpace(rec.Venue) == "" {
		rec.Venue = "TBD"
	}
	return rec, nil
}

// MapSheetRows converts raw rows to records, preserving each record's
// original row index. Rows that cannot be mapped are reported and
// dropped; their indices are not reused.
func MapSheetRows(rows [][]string, rep report.Reporter) []IndexedRecord {
	records := make([]IndexedRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := RecordFromSheetRow(row)
		if err != nil {
			rep.Skipf(i, "%v", err)
			continue
		}
		records = append(records, IndexedRecord{Row: i, Record: rec})
	}
	return records
}

// RecordFromCSVRow maps one row of the headered batch file. Expected
// headers: Date, Time, Sport, Event, Band, Conductor, Venue (any order,
// case-insensitive).
func RecordFromCSVRow(header, row []string) (EventRecord, error) {
	fields := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(row) {
			fields[strings.ToLower(strings.TrimSpace(name))] = row[i]
		}
	}
	rec := EventRecord{
		DateText:  fields["date"],
		TimeText:  fields["time"],
		Category:  fields["sport"],
		Opponent:  fields["event"],
		Ensemble:  fields["band"],
		Conductor: fields["conductor"],
		Venue:     fields["venue"],
	}
	if strings.TrimSpace(rec.DateText) == "" {
		return EventRecord{}, errors.New("missing date")
	}
	if strings.TrimSpace(rec.Venue) == "" {
		rec.Venue = "TBD"
	}
	return rec, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
