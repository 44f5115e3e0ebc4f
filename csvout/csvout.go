package csvout

import (
	"encoding/csv"
	"fmt"
	"io"

	"brasscal/report"
	"brasscal/schedule"
	"brasscal/timeparse"
)

// Header is the column set Google Calendar's CSV import understands.
var Header = []string{
	"Subject",
	"Start Date",
	"Start Time",
	"End Date",
	"End Time",
	"All Day Event",
	"Description",
	"Location",
	"Private",
}

const (
	csvDateLayout = "01/02/2006"
	csvTimeLayout = "03:04 PM"
)

// Writer renders records as calendar-import CSV rows.
type Writer struct {
	parser *timeparse.Parser
	rep    report.Reporter
}

func NewWriter(parser *timeparse.Parser, rep report.Reporter) *Writer {
	return &Writer{parser: parser, rep: rep}
}

// WriteEvents writes the header and one row per record that resolves to
// a valid interval. Records that fail to parse are reported and skipped.
func (w *Writer) WriteEvents(out io.Writer, records []schedule.EventRecord) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, rec := range records {
		row, err := w.row(rec)
		if err != nil {
			w.rep.Warnf("unable to create CSV row for event on %q at %q: %v",
				rec.DateText, rec.TimeText, err)
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// row builds one import row: the event block runs from call time to the
// category-derived end time. A TBD record becomes an all-day row with
// blank time fields.
func (w *Writer) row(rec schedule.EventRecord) ([]string, error) {
	iv, err := w.parser.ParseInterval(rec.DateText, rec.TimeText)
	if err != nil {
		return nil, err
	}

	callTime := schedule.CallTime(iv.Start, rec.Category)
	endTime := schedule.EndTime(iv.Start, rec.Category, w.rep)
	title, description := schedule.FormatTitleDescription(
		rec.Category, rec.Opponent, rec.Ensemble, rec.Conductor, callTime, iv.Start)

	startTimeStr := callTime.Format(csvTimeLayout)
	endTimeStr := endTime.Format(csvTimeLayout)
	allDay := "False"
	if iv.AllDay {
		startTimeStr, endTimeStr = "", ""
		allDay = "True"
	}

	return []string{
		title,
		iv.Start.Format(csvDateLayout),
		startTimeStr,
		iv.End.Format(csvDateLayout),
		endTimeStr,
		allDay,
		description,
		rec.Venue,
		"True",
	}, nil
}

// ReadEvents parses the headered batch file (Date, Time, Sport, Event,
// Band, Conductor, Venue) into records. Bad rows are reported and
// dropped.
func ReadEvents(in io.Reader, rep report.Reporter) ([]schedule.EventRecord, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading input CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]schedule.EventRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := schedule.RecordFromCSVRow(header, row)
		if err != nil {
			rep.Skipf(i, "%v", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
