package mapping

import (
	"fmt"

	"brasscal/report"
)

// ColumnAPI is the slice of the spreadsheet backend the sheet store
// needs: whole-column reads that preserve blanks, and single-cell writes.
type ColumnAPI interface {
	ReadColumn(spreadsheetID, readRange string) ([]string, error)
	WriteCell(spreadsheetID, cellRange, value string) error
}

// SheetStore keeps event IDs in column A of a mapping spreadsheet tab.
// Row index 0 of the data corresponds to sheet row 2.
type SheetStore struct {
	api           ColumnAPI
	spreadsheetID string
	sheetName     string
	rep           report.Reporter
}

func NewSheetStore(api ColumnAPI, spreadsheetID, sheetName string, rep report.Reporter) *SheetStore {
	return &SheetStore{
		api:           api,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		rep:           rep,
	}
}

// ReadIDs reads the mapping column. A read failure degrades to an empty
// mapping with a warning, so every event is treated as new.
func (s *SheetStore) ReadIDs() ([]string, error) {
	readRange := fmt.Sprintf("%s!A2:A", s.sheetName)
	ids, err := s.api.ReadColumn(s.spreadsheetID, readRange)
	if err != nil {
		s.rep.Warnf("could not read event ID mapping sheet, assuming all events are new: %v", err)
		return nil, nil
	}
	return ids, nil
}

// WriteID records eventID for rowIndex, or clears the cell when eventID
// is empty. Unlike reads, a write failure is a real error.
func (s *SheetStore) WriteID(rowIndex int, eventID string) error {
	cellRange := fmt.Sprintf("%s!A%d", s.sheetName, rowIndex+2)
	if err := s.api.WriteCell(s.spreadsheetID, cellRange, eventID); err != nil {
		return fmt.Errorf("updating mapping sheet at row %d: %w", rowIndex+2, err)
	}
	return nil
}
