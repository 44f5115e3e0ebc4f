package sheets

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"brasscal/report"
)

// RowSource supplies ordered rows of string cells from a tabular backend.
type RowSource interface {
	// ReadRange returns the non-empty rows in the given range. A backend
	// failure degrades to an empty result with a diagnostic; it does not
	// abort the run.
	ReadRange(spreadsheetID, readRange string) ([][]string, error)
}

// Service wraps the Google Sheets API.
type Service struct {
	service *sheetsapi.Service
	rep     report.Reporter
}

// NewService creates a Service from an authenticated HTTP client.
func NewService(ctx context.Context, client *http.Client, rep report.Reporter) (*Service, error) {
	srv, err := sheetsapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &Service{service: srv, rep: rep}, nil
}

// ReadRange fetches rows from the given range, dropping rows whose every
// cell is blank. Short rows come back short; the Sheets API truncates at
// the last non-empty cell.
func (s *Service) ReadRange(spreadsheetID, readRange string) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Do()
	if err != nil {
		s.rep.Warnf("accessing sheet (ID: %s, range: %s): %v", spreadsheetID, readRange, err)
		return nil, nil
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		blank := true
		for i, c := range raw {
			row[i] = fmt.Sprint(c)
			if strings.TrimSpace(row[i]) != "" {
				blank = false
			}
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		s.rep.Warnf("no valid data found in spreadsheet ID %s at range %s", spreadsheetID, readRange)
	}
	return rows, nil
}

// ReadColumn fetches a single-column range, preserving blank entries so
// row positions survive. Unlike ReadRange, a backend failure here is an
// error; the caller decides how to degrade.
func (s *Service) ReadColumn(spreadsheetID, readRange string) ([]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Do()
	if err != nil {
		return nil, fmt.Errorf("reading column %s: %w", readRange, err)
	}
	col := make([]string, len(resp.Values))
	for i, raw := range resp.Values {
		if len(raw) > 0 {
			col[i] = fmt.Sprint(raw[0])
		}
	}
	return col, nil
}

// WriteCell writes a single value into the given cell range.
func (s *Service) WriteCell(spreadsheetID, cellRange, value string) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{{value}}}
	_, err := s.service.Spreadsheets.Values.
		Update(spreadsheetID, cellRange, body).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		return fmt.Errorf("updating cell %s: %w", cellRange, err)
	}
	return nil
}
