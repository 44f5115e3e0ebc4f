package schedule

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTitleDescription(t *testing.T) {
	start := time.Date(2026, 1, 5, 19, 0, 0, 0, time.Local)
	call := CallTime(start, "mbb")

	title, description := FormatTitleDescription("mbb", "Rival University", "White", "John Doe", call, start)

	wantTitle := "Brass - White: mbb vs Rival University @ 7:00 PM"
	if title != wantTitle {
		t.Errorf("title = %q, want %q", title, wantTitle)
	}
	wantDescription := "Call Time: 6:15 PM\nStart Time: 7:00 PM\nConductor: John Doe"
	if description != wantDescription {
		t.Errorf("description = %q, want %q", description, wantDescription)
	}
}

func TestFormatTitleRehearsal(t *testing.T) {
	start := time.Date(2026, 3, 2, 17, 10, 0, 0, time.Local)

	tests := []struct {
		category string
		wantVs   bool
	}{
		{"rehearsal", false},
		{"Rehearsal", false},
		{"REHEARSAL", false},
		{"mbb", true},
		{"vball", true},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			title, _ := FormatTitleDescription(tt.category, "Rival", "Green", "Jane Smith", start, start)
			gotVs := strings.Contains(title, " vs ")
			if gotVs != tt.wantVs {
				t.Errorf("title %q: has vs clause = %v, want %v", title, gotVs, tt.wantVs)
			}
		})
	}
}

func TestFormatNoLeadingZero(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 5, 0, 0, time.Local)

	title, _ := FormatTitleDescription("mbb", "Rival", "White", "John Doe", start, start)
	if strings.Contains(title, "09:05") {
		t.Errorf("title %q has a leading zero on the hour", title)
	}
	if !strings.Contains(title, "9:05 AM") {
		t.Errorf("title %q missing expected time", title)
	}
}
