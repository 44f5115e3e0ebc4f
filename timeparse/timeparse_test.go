package timeparse

import (
	"errors"
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	p := New()

	tests := []struct {
		name      string
		dateText  string
		timeText  string
		wantStart time.Time
		wantEnd   time.Time
		wantAll   bool
		wantErr   error
	}{
		{
			name:      "Simple start time",
			dateText:  "Monday, January 5, 2026",
			timeText:  "7:00 PM",
			wantStart: time.Date(2026, 1, 5, 19, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, 1, 5, 19, 30, 0, 0, time.Local),
		},
		{
			name:      "No weekday prefix",
			dateText:  "October 12, 2025",
			timeText:  "7:00 PM",
			wantStart: time.Date(2025, 10, 12, 19, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 19, 30, 0, 0, time.Local),
		},
		{
			name:      "Range without minutes or spaces",
			dateText:  "Sunday, October 12, 2025",
			timeText:  "6PM-8PM",
			wantStart: time.Date(2025, 10, 12, 18, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 20, 0, 0, 0, time.Local),
		},
		{
			name:      "Range with lowercase meridiem",
			dateText:  "Sunday, October 12, 2025",
			timeText:  "6:30 pm - 8:15 pm",
			wantStart: time.Date(2025, 10, 12, 18, 30, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 20, 15, 0, 0, time.Local),
		},
		{
			name:      "Inverted range coerced to one hour",
			dateText:  "Sunday, October 12, 2025",
			timeText:  "8PM-6PM",
			wantStart: time.Date(2025, 10, 12, 20, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 21, 0, 0, 0, time.Local),
		},
		{
			name:      "Zero-length range coerced to one hour",
			dateText:  "Sunday, October 12, 2025",
			timeText:  "6PM-6PM",
			wantStart: time.Date(2025, 10, 12, 18, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 19, 0, 0, 0, time.Local),
		},
		{
			name:      "TBD is an hour from midnight",
			dateText:  "Sunday, October 12, 2025",
			timeText:  "TBD",
			wantStart: time.Date(2025, 10, 12, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 1, 0, 0, 0, time.Local),
			wantAll:   true,
		},
		{
			name:      "TBD any case with whitespace",
			dateText:  "Sunday, October 12, 2025",
			timeText:  "  tbd ",
			wantStart: time.Date(2025, 10, 12, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 1, 0, 0, 0, time.Local),
			wantAll:   true,
		},
		{
			name:      "Empty time treated as TBD",
			dateText:  "Sunday, October 12, 2025",
			timeText:  "",
			wantStart: time.Date(2025, 10, 12, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 1, 0, 0, 0, time.Local),
			wantAll:   true,
		},
		{
			name:      "Midnight without minutes",
			dateText:  "Sunday, October 12, 2025",
			timeText:  "12 AM",
			wantStart: time.Date(2025, 10, 12, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, 10, 12, 0, 30, 0, 0, time.Local),
		},
		{
			name:     "Malformed date",
			dateText: "TBD-free row",
			timeText: "7:00 PM",
			wantErr:  ErrDateParse,
		},
		{
			name:     "Day-first date rejected",
			dateText: "12 October 2025",
			timeText: "7:00 PM",
			wantErr:  ErrDateParse,
		},
		{
			name:     "Malformed start time",
			dateText: "Sunday, October 12, 2025",
			timeText: "sevenish",
			wantErr:  ErrTimeParse,
		},
		{
			name:     "Malformed range end",
			dateText: "Sunday, October 12, 2025",
			timeText: "6PM-late",
			wantErr:  ErrTimeRangeParse,
		},
		{
			name:     "Malformed range start",
			dateText: "Sunday, October 12, 2025",
			timeText: "early-8PM",
			wantErr:  ErrTimeRangeParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := p.ParseInterval(tt.dateText, tt.timeText)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseInterval() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInterval() unexpected error: %v", err)
			}
			if !iv.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", iv.Start, tt.wantStart)
			}
			if !iv.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", iv.End, tt.wantEnd)
			}
			if iv.AllDay != tt.wantAll {
				t.Errorf("AllDay = %v, want %v", iv.AllDay, tt.wantAll)
			}
			if !iv.End.After(iv.Start) {
				t.Errorf("invariant violated: End %v not after Start %v", iv.End, iv.Start)
			}
		})
	}
}

func TestParseIntervalBareDuration(t *testing.T) {
	p := New()
	p.BareDuration = time.Hour

	iv, err := p.ParseInterval("Monday, January 5, 2026", "7:00 PM")
	if err != nil {
		t.Fatalf("ParseInterval() unexpected error: %v", err)
	}
	want := time.Date(2026, 1, 5, 20, 0, 0, 0, time.Local)
	if !iv.End.Equal(want) {
		t.Errorf("End = %v, want %v", iv.End, want)
	}
}

func TestParseIntervalExplicitEnd(t *testing.T) {
	p := New()

	iv, err := p.ParseInterval("Sunday, October 12, 2025", "6PM-8PM")
	if err != nil {
		t.Fatalf("ParseInterval() unexpected error: %v", err)
	}
	if !iv.ExplicitEnd {
		t.Error("ExplicitEnd = false for a range input")
	}

	iv, err = p.ParseInterval("Sunday, October 12, 2025", "6PM")
	if err != nil {
		t.Fatalf("ParseInterval() unexpected error: %v", err)
	}
	if iv.ExplicitEnd {
		t.Error("ExplicitEnd = true for a bare start time")
	}
}

// Re-parsing the formatted form of a parsed date must yield the same
// calendar date.
func TestParseDateIdempotent(t *testing.T) {
	p := New()

	for _, dateText := range []string{
		"Sunday, October 12, 2025",
		"January 5, 2026",
		"Wednesday, February 29, 2024",
	} {
		first, err := p.ParseInterval(dateText, "TBD")
		if err != nil {
			t.Fatalf("ParseInterval(%q) unexpected error: %v", dateText, err)
		}
		formatted := first.Start.Format("January 2, 2006")
		second, err := p.ParseInterval(formatted, "TBD")
		if err != nil {
			t.Fatalf("ParseInterval(%q) unexpected error: %v", formatted, err)
		}
		if !first.Start.Equal(second.Start) {
			t.Errorf("re-parse of %q: got %v, want %v", formatted, second.Start, first.Start)
		}
	}
}
