package gcal

import (
	"testing"
	"time"

	"brasscal/config"
	"brasscal/report"
	"brasscal/schedule"
	"brasscal/timeparse"
)

func testConfig() *config.Config {
	return config.Default()
}

func mbbRecord() schedule.EventRecord {
	return schedule.EventRecord{
		DateText:  "Monday, January 5, 2026",
		TimeText:  "7:00 PM",
		Category:  "mbb",
		Opponent:  "Rival University",
		Ensemble:  "White",
		Conductor: "John Doe",
		Venue:     "Home Stadium",
	}
}

func TestBuildMutation(t *testing.T) {
	rec := mbbRecord()
	iv, err := timeparse.New().ParseInterval(rec.DateText, rec.TimeText)
	if err != nil {
		t.Fatalf("ParseInterval() unexpected error: %v", err)
	}

	ev := BuildMutation(rec, iv, report.Nop{}, testConfig())

	if ev.Summary != "Brass - White: mbb vs Rival University @ 7:00 PM" {
		t.Errorf("Summary = %q", ev.Summary)
	}
	if ev.Location != "Home Stadium" {
		t.Errorf("Location = %q", ev.Location)
	}
	if ev.Start.DateTime != "2026-01-05T19:00:00" {
		t.Errorf("Start.DateTime = %q", ev.Start.DateTime)
	}
	// Bare start time: the end comes from the category rules, 2.5 hours
	// for mbb.
	if ev.End.DateTime != "2026-01-05T21:30:00" {
		t.Errorf("End.DateTime = %q", ev.End.DateTime)
	}
	if ev.Start.TimeZone != "America/New_York" || ev.End.TimeZone != "America/New_York" {
		t.Errorf("TimeZone = %q / %q, want America/New_York", ev.Start.TimeZone, ev.End.TimeZone)
	}
	if ev.ColorId != "8" {
		t.Errorf("ColorId = %q, want the White color \"8\"", ev.ColorId)
	}
	want := "Call Time: 6:15 PM\nStart Time: 7:00 PM\nConductor: John Doe"
	if ev.Description != want {
		t.Errorf("Description = %q, want %q", ev.Description, want)
	}
}

func TestBuildMutationExplicitRange(t *testing.T) {
	rec := mbbRecord()
	rec.TimeText = "6PM-8PM"
	iv, err := timeparse.New().ParseInterval(rec.DateText, rec.TimeText)
	if err != nil {
		t.Fatalf("ParseInterval() unexpected error: %v", err)
	}

	ev := BuildMutation(rec, iv, report.Nop{}, testConfig())

	// An explicit range wins over the category-derived end time.
	if ev.End.DateTime != "2026-01-05T20:00:00" {
		t.Errorf("End.DateTime = %q, want the sheet's 8 PM", ev.End.DateTime)
	}
}

func TestBuildMutationColorFallback(t *testing.T) {
	rec := mbbRecord()
	rec.Ensemble = "Blue"
	iv, err := timeparse.New().ParseInterval(rec.DateText, rec.TimeText)
	if err != nil {
		t.Fatalf("ParseInterval() unexpected error: %v", err)
	}

	ev := BuildMutation(rec, iv, report.Nop{}, testConfig())
	if ev.ColorId != "7" {
		t.Errorf("ColorId = %q, want the Master fallback \"7\"", ev.ColorId)
	}
}

func TestBuildMutationTBD(t *testing.T) {
	rec := mbbRecord()
	rec.TimeText = "TBD"
	iv, err := timeparse.New().ParseInterval(rec.DateText, rec.TimeText)
	if err != nil {
		t.Fatalf("ParseInterval() unexpected error: %v", err)
	}

	ev := BuildMutation(rec, iv, report.Nop{}, testConfig())

	if ev.Start.DateTime != "2026-01-05T00:00:00" {
		t.Errorf("Start.DateTime = %q, want midnight", ev.Start.DateTime)
	}
	if ev.End.DateTime != "2026-01-05T01:00:00" {
		t.Errorf("End.DateTime = %q, want one hour after midnight", ev.End.DateTime)
	}
}

func TestBuildMutationEndNeverBeforeStart(t *testing.T) {
	rec := mbbRecord()
	iv := timeparse.Interval{
		Start:       time.Date(2026, 1, 5, 19, 0, 0, 0, time.Local),
		End:         time.Date(2026, 1, 5, 18, 0, 0, 0, time.Local),
		ExplicitEnd: true,
	}

	ev := BuildMutation(rec, iv, report.Nop{}, testConfig())
	if ev.End.DateTime != "2026-01-05T20:00:00" {
		t.Errorf("End.DateTime = %q, want start plus one hour", ev.End.DateTime)
	}
}
