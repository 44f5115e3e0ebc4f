package schedule

import (
	"strings"
	"time"

	"brasscal/report"
)

// CallTime returns the time performers must be present, as a wall-clock
// offset before the event start. Offsets never cross a day boundary;
// the result stays on the start's own day.
func CallTime(start time.Time, category string) time.Time {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "vball", "hoc":
		return start.Add(-20 * time.Minute)
	case "mbb":
		return start.Add(-45 * time.Minute)
	case "wbb":
		return start.Add(-30 * time.Minute)
	}
	// No call-time offset for rehearsals and anything unrecognized.
	return start
}

// EndTime returns when the event is expected to finish. Unmatched
// categories fall back to two hours and are reported, since they usually
// mean a typo in the sheet.
func EndTime(start time.Time, category string, rep report.Reporter) time.Time {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "vball":
		return start.Add(2 * time.Hour)
	case "mbb", "wbb", "hoc":
		return start.Add(2*time.Hour + 30*time.Minute)
	case "rehearsal":
		// 50 minute rehearsals in spring.
		if start.Hour() == 17 && start.Minute() == 10 {
			return start.Add(50 * time.Minute)
		}
	default:
		rep.Warnf("no end-time rule for category %q, defaulting to 2 hours", category)
	}
	return start.Add(2 * time.Hour)
}
