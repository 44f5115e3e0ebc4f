package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Sentinel errors for the three ways a row's date/time can be rejected.
// Callers match with errors.Is and skip the row.
var (
	ErrDateParse      = errors.New("unparseable date")
	ErrTimeParse      = errors.New("unparseable start time")
	ErrTimeRangeParse = errors.New("unparseable time range")
)

const dateLayout = "January 2, 2006"

var (
	weekdayPrefix = regexp.MustCompile(`^[A-Za-z]+,\s*`)
	meridiemGlued = regexp.MustCompile(`(?i)(\d)(AM|PM)`)
)

// Interval is the resolved start/end pair for one event.
type Interval struct {
	Start time.Time
	End   time.Time
	// AllDay marks intervals produced from a missing or TBD time. The CSV
	// writer renders these as all-day rows with blank time fields.
	AllDay bool
	// ExplicitEnd is true when the source text carried a range, so the
	// end came from the sheet rather than a default duration.
	ExplicitEnd bool
}

// Parser resolves free-text date and time strings into intervals.
//
// The two duration fields preserve the two behaviors observed in the
// sheets this tool grew up around: a TBD row spans one hour from
// midnight, while a bare start time spans thirty minutes. They are
// separate knobs on purpose; do not merge them.
type Parser struct {
	TBDDuration  time.Duration
	BareDuration time.Duration
	Location     *time.Location
}

// New returns a Parser with the default durations.
func New() *Parser {
	return &Parser{
		TBDDuration:  time.Hour,
		BareDuration: 30 * time.Minute,
		Location:     time.Local,
	}
}

// ParseInterval resolves a date string like "Sunday, October 12, 2025"
// and a time string like "7:00 PM", "6PM-8PM" or "TBD" into an interval.
// The returned interval always satisfies End > Start: a degenerate or
// inverted range is coerced to one hour from Start.
func (p *Parser) ParseInterval(dateText, timeText string) (Interval, error) {
	day, err := p.parseDate(dateText)
	if err != nil {
		return Interval{}, err
	}

	trimmed := strings.TrimSpace(timeText)
	if trimmed == "" || strings.EqualFold(trimmed, "TBD") {
		iv := Interval{Start: day, End: day.Add(p.TBDDuration), AllDay: true}
		return coerce(iv), nil
	}

	if i := strings.Index(trimmed, "-"); i >= 0 {
		startClock, ok := parseClock(trimmed[:i])
		if !ok {
			return Interval{}, fmt.Errorf("%w: %q", ErrTimeRangeParse, timeText)
		}
		endClock, ok := parseClock(trimmed[i+1:])
		if !ok {
			return Interval{}, fmt.Errorf("%w: %q", ErrTimeRangeParse, timeText)
		}
		iv := Interval{Start: day.Add(startClock), End: day.Add(endClock), ExplicitEnd: true}
		return coerce(iv), nil
	}

	startClock, ok := parseClock(trimmed)
	if !ok {
		return Interval{}, fmt.Errorf("%w: %q", ErrTimeParse, timeText)
	}
	iv := Interval{Start: day.Add(startClock), End: day.Add(startClock + p.BareDuration)}
	return coerce(iv), nil
}

// parseDate strips an optional leading weekday ("Sunday, ") and parses
// the rest as "Month Day, Year", at midnight in the parser's location.
func (p *Parser) parseDate(dateText string) (time.Time, error) {
	loc := p.Location
	if loc == nil {
		loc = time.Local
	}
	cleaned := weekdayPrefix.ReplaceAllString(strings.TrimSpace(dateText), "")
	day, err := time.ParseInLocation(dateLayout, cleaned, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, dateText)
	}
	return day, nil
}

// parseClock turns a clock token like "7:00 PM", " 6PM " or "8 pm" into
// an offset from midnight. Internal spaces are dropped, a missing space
// before the AM/PM suffix is restored, then the h:mm and bare-hour
// layouts are tried in order.
func parseClock(token string) (time.Duration, bool) {
	t := strings.ReplaceAll(strings.TrimSpace(token), " ", "")
	t = meridiemGlued.ReplaceAllString(t, "$1 $2")
	t = strings.ToUpper(t)
	for _, layout := range []string{"3:04 PM", "3 PM"} {
		parsed, err := time.Parse(layout, t)
		if err != nil {
			continue
		}
		return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, true
	}
	return 0, false
}

func coerce(iv Interval) Interval {
	if !iv.End.After(iv.Start) {
		iv.End = iv.Start.Add(time.Hour)
	}
	return iv
}
