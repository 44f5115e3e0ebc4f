package syncer

import (
	"fmt"
	"strings"

	"brasscal/config"
	"brasscal/gcal"
	"brasscal/mapping"
	"brasscal/report"
	"brasscal/schedule"
	"brasscal/timeparse"
)

// Engine reconciles schedule records against a calendar, using the
// row→event-ID mapping to decide create versus update and to recover
// from events deleted out from under it.
type Engine struct {
	cal    gcal.CalendarAPI
	ids    mapping.Store
	parser *timeparse.Parser
	rep    report.Reporter
	cfg    *config.Config
}

func New(cal gcal.CalendarAPI, ids mapping.Store, parser *timeparse.Parser, rep report.Reporter, cfg *config.Config) *Engine {
	return &Engine{cal: cal, ids: ids, parser: parser, rep: rep, cfg: cfg}
}

// Sync processes records strictly in input order. Each record ends the
// pass reconciled (a live calendar event with current content, and its
// ID in the mapping) or reported: a failed row never stops the run, and
// its mapping entry is left as it was.
func (e *Engine) Sync(records []schedule.IndexedRecord) error {
	known, err := e.ids.ReadIDs()
	if err != nil {
		return fmt.Errorf("reading event ID mapping: %w", err)
	}

	for _, ir := range records {
		eventID := ""
		if ir.Row < len(known) {
			eventID = known[ir.Row]
		}
		e.syncOne(ir.Row, ir.Record, eventID)
	}
	return nil
}

func (e *Engine) syncOne(rowIndex int, rec schedule.EventRecord, eventID string) {
	iv, err := e.parser.ParseInterval(rec.DateText, rec.TimeText)
	if err != nil {
		e.rep.Skipf(rowIndex, "invalid date/time: %v", err)
		return
	}

	body := gcal.BuildMutation(rec, iv, e.rep, e.cfg)
	calendarID := e.calendarFor(rec.Ensemble)

	if eventID != "" {
		_, err := e.cal.Get(calendarID, eventID)
		switch {
		case err == nil:
			if err := e.cal.Patch(calendarID, eventID, body); err != nil {
				e.rep.Errorf("row %d: updating event %s: %v", rowIndex+2, eventID, err)
				return
			}
			e.rep.Infof("row %d: updated %q", rowIndex+2, body.Summary)
			return
		case gcal.IsNotFound(err):
			// The event was deleted behind our back. Clear the stale
			// mapping entry and fall through to creation.
			e.rep.Warnf("row %d: event %s no longer on calendar, re-creating", rowIndex+2, eventID)
			if err := e.ids.WriteID(rowIndex, ""); err != nil {
				e.rep.Errorf("row %d: clearing mapping entry: %v", rowIndex+2, err)
				return
			}
		default:
			e.rep.Errorf("row %d: looking up event %s: %v", rowIndex+2, eventID, err)
			return
		}
	}

	newID, err := e.cal.Insert(calendarID, body)
	if err != nil {
		e.rep.Errorf("row %d: creating event %q: %v", rowIndex+2, body.Summary, err)
		return
	}
	if err := e.ids.WriteID(rowIndex, newID); err != nil {
		e.rep.Errorf("row %d: recording event ID %s: %v", rowIndex+2, newID, err)
		return
	}
	e.rep.Infof("row %d: created %q", rowIndex+2, body.Summary)
}

// calendarFor picks the calendar for an ensemble, falling back to the
// default (all-events) calendar when no dedicated one is configured.
func (e *Engine) calendarFor(ensemble string) string {
	key := strings.ToLower(strings.TrimSpace(ensemble))
	if id, ok := e.cfg.CalendarIDs[key]; ok && id != "" {
		return id
	}
	return e.cfg.CalendarIDs[e.cfg.DefaultCalendar]
}
