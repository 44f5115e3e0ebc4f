package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"brasscal/config"
	"brasscal/report"
	"brasscal/schedule"
	"brasscal/timeparse"
)

// dateTimeLayout is the zone-less RFC3339 form the calendar API pairs
// with an explicit TimeZone field.
const dateTimeLayout = "2006-01-02T15:04:05"

// Service wraps the Google Calendar API.
type Service struct {
	service *calendar.Service
}

// NewService creates a Service from an authenticated HTTP client.
func NewService(ctx context.Context, client *http.Client) (*Service, error) {
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return &Service{service: srv}, nil
}

func (s *Service) Get(calendarID, eventID string) (*calendar.Event, error) {
	return s.service.Events.Get(calendarID, eventID).Do()
}

func (s *Service) Insert(calendarID string, body *calendar.Event) (string, error) {
	created, err := s.service.Events.Insert(calendarID, body).Do()
	if err != nil {
		return "", fmt.Errorf("inserting event: %w", err)
	}
	return created.Id, nil
}

func (s *Service) Patch(calendarID, eventID string, body *calendar.Event) error {
	if _, err := s.service.Events.Patch(calendarID, eventID, body).Do(); err != nil {
		return fmt.Errorf("patching event %s: %w", eventID, err)
	}
	return nil
}

// IsNotFound reports whether err is the calendar API telling us an event
// no longer exists.
func IsNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// BuildMutation assembles the calendar event body for one record. The
// event's end is the interval end when the sheet gave an explicit range
// (or a TBD default), otherwise the category-derived end time; either
// way a degenerate span is coerced to one hour.
func BuildMutation(rec schedule.EventRecord, iv timeparse.Interval, rep report.Reporter, cfg *config.Config) *calendar.Event {
	callTime := schedule.CallTime(iv.Start, rec.Category)
	title, description := schedule.FormatTitleDescription(
		rec.Category, rec.Opponent, rec.Ensemble, rec.Conductor, callTime, iv.Start)

	end := iv.End
	if !iv.ExplicitEnd && !iv.AllDay {
		end = schedule.EndTime(iv.Start, rec.Category, rep)
	}
	if !end.After(iv.Start) {
		end = iv.Start.Add(time.Hour)
	}

	return &calendar.Event{
		Summary:     title,
		Location:    rec.Venue,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: iv.Start.Format(dateTimeLayout),
			TimeZone: cfg.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(dateTimeLayout),
			TimeZone: cfg.Timezone,
		},
		ColorId: schedule.ColorID(cfg.BandColors, rec.Ensemble, cfg.DefaultBand),
	}
}
