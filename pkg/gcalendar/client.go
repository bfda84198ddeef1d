package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service for a single linked account.
type Client struct {
	service *calendar.Service
}

// NewClientFromToken creates a Calendar client from a user's OAuth token.
// The token source refreshes automatically via the supplied config.
func NewClientFromToken(ctx context.Context, cfg *oauth2.Config, tok *oauth2.Token) (*Client, error) {
	if cfg == nil || tok == nil {
		return nil, fmt.Errorf("oauth config and token are required")
	}
	tokenSource := cfg.TokenSource(ctx, tok)
	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event from an already resolved
// (start, end) pair. Times are serialized as RFC3339 with explicit offset
// alongside the IANA zone string; a bare UTC instant is never substituted
// for the user's zone.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		Location:    created.Location,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns upcoming single events ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, fromAPIEvent(item))
	}
	return events, nil
}

// UpdateEvent patches an existing event. Zero StartTime leaves the scheduled
// slot untouched; an empty Summary keeps the current one.
func (c *Client) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	patch := &calendar.Event{}
	if !req.StartTime.IsZero() {
		patch.Start = &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
		patch.End = &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
	}
	if req.Summary != "" {
		patch.Summary = req.Summary
	}

	updated, err := c.service.Events.Patch(calendarID(req.CalendarID), req.EventID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	out := fromAPIEvent(updated)
	if !req.StartTime.IsZero() {
		out.StartTime = req.StartTime
		out.EndTime = req.EndTime
	}
	return &out, nil
}

// DeleteEvent removes an event from the calendar.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func fromAPIEvent(item *calendar.Event) Event {
	e := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		HtmlLink:    item.HtmlLink,
	}
	if item.Start != nil && item.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
			e.StartTime = t
		}
	}
	if item.End != nil && item.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
			e.EndTime = t
		}
	}
	return e
}
