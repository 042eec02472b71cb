package calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/healthmoney/healthmoney/internal/config"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/httpclient"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event is the provider-side representation of a calendar event.
type Event struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
}

// EventTime carries either a timed start (DateTime) or an all-day
// start (Date).
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

// Display returns the best available start representation.
func (t EventTime) Display() string {
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}

type eventList struct {
	Items []Event `json:"items"`
}

// Client wraps the provider's calendar REST API. Every call is bound to
// the session-supplied OAuth access token; the client keeps no state.
type Client interface {
	CreateEvent(ctx context.Context, token string, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, token string, id string) error
	ListUpcomingEvents(ctx context.Context, token string) ([]Event, error)
}

type client struct {
	http    httpclient.Client
	baseURL string
}

// NewClient creates a calendar client against the configured provider
// base URL.
func NewClient(cfg *config.Configuration, httpClient httpclient.Client) Client {
	return &client{
		http:    httpClient,
		baseURL: cfg.Calendar.BaseURL,
	}
}

func (c *client) CreateEvent(ctx context.Context, token string, event *Event) (*Event, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to encode calendar event").
			Mark(ierr.ErrSystem)
	}

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method:  http.MethodPost,
		URL:     fmt.Sprintf("%s/calendars/primary/events", c.baseURL),
		Headers: c.authHeaders(token),
		Body:    body,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("calendar provider rejected the event").
			Mark(ierr.ErrHTTPClient)
	}

	var created Event
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to decode calendar provider response").
			Mark(ierr.ErrHTTPClient)
	}
	return &created, nil
}

func (c *client) DeleteEvent(ctx context.Context, token string, id string) error {
	_, err := c.http.Send(ctx, &httpclient.Request{
		Method:  http.MethodDelete,
		URL:     fmt.Sprintf("%s/calendars/primary/events/%s", c.baseURL, url.PathEscape(id)),
		Headers: c.authHeaders(token),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("calendar provider failed to delete the event").
			Mark(ierr.ErrHTTPClient)
	}
	return nil
}

func (c *client) ListUpcomingEvents(ctx context.Context, token string) ([]Event, error) {
	query := url.Values{}
	query.Set("timeMin", time.Now().UTC().Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")
	query.Set("maxResults", "10")

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method:  http.MethodGet,
		URL:     fmt.Sprintf("%s/calendars/primary/events?%s", c.baseURL, query.Encode()),
		Headers: c.authHeaders(token),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("calendar provider failed to list events").
			Mark(ierr.ErrHTTPClient)
	}

	var list eventList
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to decode calendar provider response").
			Mark(ierr.ErrHTTPClient)
	}
	return list.Items, nil
}

func (c *client) authHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}
