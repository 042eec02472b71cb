package calendar

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/healthmoney/healthmoney/internal/config"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(mock *testutil.MockHTTPClient) Client {
	cfg := &config.Configuration{
		Calendar: config.GoogleCalendarConfig{
			BaseURL: "https://www.googleapis.com/calendar/v3",
		},
	}
	return NewClient(cfg, mock)
}

func TestCreateEventSendsBearerToken(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/calendars/primary/events", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"id":"evt_1","summary":"Consulta"}`),
	})
	client := newTestClient(mock)

	created, err := client.CreateEvent(context.Background(), "ya29.token", &Event{
		Summary: "Consulta",
		Start:   EventTime{DateTime: "2025-03-20T14:00:00-03:00"},
		End:     EventTime{DateTime: "2025-03-20T15:00:00-03:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "evt_1", created.ID)

	req := mock.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://www.googleapis.com/calendar/v3/calendars/primary/events", req.URL)
	assert.Equal(t, "Bearer ya29.token", req.Headers["Authorization"])
	assert.Contains(t, string(req.Body), `"summary":"Consulta"`)
}

func TestDeleteEventEscapesID(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/calendars/primary/events/evt%2F1", testutil.MockResponse{
		StatusCode: http.StatusNoContent,
	})
	client := newTestClient(mock)

	err := client.DeleteEvent(context.Background(), "ya29.token", "evt/1")
	require.NoError(t, err)

	req := mock.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.True(t, strings.HasSuffix(req.URL, "/calendars/primary/events/evt%2F1"))
}

func TestListUpcomingEventsQuery(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/calendars/primary/events", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"items":[]}`),
	})
	client := newTestClient(mock)

	_, err := client.ListUpcomingEvents(context.Background(), "ya29.token")
	require.NoError(t, err)

	req := mock.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, http.MethodGet, req.Method)

	parsed, err := url.Parse(req.URL)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "true", query.Get("singleEvents"))
	assert.Equal(t, "startTime", query.Get("orderBy"))
	assert.Equal(t, "10", query.Get("maxResults"))
	assert.NotEmpty(t, query.Get("timeMin"))
	assert.Equal(t, "Bearer ya29.token", req.Headers["Authorization"])
}

func TestListUpcomingEventsParsesItems(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/calendars/primary/events", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body: []byte(`{"items":[
			{"id":"evt_1","summary":"Consulta","start":{"dateTime":"2025-03-20T14:00:00-03:00"}},
			{"id":"evt_2","summary":"Feriado","start":{"date":"2025-04-21"}}
		]}`),
	})
	client := newTestClient(mock)

	events, err := client.ListUpcomingEvents(context.Background(), "ya29.token")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "evt_1", events[0].ID)
	assert.Equal(t, "2025-03-20T14:00:00-03:00", events[0].Start.Display())
	assert.Equal(t, "2025-04-21", events[1].Start.Display())
}

func TestCreateEventPropagatesProviderError(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/calendars/primary/events", testutil.MockResponse{
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"error":"invalid_token"}`),
	})
	client := newTestClient(mock)

	_, err := client.CreateEvent(context.Background(), "expired", &Event{Summary: "x"})
	require.Error(t, err)
	assert.True(t, ierr.IsHTTPClient(err))
}
