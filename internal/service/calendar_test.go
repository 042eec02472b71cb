package service

import (
	"context"
	"testing"

	"github.com/healthmoney/healthmoney/internal/api/dto"
	"github.com/healthmoney/healthmoney/internal/calendar"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/testutil"
	"github.com/healthmoney/healthmoney/internal/types"
	"github.com/stretchr/testify/suite"
)

type fakeCalendarClient struct {
	created    []*calendar.Event
	deletedIDs []string
	listResult []calendar.Event
	lastToken  string
}

func (f *fakeCalendarClient) CreateEvent(ctx context.Context, token string, event *calendar.Event) (*calendar.Event, error) {
	f.lastToken = token
	f.created = append(f.created, event)
	created := *event
	created.ID = "evt_1"
	return &created, nil
}

func (f *fakeCalendarClient) DeleteEvent(ctx context.Context, token string, id string) error {
	f.lastToken = token
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeCalendarClient) ListUpcomingEvents(ctx context.Context, token string) ([]calendar.Event, error) {
	f.lastToken = token
	return f.listResult, nil
}

type CalendarServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CalendarService
	client  *fakeCalendarClient
}

func TestCalendarService(t *testing.T) {
	suite.Run(t, new(CalendarServiceSuite))
}

func (s *CalendarServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.client = &fakeCalendarClient{}
	s.service = NewCalendarService(s.client, s.GetLogger())
}

func (s *CalendarServiceSuite) authedContext() context.Context {
	return context.WithValue(s.GetContext(), types.CtxAccessToken, "ya29.token")
}

func (s *CalendarServiceSuite) TestCreateEvent() {
	resp, err := s.service.CreateEvent(s.authedContext(), dto.CreateEventRequest{
		Title:       "Consulta Maria Silva",
		Description: "Retorno",
		Start:       "2025-03-20T14:00:00-03:00",
		End:         "2025-03-20T15:00:00-03:00",
	})
	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("evt_1", resp.ID)

	s.Equal("ya29.token", s.client.lastToken)
	s.Require().Len(s.client.created, 1)
	s.Equal("Consulta Maria Silva", s.client.created[0].Summary)
	s.Equal("Retorno", s.client.created[0].Description)
	s.Equal("2025-03-20T14:00:00-03:00", s.client.created[0].Start.DateTime)
}

func (s *CalendarServiceSuite) TestCreateEventRequiresToken() {
	resp, err := s.service.CreateEvent(s.GetContext(), dto.CreateEventRequest{
		Title: "Consulta",
		Start: "2025-03-20T14:00:00-03:00",
		End:   "2025-03-20T15:00:00-03:00",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsPermissionDenied(err))
	s.Empty(s.client.created)
}

func (s *CalendarServiceSuite) TestCreateEventValidation() {
	resp, err := s.service.CreateEvent(s.authedContext(), dto.CreateEventRequest{
		Title: "",
		Start: "2025-03-20T14:00:00-03:00",
		End:   "2025-03-20T15:00:00-03:00",
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *CalendarServiceSuite) TestDeleteEvent() {
	err := s.service.DeleteEvent(s.authedContext(), "evt_9")
	s.NoError(err)
	s.Equal([]string{"evt_9"}, s.client.deletedIDs)
}

func (s *CalendarServiceSuite) TestDeleteEventRequiresToken() {
	err := s.service.DeleteEvent(s.GetContext(), "evt_9")
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
	s.Empty(s.client.deletedIDs)
}

func (s *CalendarServiceSuite) TestListUpcomingEventsDropsUntitled() {
	s.client.listResult = []calendar.Event{
		{ID: "evt_1", Summary: "Consulta", Start: calendar.EventTime{DateTime: "2025-03-20T14:00:00-03:00"}},
		{ID: "evt_2", Summary: "", Start: calendar.EventTime{DateTime: "2025-03-21T14:00:00-03:00"}},
		{ID: "evt_3", Summary: "Feriado", Start: calendar.EventTime{Date: "2025-04-21"}},
	}

	events, err := s.service.ListUpcomingEvents(s.authedContext())
	s.NoError(err)
	s.Require().Len(events, 2)
	s.Equal("evt_1", events[0].ID)
	s.Equal("2025-03-20T14:00:00-03:00", events[0].Start)

	// All-day events fall back to the date form
	s.Equal("evt_3", events[1].ID)
	s.Equal("2025-04-21", events[1].Start)
}

func (s *CalendarServiceSuite) TestListUpcomingEventsRequiresToken() {
	events, err := s.service.ListUpcomingEvents(s.GetContext())
	s.Error(err)
	s.Nil(events)
	s.True(ierr.IsPermissionDenied(err))
}
