package service

import (
	"context"

	"github.com/healthmoney/healthmoney/internal/api/dto"
	"github.com/healthmoney/healthmoney/internal/calendar"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/types"
	"github.com/samber/lo"
)

// CalendarService wraps the external calendar provider using the
// session-supplied OAuth access token.
type CalendarService interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
	ListUpcomingEvents(ctx context.Context) ([]dto.EventSummary, error)
}

type calendarService struct {
	logger *logger.Logger
	client calendar.Client
}

func NewCalendarService(client calendar.Client, logger *logger.Logger) CalendarService {
	return &calendarService{
		logger: logger,
		client: client,
	}
}

func (s *calendarService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.client.CreateEvent(ctx, token, &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Start:       calendar.EventTime{DateTime: req.Start},
		End:         calendar.EventTime{DateTime: req.End},
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateEventResponse{ID: created.ID}, nil
}

func (s *calendarService) DeleteEvent(ctx context.Context, id string) error {
	token, err := s.accessToken(ctx)
	if err != nil {
		return err
	}

	return s.client.DeleteEvent(ctx, token, id)
}

func (s *calendarService) ListUpcomingEvents(ctx context.Context) ([]dto.EventSummary, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.client.ListUpcomingEvents(ctx, token)
	if err != nil {
		return nil, err
	}

	// Drop entries without a title, matching the simplified listing shape
	withTitle := lo.Filter(events, func(e calendar.Event, _ int) bool {
		return e.Summary != ""
	})

	return lo.Map(withTitle, func(e calendar.Event, _ int) dto.EventSummary {
		return dto.EventSummary{
			ID:    e.ID,
			Title: e.Summary,
			Start: e.Start.Display(),
		}
	}), nil
}

func (s *calendarService) accessToken(ctx context.Context) (string, error) {
	token := types.GetAccessToken(ctx)
	if token == "" {
		return "", ierr.NewError("missing calendar access token").
			WithHint("You are not logged in or your session expired. Sign in again to use the calendar.").
			Mark(ierr.ErrPermissionDenied)
	}
	return token, nil
}
