package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthmoney/healthmoney/internal/api/dto"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/service"
)

type CalendarHandler struct {
	calendarService service.CalendarService
	logger          *logger.Logger
}

func NewCalendarHandler(calendarService service.CalendarService, logger *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		logger:          logger,
	}
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.CreateEventResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.calendarService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create calendar event", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListUpcomingEvents godoc
// @Summary List upcoming calendar events
// @Tags Calendar
// @Accept json
// @Produce json
// @Success 200 {array} dto.EventSummary
// @Failure 403 {object} ierr.ErrorResponse
// @Router /calendar/events [get]
func (h *CalendarHandler) ListUpcomingEvents(c *gin.Context) {
	resp, err := h.calendarService.ListUpcomingEvents(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list calendar events", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteEvent godoc
// @Summary Delete a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} gin.H
// @Failure 403 {object} ierr.ErrorResponse
// @Router /calendar/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid event id").Mark(ierr.ErrValidation))
		return
	}

	if err := h.calendarService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.logger.Errorw("failed to delete calendar event", "error", err, "event_id", id)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event removed successfully"})
}
