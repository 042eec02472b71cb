package dto

import (
	"github.com/healthmoney/healthmoney/internal/validator"
)

// CreateEventRequest creates one calendar event on the session owner's
// primary calendar.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Start       string `json:"start" validate:"required"` // RFC3339
	End         string `json:"end" validate:"required"`   // RFC3339
}

func (r *CreateEventRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CreateEventResponse carries the provider-assigned event identity.
type CreateEventResponse struct {
	ID string `json:"id"`
}

// EventSummary is the simplified listing form of an upcoming event.
type EventSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
}
