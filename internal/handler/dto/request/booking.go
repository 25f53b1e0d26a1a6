package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
	Note   *string   `json:"note,omitempty"`
}

func (r CreateBookingRequest) GetNote() *string {
	if r.Note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
