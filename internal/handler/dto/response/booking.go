package response

import (
	"time"

	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	SlotID          uuid.UUID `json:"slotId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	WorkshopID      uuid.UUID `json:"workshopId"`
	UserID          uuid.UUID `json:"userId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
	DurationMinutes int32     `json:"durationMinutes"`
	PriceCents      int32     `json:"priceCents"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		SlotID:          rm.SlotID,
		ServiceID:       rm.ServiceID,
		ServiceName:     rm.ServiceName,
		WorkshopID:      rm.WorkshopID,
		UserID:          rm.UserID,
		StartTime:       rm.StartTime,
		EndTime:         rm.EndTime,
		Status:          rm.Status,
		DurationMinutes: rm.DurationMinutes,
		PriceCents:      rm.PriceCents,
		Note:            rm.Note,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}
