package response

import (
	"time"

	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID         uuid.UUID `json:"id"`
	WorkshopID uuid.UUID `json:"workshopId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateSlotResponse struct {
	ID uuid.UUID `json:"id"`
}

type AlternativeResponse struct {
	SlotID        uuid.UUID `json:"slotId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	OffsetMinutes int64     `json:"offsetMinutes"`
	Reason        string    `json:"reason"`
}

func FromSlotView(rm *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:         rm.ID,
		WorkshopID: rm.WorkshopID,
		StartTime:  rm.StartTime,
		EndTime:    rm.EndTime,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromAlternativeView(rm *queries.AlternativeView) *AlternativeResponse {
	return &AlternativeResponse{
		SlotID:        rm.SlotID,
		StartTime:     rm.StartTime,
		EndTime:       rm.EndTime,
		OffsetMinutes: rm.OffsetMinutes,
		Reason:        rm.Reason,
	}
}
