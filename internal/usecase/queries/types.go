package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotView struct {
	ID         uuid.UUID `json:"id"`
	WorkshopID uuid.UUID `json:"workshop_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	SlotID          uuid.UUID `json:"slot_id"`
	ServiceID       uuid.UUID `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	WorkshopID      uuid.UUID `json:"workshop_id"`
	UserID          uuid.UUID `json:"user_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
	DurationMinutes int32     `json:"duration_minutes"`
	PriceCents      int32     `json:"price_cents"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AlternativeView struct {
	SlotID        uuid.UUID `json:"slot_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	OffsetMinutes int64     `json:"offset_minutes"`
	Reason        string    `json:"reason"`
}
