package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingEvent describes one committed booking state transition.
type BookingEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	SlotID     uuid.UUID `json:"slot_id"`
	ServiceID  uuid.UUID `json:"service_id"`
	WorkshopID uuid.UUID `json:"workshop_id"`
	UserID     uuid.UUID `json:"user_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier is the lifecycle hook fired after each committed transition.
// Implementations are best-effort: they log failures and never propagate
// them back into the booking flow.
type Notifier interface {
	BookingCreated(ctx context.Context, ev BookingEvent)
	BookingConfirmed(ctx context.Context, ev BookingEvent)
	BookingCanceled(ctx context.Context, ev BookingEvent)
	BookingCompleted(ctx context.Context, ev BookingEvent)
}
