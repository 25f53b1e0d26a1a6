package shared

import (
	"context"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Command-side reads outside a transaction (validation lookups)
	Reads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Reads() CommandReads
}

type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) error
	// TryClaim is the conditional available->booked write; false means a
	// concurrent request already claimed the slot.
	TryClaim(ctx context.Context, slotID uuid.UUID) (bool, error)
	// Release is the conditional booked->available write used on cancel.
	Release(ctx context.Context, slotID uuid.UUID) (bool, error)
	// DeleteAvailable removes the slot only while it is available.
	DeleteAvailable(ctx context.Context, slotID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// Transition is the conditional status update; false means the current
	// status was outside from (a concurrent caller moved it first).
	Transition(ctx context.Context, bookingID uuid.UUID, from []booking.Status, to booking.Status) (bool, error)
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	WorkshopByID(ctx context.Context, id uuid.UUID) (*WorkshopSnapshot, error)
}
