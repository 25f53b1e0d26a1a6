package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("illegal booking status transition")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

// Booking is one customer's claim on one slot for one service.
type Booking struct {
	id        uuid.UUID
	slotID    uuid.UUID
	serviceID uuid.UUID
	userID    uuid.UUID
	status    Status
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking starts the lifecycle in the requested state; the coordinator
// binds it to a successful slot claim in the same unit of work.
func NewBooking(slotID, serviceID, userID uuid.UUID, note Note) *Booking {
	return &Booking{
		id:        uuid.New(),
		slotID:    slotID,
		serviceID: serviceID,
		userID:    userID,
		status:    StatusRequested,
		note:      note,
	}
}

func ReconstructBooking(
	id, slotID, serviceID, userID uuid.UUID,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		slotID:    slotID,
		serviceID: serviceID,
		userID:    userID,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) TransitionTo(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	b.status = to
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) SlotID() uuid.UUID    { return b.slotID }
func (b *Booking) ServiceID() uuid.UUID { return b.serviceID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Note() Note           { return b.note }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
