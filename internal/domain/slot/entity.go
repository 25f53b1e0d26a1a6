package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyBooked    = errors.New("slot is already booked")
	ErrNotBooked        = errors.New("slot is not booked")
	ErrDeleteBookedSlot = errors.New("cannot delete booked slot")
)

// Slot is one bookable time window owned by a workshop. Its status moves
// between available and booked only through the reservation coordinator.
type Slot struct {
	id         uuid.UUID
	workshopID uuid.UUID
	window     TimeWindow
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSlot(workshopID uuid.UUID, window TimeWindow) *Slot {
	return &Slot{
		id:         uuid.New(),
		workshopID: workshopID,
		window:     window,
		status:     StatusAvailable,
	}
}

func ReconstructSlot(
	id, workshopID uuid.UUID,
	window TimeWindow,
	status Status,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:         id,
		workshopID: workshopID,
		window:     window,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Slot) IsAvailable() bool {
	return s.status == StatusAvailable
}

func (s *Slot) Claim() error {
	if s.status != StatusAvailable {
		return ErrAlreadyBooked
	}
	s.status = StatusBooked
	return nil
}

func (s *Slot) Release() error {
	if s.status != StatusBooked {
		return ErrNotBooked
	}
	s.status = StatusAvailable
	return nil
}

func (s *Slot) ID() uuid.UUID         { return s.id }
func (s *Slot) WorkshopID() uuid.UUID { return s.workshopID }
func (s *Slot) Window() TimeWindow    { return s.window }
func (s *Slot) Status() Status        { return s.status }
func (s *Slot) CreatedAt() time.Time  { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time  { return s.updatedAt }
