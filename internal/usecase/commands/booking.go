package commands

import (
	"context"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/domain/slot"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/clock"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errs.New("service not found")
	ErrSlotNotFound    = errs.New("slot not found")
	ErrBookingNotFound = errs.New("booking not found")

	ErrWorkshopMismatch = errs.New("service and slot belong to different workshops")
	ErrSlotTooShort     = errs.New("slot too short for service")

	ErrSlotUnavailable   = errs.New("slot unavailable")
	ErrIllegalTransition = errs.New("illegal booking transition")
	ErrNotAllowed        = errs.New("actor not allowed")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	ServiceID uuid.UUID
	SlotID    uuid.UUID
	UserID    uuid.UUID
	Note      *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (uuid.UUID, error)
	ConfirmBooking(ctx context.Context, bookingID, actorID uuid.UUID) error
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) error
	CompleteBooking(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, notifier Notifier, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clock,
	}
}

// CreateBooking runs the validation chain and then claims the slot and
// inserts the booking in one transaction. The conditional claim is the only
// guard against concurrent requests on the same slot: pre-validation reads
// may be stale, but a stale read can only turn into ErrSlotUnavailable.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (uuid.UUID, error) {
	svc, err := c.validateService(ctx, params.ServiceID)
	if err != nil {
		return uuid.Nil, err
	}

	sl, err := c.validateSlot(ctx, params.SlotID, svc)
	if err != nil {
		return uuid.Nil, err
	}

	note := booking.NewNote("")
	if params.Note != nil {
		note = booking.NewNote(*params.Note)
	}
	entity := booking.NewBooking(params.SlotID, params.ServiceID, params.UserID, note)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, claimErr := tx.Slots().TryClaim(ctx, params.SlotID)
		if claimErr != nil {
			return errs.Mark(claimErr, ErrDatabaseOperationFailed)
		}
		if !claimed {
			return ErrSlotUnavailable
		}

		if createErr := tx.Bookings().Create(ctx, entity); createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.notifier.BookingCreated(ctx, c.event(entity.ID(), params.SlotID, params.ServiceID, sl.WorkshopID, params.UserID, booking.StatusRequested))

	return entity.ID(), nil
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	snap, err := c.bookingForUpdate(ctx, bookingID)
	if err != nil {
		return err
	}
	if actorID != snap.WorkshopOwnerID {
		return ErrNotAllowed
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.transition(ctx, tx, bookingID, []booking.Status{booking.StatusRequested}, booking.StatusConfirmed)
	})
	if err != nil {
		return err
	}

	c.notifier.BookingConfirmed(ctx, c.eventFromSnapshot(snap, booking.StatusConfirmed))
	return nil
}

// CancelBooking may be called by the booking's creating user or by the
// workshop owner. The status transition and the slot release are one unit of
// work: a canceled booking with a still-booked slot must never be observable.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	snap, err := c.bookingForUpdate(ctx, bookingID)
	if err != nil {
		return err
	}
	if actorID != snap.UserID && actorID != snap.WorkshopOwnerID {
		return ErrNotAllowed
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		from := []booking.Status{booking.StatusRequested, booking.StatusConfirmed}
		if trErr := c.transition(ctx, tx, bookingID, from, booking.StatusCanceled); trErr != nil {
			return trErr
		}

		released, relErr := tx.Slots().Release(ctx, snap.SlotID)
		if relErr != nil {
			return errs.Mark(relErr, ErrDatabaseOperationFailed)
		}
		if !released {
			// An active booking without a booked slot means the ledger and
			// the slot store drifted apart; refuse to commit on top of it.
			return errs.Mark(errs.New("slot not booked while booking active"), ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.notifier.BookingCanceled(ctx, c.eventFromSnapshot(snap, booking.StatusCanceled))
	return nil
}

func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	snap, err := c.bookingForUpdate(ctx, bookingID)
	if err != nil {
		return err
	}
	if actorID != snap.WorkshopOwnerID {
		return ErrNotAllowed
	}

	// The slot stays booked: completed services keep their historical slot.
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.transition(ctx, tx, bookingID, []booking.Status{booking.StatusConfirmed}, booking.StatusCompleted)
	})
	if err != nil {
		return err
	}

	c.notifier.BookingCompleted(ctx, c.eventFromSnapshot(snap, booking.StatusCompleted))
	return nil
}

func (c *bookingCommandsImpl) validateService(ctx context.Context, serviceID uuid.UUID) (*shared.ServiceSnapshot, error) {
	svc, err := c.uow.Reads().ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !svc.IsActive {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (c *bookingCommandsImpl) validateSlot(ctx context.Context, slotID uuid.UUID, svc *shared.ServiceSnapshot) (*shared.SlotSnapshot, error) {
	sl, err := c.uow.Reads().SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if sl.WorkshopID != svc.WorkshopID {
		return nil, ErrWorkshopMismatch
	}

	window, err := slot.NewTimeWindow(sl.StartTime, sl.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !window.Fits(svc.DurationMinutes) {
		return nil, ErrSlotTooShort
	}

	return sl, nil
}

func (c *bookingCommandsImpl) bookingForUpdate(ctx context.Context, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := c.uow.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *bookingCommandsImpl) transition(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, from []booking.Status, to booking.Status) error {
	moved, err := tx.Bookings().Transition(ctx, bookingID, from, to)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !moved {
		// The booking exists but its current status is outside from: either
		// the caller raced another transition or the state machine forbids it.
		return ErrIllegalTransition
	}
	return nil
}

func (c *bookingCommandsImpl) event(bookingID, slotID, serviceID, workshopID, userID uuid.UUID, status booking.Status) BookingEvent {
	return BookingEvent{
		BookingID:  bookingID,
		SlotID:     slotID,
		ServiceID:  serviceID,
		WorkshopID: workshopID,
		UserID:     userID,
		Status:     status.String(),
		OccurredAt: c.clock.Now(),
	}
}

func (c *bookingCommandsImpl) eventFromSnapshot(snap *shared.BookingSnapshot, status booking.Status) BookingEvent {
	return c.event(snap.ID, snap.SlotID, snap.ServiceID, snap.WorkshopID, snap.UserID, status)
}
