package commands

import (
	"context"
	"time"

	"workshop-booking/internal/domain/slot"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrWorkshopNotFound = errs.New("workshop not found")
	ErrInvalidWindow    = errs.New("invalid slot time window")
	ErrSlotBooked       = errs.New("cannot delete booked slot")
)

type CreateSlotParams struct {
	WorkshopID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, params CreateSlotParams, actorID uuid.UUID) (uuid.UUID, error)
	DeleteSlot(ctx context.Context, slotID, actorID uuid.UUID) error
}

type slotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSlotCommands(uow shared.UnitOfWork) SlotCommands {
	return &slotCommandsImpl{uow: uow}
}

func (c *slotCommandsImpl) CreateSlot(ctx context.Context, params CreateSlotParams, actorID uuid.UUID) (uuid.UUID, error) {
	ws, err := c.uow.Reads().WorkshopByID(ctx, params.WorkshopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrWorkshopNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if ws.OwnerID != actorID {
		return uuid.Nil, ErrNotAllowed
	}

	window, err := slot.NewTimeWindow(params.StartTime, params.EndTime)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidWindow)
	}
	entity := slot.NewSlot(params.WorkshopID, window)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if createErr := tx.Slots().Create(ctx, entity); createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return entity.ID(), nil
}

// DeleteSlot removes an available slot. The delete is conditional on the
// available status, so a slot claimed between the ownership check and the
// delete is reported as booked instead of silently removed.
func (c *slotCommandsImpl) DeleteSlot(ctx context.Context, slotID, actorID uuid.UUID) error {
	sl, err := c.uow.Reads().SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ws, err := c.uow.Reads().WorkshopByID(ctx, sl.WorkshopID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if ws.OwnerID != actorID {
		return ErrNotAllowed
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, delErr := tx.Slots().DeleteAvailable(ctx, slotID)
		if delErr != nil {
			return errs.Mark(delErr, ErrDatabaseOperationFailed)
		}
		if !deleted {
			return ErrSlotBooked
		}
		return nil
	})
}
