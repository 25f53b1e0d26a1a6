package queries

import (
	"context"
	"time"

	"workshop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotViewRepo interface {
	// FindByWorkshopID returns slots overlapping the optional range,
	// ordered by start time.
	FindByWorkshopID(ctx context.Context, workshopID uuid.UUID, from, to *time.Time) ([]*SlotView, error)
	FindAvailableInWindow(ctx context.Context, workshopID uuid.UUID, from, to time.Time) ([]*SlotView, error)
}

type SlotQueries interface {
	ListByWorkshop(ctx context.Context, workshopID uuid.UUID, from, to *time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	slots SlotViewRepo
}

func NewSlotQueries(slots SlotViewRepo) SlotQueries {
	return &slotQueriesImpl{slots: slots}
}

func (q *slotQueriesImpl) ListByWorkshop(ctx context.Context, workshopID uuid.UUID, from, to *time.Time) ([]*SlotView, error) {
	views, err := q.slots.FindByWorkshopID(ctx, workshopID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list workshop slots")
	}
	return views, nil
}
