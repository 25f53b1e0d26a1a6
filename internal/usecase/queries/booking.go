package queries

import (
	"context"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrWorkshopNotFound = errs.New("workshop not found")
	ErrNotAllowed       = errs.New("actor not allowed")
)

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByWorkshopID(ctx context.Context, workshopID uuid.UUID) ([]*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type WorkshopOwnerRepo interface {
	OwnerOf(ctx context.Context, workshopID uuid.UUID) (uuid.UUID, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListForWorkshop is owner-only: the analytics/display projection over
	// the ledger, never a write path.
	ListForWorkshop(ctx context.Context, workshopID, actorID uuid.UUID) ([]*BookingView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings  BookingViewRepo
	workshops WorkshopOwnerRepo
}

func NewBookingQueries(bookings BookingViewRepo, workshops WorkshopOwnerRepo) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		workshops: workshops,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForWorkshop(ctx context.Context, workshopID, actorID uuid.UUID) ([]*BookingView, error) {
	ownerID, err := q.workshops.OwnerOf(ctx, workshopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, errs.Wrap(err, "failed to find workshop")
	}
	if ownerID != actorID {
		return nil, ErrNotAllowed
	}

	views, err := q.bookings.FindByWorkshopID(ctx, workshopID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list workshop bookings")
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return views, nil
}
