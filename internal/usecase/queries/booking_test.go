//go:build unit

package queries_test

import (
	"context"
	"testing"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingViewRepo struct {
	byID         map[uuid.UUID]*queries.BookingView
	byWorkshopID map[uuid.UUID][]*queries.BookingView
	byUserID     map[uuid.UUID][]*queries.BookingView
}

func (s *stubBookingViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if v, ok := s.byID[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("booking not found", errs.New("no rows in result set"), infra.KindNotFound)
}

func (s *stubBookingViewRepo) FindByWorkshopID(_ context.Context, workshopID uuid.UUID) ([]*queries.BookingView, error) {
	return s.byWorkshopID[workshopID], nil
}

func (s *stubBookingViewRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return s.byUserID[userID], nil
}

type stubWorkshopOwnerRepo struct {
	owners map[uuid.UUID]uuid.UUID
}

func (s *stubWorkshopOwnerRepo) OwnerOf(_ context.Context, workshopID uuid.UUID) (uuid.UUID, error) {
	if owner, ok := s.owners[workshopID]; ok {
		return owner, nil
	}
	return uuid.Nil, infra.WrapRepoErr("workshop not found", errs.New("no rows in result set"), infra.KindNotFound)
}

func TestBookingQueries(t *testing.T) {
	ownerID := uuid.New()
	customerID := uuid.New()
	workshopID := uuid.New()
	bookingID := uuid.New()

	view := &queries.BookingView{ID: bookingID, WorkshopID: workshopID, UserID: customerID, Status: "requested"}

	newQueries := func() queries.BookingQueries {
		return queries.NewBookingQueries(
			&stubBookingViewRepo{
				byID:         map[uuid.UUID]*queries.BookingView{bookingID: view},
				byWorkshopID: map[uuid.UUID][]*queries.BookingView{workshopID: {view}},
				byUserID:     map[uuid.UUID][]*queries.BookingView{customerID: {view}},
			},
			&stubWorkshopOwnerRepo{owners: map[uuid.UUID]uuid.UUID{workshopID: ownerID}},
		)
	}

	t.Run("get by id", func(t *testing.T) {
		got, err := newQueries().GetByID(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("get by unknown id", func(t *testing.T) {
		_, err := newQueries().GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("workshop listing requires the owner", func(t *testing.T) {
		got, err := newQueries().ListForWorkshop(context.Background(), workshopID, ownerID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("workshop listing rejects non-owners", func(t *testing.T) {
		_, err := newQueries().ListForWorkshop(context.Background(), workshopID, customerID)
		assert.ErrorIs(t, err, queries.ErrNotAllowed)
	})

	t.Run("workshop listing for unknown workshop", func(t *testing.T) {
		_, err := newQueries().ListForWorkshop(context.Background(), uuid.New(), ownerID)
		assert.ErrorIs(t, err, queries.ErrWorkshopNotFound)
	})

	t.Run("user listing", func(t *testing.T) {
		got, err := newQueries().ListForUser(context.Background(), customerID)
		require.NoError(t, err)
		assert.Len(t, got, 1)

		empty, err := newQueries().ListForUser(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}
