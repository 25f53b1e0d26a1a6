package repository

import (
	"context"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	var note *string
	if !b.Note().IsEmpty() {
		v := b.Note().String()
		note = &v
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, slot_id, service_id, user_id, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	`, b.ID(), b.SlotID(), b.ServiceID(), b.UserID(), b.Status().String(), note)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// Transition gives booking updates the same lost-update protection as slot
// claiming: the status moves only if the current value is still in from.
func (r *BookingRepository) Transition(ctx context.Context, bookingID uuid.UUID, from []booking.Status, to booking.Status) (bool, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = s.String()
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $1, updated_at = now()
		WHERE id = $2 AND status = ANY($3)
	`, to.String(), bookingID, fromStrs)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition booking", err)
	}
	return tag.RowsAffected() == 1, nil
}
