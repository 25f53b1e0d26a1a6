package readstore

import (
	"context"
	"errors"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"
	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// BookingAuthzRow carries the ownership chain for authorization checks.
type BookingAuthzRow struct {
	ID              uuid.UUID
	SlotID          uuid.UUID
	ServiceID       uuid.UUID
	UserID          uuid.UUID
	Status          string
	WorkshopID      uuid.UUID
	WorkshopOwnerID uuid.UUID
}

const bookingViewQuery = `
	SELECT b.id, b.slot_id, b.service_id, sv.name, s.workshop_id, b.user_id,
	       s.start_time, s.end_time, b.status, sv.duration_minutes,
	       sv.price_cents, b.note, b.created_at, b.updated_at
	FROM bookings b
	JOIN slots s ON s.id = b.slot_id
	JOIN services sv ON sv.id = b.service_id
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByWorkshopID(ctx context.Context, workshopID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+`
		WHERE s.workshop_id = $1
		ORDER BY s.start_time
	`, workshopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list workshop bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+`
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

// FindAuthzByID joins through the slot's workshop so a single read answers
// "who may confirm/cancel/complete this booking".
func (r *BookingReadStore) FindAuthzByID(ctx context.Context, id uuid.UUID) (*BookingAuthzRow, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, b.slot_id, b.service_id, b.user_id, b.status,
		       s.workshop_id, w.owner_id
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id
		JOIN workshops w ON w.id = s.workshop_id
		WHERE b.id = $1
	`, id)

	var a BookingAuthzRow
	err := row.Scan(&a.ID, &a.SlotID, &a.ServiceID, &a.UserID, &a.Status, &a.WorkshopID, &a.WorkshopOwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking authorization row", err)
	}
	return &a, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.SlotID, &v.ServiceID, &v.ServiceName, &v.WorkshopID, &v.UserID,
		&v.StartTime, &v.EndTime, &v.Status, &v.DurationMinutes,
		&v.PriceCents, &v.Note, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	var result []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}
