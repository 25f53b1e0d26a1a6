package readstore

import (
	"context"
	"errors"
	"time"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"
	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

const slotViewColumns = `id, workshop_id, start_time, end_time, status, created_at, updated_at`

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+slotViewColumns+` FROM slots WHERE id = $1
	`, id)

	view, err := scanSlotView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return view, nil
}

func (r *SlotReadStore) FindByWorkshopID(ctx context.Context, workshopID uuid.UUID, from, to *time.Time) ([]*queries.SlotView, error) {
	// Optional bounds select slots overlapping the range, not just those
	// starting inside it.
	rows, err := r.db.Query(ctx, `
		SELECT `+slotViewColumns+` FROM slots
		WHERE workshop_id = $1
		  AND ($2::timestamptz IS NULL OR end_time > $2)
		  AND ($3::timestamptz IS NULL OR start_time < $3)
		ORDER BY start_time
	`, workshopID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	return collectSlotViews(rows)
}

func (r *SlotReadStore) FindAvailableInWindow(ctx context.Context, workshopID uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+slotViewColumns+` FROM slots
		WHERE workshop_id = $1
		  AND status = 'available'
		  AND start_time >= $2
		  AND start_time <= $3
		ORDER BY start_time
	`, workshopID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan available slots", err)
	}
	defer rows.Close()

	return collectSlotViews(rows)
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var v queries.SlotView
	err := row.Scan(&v.ID, &v.WorkshopID, &v.StartTime, &v.EndTime, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectSlotViews(rows pgx.Rows) ([]*queries.SlotView, error) {
	var result []*queries.SlotView
	for rows.Next() {
		v, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return result, nil
}
