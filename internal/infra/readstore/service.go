package readstore

import (
	"context"
	"errors"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ServiceRow is the read-only projection of the external service entity.
type ServiceRow struct {
	ID              uuid.UUID
	WorkshopID      uuid.UUID
	Name            string
	DurationMinutes int32
	PriceCents      int32
	IsActive        bool
}

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*ServiceRow, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, workshop_id, name, duration_minutes, price_cents, is_active
		FROM services WHERE id = $1
	`, id)

	var s ServiceRow
	err := row.Scan(&s.ID, &s.WorkshopID, &s.Name, &s.DurationMinutes, &s.PriceCents, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &s, nil
}
