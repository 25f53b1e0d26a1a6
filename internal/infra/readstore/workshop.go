package readstore

import (
	"context"
	"errors"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WorkshopRow struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

type WorkshopReadStore struct {
	db db.DBTX
}

func NewWorkshopReadStore(dbtx db.DBTX) *WorkshopReadStore {
	return &WorkshopReadStore{db: dbtx}
}

func (r *WorkshopReadStore) FindByID(ctx context.Context, id uuid.UUID) (*WorkshopRow, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name FROM workshops WHERE id = $1
	`, id)

	var w WorkshopRow
	err := row.Scan(&w.ID, &w.OwnerID, &w.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("workshop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find workshop by ID", err)
	}
	return &w, nil
}

func (r *WorkshopReadStore) OwnerOf(ctx context.Context, workshopID uuid.UUID) (uuid.UUID, error) {
	w, err := r.FindByID(ctx, workshopID)
	if err != nil {
		return uuid.Nil, err
	}
	return w.OwnerID, nil
}
