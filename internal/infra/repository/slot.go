package repository

import (
	"context"

	"workshop-booking/internal/domain/slot"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO slots (id, workshop_id, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
	`, s.ID(), s.WorkshopID(), s.Window().Start(), s.Window().End(), s.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

// TryClaim is the single correctness-critical primitive: a conditional write
// that only one concurrent caller can win. Zero affected rows means the slot
// was not available at commit time.
func (r *SlotRepository) TryClaim(ctx context.Context, slotID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE slots SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, slot.StatusBooked.String(), slotID, slot.StatusAvailable.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SlotRepository) Release(ctx context.Context, slotID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE slots SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, slot.StatusAvailable.String(), slotID, slot.StatusBooked.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to release slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SlotRepository) DeleteAvailable(ctx context.Context, slotID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM slots WHERE id = $1 AND status = $2
	`, slotID, slot.StatusAvailable.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete slot", err)
	}
	return tag.RowsAffected() == 1, nil
}
