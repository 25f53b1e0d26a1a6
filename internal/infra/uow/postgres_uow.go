package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"workshop-booking/internal/infra/db"
	"workshop-booking/internal/infra/readstore"
	"workshop-booking/internal/infra/repository"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted is enough here: the conditional claim/transition writes are
// the serialization point, not the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

// Retryable codes never include a lost claim: a losing conditional write is
// a final answer, only serialization failures and deadlocks retry.
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	slotRepo     shared.SlotRepository
	bookingRepo  shared.BookingRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.dbtx)
	}
	return t.slotRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	serviceStore  *readstore.ServiceReadStore
	slotStore     *readstore.SlotReadStore
	bookingStore  *readstore.BookingReadStore
	workshopStore *readstore.WorkshopReadStore
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	if r.serviceStore == nil {
		r.serviceStore = readstore.NewServiceReadStore(r.dbtx)
	}

	svc, err := r.serviceStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ServiceSnapshot{
		ID:              svc.ID,
		WorkshopID:      svc.WorkshopID,
		Name:            svc.Name,
		DurationMinutes: int(svc.DurationMinutes),
		PriceCents:      svc.PriceCents,
		IsActive:        svc.IsActive,
	}, nil
}

func (r *commandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	if r.slotStore == nil {
		r.slotStore = readstore.NewSlotReadStore(r.dbtx)
	}

	view, err := r.slotStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.SlotSnapshot{
		ID:         view.ID,
		WorkshopID: view.WorkshopID,
		StartTime:  view.StartTime,
		EndTime:    view.EndTime,
		Status:     view.Status,
	}, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}

	row, err := r.bookingStore.FindAuthzByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.BookingSnapshot{
		ID:              row.ID,
		SlotID:          row.SlotID,
		ServiceID:       row.ServiceID,
		UserID:          row.UserID,
		Status:          row.Status,
		WorkshopID:      row.WorkshopID,
		WorkshopOwnerID: row.WorkshopOwnerID,
	}, nil
}

func (r *commandReads) WorkshopByID(ctx context.Context, id uuid.UUID) (*shared.WorkshopSnapshot, error) {
	if r.workshopStore == nil {
		r.workshopStore = readstore.NewWorkshopReadStore(r.dbtx)
	}

	w, err := r.workshopStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.WorkshopSnapshot{
		ID:      w.ID,
		OwnerID: w.OwnerID,
		Name:    w.Name,
	}, nil
}
