package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"pharmashift/internal/domain/invitation"
	"pharmashift/internal/domain/shift"
	"pharmashift/internal/infra/readstore"
	"pharmashift/internal/infra/repository"
	sqlc "pharmashift/internal/infra/sqlc/generated"
	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/usecase/shared"

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

var _ shared.UnitOfWork = (*PostgresUoW)(nil)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Direct runs fn against the pool: every statement commits on its own. The
// claim write relies on this so the winner is decided by a single
// conditional UPDATE rather than by transaction isolation.
func (u *PostgresUoW) Direct(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &pgTx{dbtx: u.pool, uow: u})
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
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

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

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
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

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
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	shiftRepo        shared.ShiftRepository
	invitationRepo   shared.InvitationRepository
	applicationRepo  shared.ApplicationRepository
	cancellationRepo shared.CancellationRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Shifts() shared.ShiftRepository {
	if t.shiftRepo == nil {
		t.shiftRepo = repository.NewShiftRepository(t.uow.q, t.dbtx)
	}
	return t.shiftRepo
}

func (t *pgTx) Invitations() shared.InvitationRepository {
	if t.invitationRepo == nil {
		t.invitationRepo = repository.NewInvitationRepository(t.uow.q, t.dbtx)
	}
	return t.invitationRepo
}

func (t *pgTx) Applications() shared.ApplicationRepository {
	if t.applicationRepo == nil {
		t.applicationRepo = repository.NewApplicationRepository(t.uow.q, t.dbtx)
	}
	return t.applicationRepo
}

func (t *pgTx) Cancellations() shared.CancellationRepository {
	if t.cancellationRepo == nil {
		t.cancellationRepo = repository.NewCancellationRepository(t.uow.q, t.dbtx)
	}
	return t.cancellationRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	shiftStore         *readstore.ShiftReadStore
	invitationStore    *readstore.InvitationReadStore
	paymentMethodStore *readstore.PaymentMethodReadStore
}

func (r *commandReads) shifts() *readstore.ShiftReadStore {
	if r.shiftStore == nil {
		r.shiftStore = readstore.NewShiftReadStore(r.uow.q, r.dbtx)
	}
	return r.shiftStore
}

func (r *commandReads) ShiftByID(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	return r.shifts().Load(ctx, id)
}

func (r *commandReads) FilledShiftsForWorker(ctx context.Context, workerID uuid.UUID) ([]*shift.Shift, error) {
	return r.shifts().FilledForWorker(ctx, workerID)
}

func (r *commandReads) FilledShifts(ctx context.Context) ([]*shift.Shift, error) {
	return r.shifts().Filled(ctx)
}

func (r *commandReads) InvitationByID(ctx context.Context, id uuid.UUID) (*invitation.Invitation, error) {
	if r.invitationStore == nil {
		r.invitationStore = readstore.NewInvitationReadStore(r.uow.q, r.dbtx)
	}
	return r.invitationStore.Load(ctx, id)
}

func (r *commandReads) DefaultPaymentMethod(ctx context.Context, userID uuid.UUID) (*shared.PaymentMethodSnapshot, error) {
	if r.paymentMethodStore == nil {
		r.paymentMethodStore = readstore.NewPaymentMethodReadStore(r.uow.q, r.dbtx)
	}
	return r.paymentMethodStore.FindDefault(ctx, userID)
}
