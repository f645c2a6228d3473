package uow

import (
	"context"
	"errors"
	"time"

	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries     = 3
	initialBackoff = 10 * time.Millisecond
)

// Retryable transaction failures.
const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

// PostgresUoW runs a command inside one database transaction. The row lock a
// command takes on its resource serializes concurrent bookings for it;
// deadlocks and serialization failures are retried with backoff.
type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	backoff := initialBackoff
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errs.Wrap(ctx.Err(), "transaction retry aborted")
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		err = u.runInTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return err
}

func (u *PostgresUoW) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(ctx, &pgTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
	}
	return false
}

// pgTx hands out repositories bound to the transaction's connection.
type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Rooms() shared.RoomRepository           { return repository.NewRoomRepository(t.tx) }
func (t *pgTx) Venues() shared.VenueRepository         { return repository.NewVenueRepository(t.tx) }
func (t *pgTx) RoomBookings() shared.BookingRepository { return repository.NewRoomBookingRepository(t.tx) }
func (t *pgTx) VenueBookings() shared.BookingRepository {
	return repository.NewVenueBookingRepository(t.tx)
}
func (t *pgTx) Reads() shared.CommandReads { return repository.NewCommandReads(t.tx) }
