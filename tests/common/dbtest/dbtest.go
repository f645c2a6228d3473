//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB wipes all rows between subtests. Reservations go first so the
// cascade never races the resource truncation.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE reservations, venue_reservations, rooms, venues CASCADE")
	return err
}
