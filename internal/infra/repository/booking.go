package repository

import (
	"context"
	"fmt"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

// bookingTable describes one booking table and its overlap predicate. Room
// stays are half-open (strict comparisons, checkout day free); venue bookings
// are closed (inclusive comparisons, end day occupied).
type bookingTable struct {
	name          string
	resourceCol   string
	startCol      string
	endCol        string
	overlapStrict bool
}

var roomBookingTable = bookingTable{
	name:          "reservations",
	resourceCol:   "room_id",
	startCol:      "check_in_date",
	endCol:        "check_out_date",
	overlapStrict: true,
}

var venueBookingTable = bookingTable{
	name:          "venue_reservations",
	resourceCol:   "venue_id",
	startCol:      "start_date",
	endCol:        "end_date",
	overlapStrict: false,
}

type bookingRepository struct {
	db db.DBTX

	insertSQL       string
	updateSQL       string
	updateStatusSQL string
	deleteSQL       string
	overlapSQL      string
}

func NewRoomBookingRepository(dbtx db.DBTX) shared.BookingRepository {
	return newBookingRepository(dbtx, roomBookingTable)
}

func NewVenueBookingRepository(dbtx db.DBTX) shared.BookingRepository {
	return newBookingRepository(dbtx, venueBookingTable)
}

func newBookingRepository(dbtx db.DBTX, t bookingTable) *bookingRepository {
	startOp, endOp := "<=", ">="
	if t.overlapStrict {
		startOp, endOp = "<", ">"
	}

	return &bookingRepository{
		db: dbtx,
		insertSQL: fmt.Sprintf(`
			INSERT INTO %s (id, %s, guest_name, guest_phone, %s, %s, total_price_cents, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			t.name, t.resourceCol, t.startCol, t.endCol,
		),
		updateSQL: fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, guest_name = $3, guest_phone = $4, %s = $5, %s = $6, total_price_cents = $7, status = $8
			WHERE id = $1`,
			t.name, t.resourceCol, t.startCol, t.endCol,
		),
		updateStatusSQL: fmt.Sprintf(`UPDATE %s SET status = $2 WHERE id = $1`, t.name),
		deleteSQL:       fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name),
		overlapSQL: fmt.Sprintf(`
			SELECT EXISTS (
				SELECT 1 FROM %s
				WHERE %s = $1 AND %s %s $3 AND %s %s $2
				  AND ($4::uuid IS NULL OR id <> $4)
			)`,
			t.name, t.resourceCol, t.startCol, startOp, t.endCol, endOp,
		),
	}
}

func (r *bookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, r.insertSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ResourceID()),
		b.GuestName().String(),
		b.GuestPhone().String(),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		b.TotalPrice().Cents(),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *bookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, r.updateSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ResourceID()),
		b.GuestName().String(),
		b.GuestPhone().String(),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		b.TotalPrice().Cents(),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, r.updateStatusSQL, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, r.deleteSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *bookingRepository) OverlapExists(ctx context.Context, resourceID uuid.UUID, dates booking.DateRange, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, r.overlapSQL,
		pgconv.UUIDToPgtype(resourceID),
		pgconv.DateToPgtype(dates.Start()),
		pgconv.DateToPgtype(dates.End()),
		pgconv.UUIDPtrToPgtype(excludeID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err, infra.KindFromPgError(err))
	}
	return exists, nil
}
