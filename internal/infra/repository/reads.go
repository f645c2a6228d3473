package repository

import (
	"context"
	"fmt"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	roomByIDSQL = `
		SELECT id, room_number, room_type, price_per_day_cents
		FROM rooms
		WHERE id = $1`

	venueByIDSQL = `
		SELECT id, name, capacity, price_per_day_cents
		FROM venues
		WHERE id = $1`
)

// commandReads serves the snapshot lookups commands make before writing.
// It runs on the transaction's connection so reads see the locked state.
type commandReads struct {
	db db.DBTX

	roomBookingSQL  string
	venueBookingSQL string
}

func NewCommandReads(dbtx db.DBTX) shared.CommandReads {
	return &commandReads{
		db:              dbtx,
		roomBookingSQL:  bookingByIDSQL(roomBookingTable),
		venueBookingSQL: bookingByIDSQL(venueBookingTable),
	}
}

func bookingByIDSQL(t bookingTable) string {
	return fmt.Sprintf(`
		SELECT id, %s, guest_name, guest_phone, %s, %s, total_price_cents, status, created_at, updated_at
		FROM %s
		WHERE id = $1`,
		t.resourceCol, t.startCol, t.endCol, t.name,
	)
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		rowID pgtype.UUID
		snap  shared.RoomSnapshot
	)
	err := r.db.QueryRow(ctx, roomByIDSQL, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &snap.RoomNumber, &snap.RoomType, &snap.PricePerDayCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room", err, infra.KindFromPgError(err))
	}
	snap.ID = pgconv.UUIDFromPgtype(rowID)
	return &snap, nil
}

func (r *commandReads) VenueByID(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	var (
		rowID pgtype.UUID
		snap  shared.VenueSnapshot
	)
	err := r.db.QueryRow(ctx, venueByIDSQL, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &snap.Name, &snap.Capacity, &snap.PricePerDayCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get venue", err, infra.KindFromPgError(err))
	}
	snap.ID = pgconv.UUIDFromPgtype(rowID)
	return &snap, nil
}

func (r *commandReads) RoomBookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookingByID(ctx, r.roomBookingSQL, id)
}

func (r *commandReads) VenueBookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookingByID(ctx, r.venueBookingSQL, id)
}

func (r *commandReads) bookingByID(ctx context.Context, sql string, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		rowID      pgtype.UUID
		resourceID pgtype.UUID
		start      pgtype.Date
		end        pgtype.Date
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
		snap       shared.BookingSnapshot
	)
	err := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &resourceID, &snap.GuestName, &snap.GuestPhone,
		&start, &end, &snap.TotalPriceCents, &snap.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err, infra.KindFromPgError(err))
	}
	snap.ID = pgconv.UUIDFromPgtype(rowID)
	snap.ResourceID = pgconv.UUIDFromPgtype(resourceID)
	snap.StartDate = pgconv.DateFromPgtype(start)
	snap.EndDate = pgconv.DateFromPgtype(end)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}
