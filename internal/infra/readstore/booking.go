package readstore

import (
	"context"
	"fmt"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// bookingSource describes one booking table and the resource table it joins
// for the display name.
type bookingSource struct {
	table           string
	resourceCol     string
	startCol        string
	endCol          string
	resourceTable   string
	resourceNameCol string
}

var roomBookingSource = bookingSource{
	table:           "reservations",
	resourceCol:     "room_id",
	startCol:        "check_in_date",
	endCol:          "check_out_date",
	resourceTable:   "rooms",
	resourceNameCol: "room_number",
}

var venueBookingSource = bookingSource{
	table:           "venue_reservations",
	resourceCol:     "venue_id",
	startCol:        "start_date",
	endCol:          "end_date",
	resourceTable:   "venues",
	resourceNameCol: "name",
}

type bookingReadStore struct {
	db db.DBTX

	byIDSQL            string
	listSQL            string
	listForResourceSQL string
}

func NewRoomBookingReadStore(dbtx db.DBTX) queries.RoomBookingReadStore {
	return newBookingReadStore(dbtx, roomBookingSource)
}

func NewVenueBookingReadStore(dbtx db.DBTX) queries.VenueBookingReadStore {
	return newBookingReadStore(dbtx, venueBookingSource)
}

func newBookingReadStore(dbtx db.DBTX, s bookingSource) *bookingReadStore {
	selectClause := fmt.Sprintf(`
		SELECT b.id, b.%s, res.%s, b.guest_name, b.guest_phone,
		       b.%s, b.%s, b.total_price_cents, b.status, b.created_at, b.updated_at
		FROM %s b
		JOIN %s res ON res.id = b.%s`,
		s.resourceCol, s.resourceNameCol, s.startCol, s.endCol,
		s.table, s.resourceTable, s.resourceCol,
	)

	return &bookingReadStore{
		db:      dbtx,
		byIDSQL: selectClause + "\n\t\tWHERE b.id = $1",
		listSQL: selectClause + fmt.Sprintf("\n\t\tORDER BY b.%s, b.created_at", s.startCol),
		listForResourceSQL: selectClause + fmt.Sprintf(
			"\n\t\tWHERE b.%s = $1\n\t\tORDER BY b.%s, b.created_at", s.resourceCol, s.startCol,
		),
	}
}

func (s *bookingReadStore) ByID(ctx context.Context, id uuid.UUID) (*queries.BookingRecord, error) {
	row := s.db.QueryRow(ctx, s.byIDSQL, pgconv.UUIDToPgtype(id))
	record, err := scanBookingRecord(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err, infra.KindFromPgError(err))
	}
	return record, nil
}

func (s *bookingReadStore) List(ctx context.Context) ([]queries.BookingRecord, error) {
	rows, err := s.db.Query(ctx, s.listSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err, infra.KindFromPgError(err))
	}
	return collectBookingRecords(rows)
}

func (s *bookingReadStore) ListForResource(ctx context.Context, resourceID uuid.UUID) ([]queries.BookingRecord, error) {
	rows, err := s.db.Query(ctx, s.listForResourceSQL, pgconv.UUIDToPgtype(resourceID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err, infra.KindFromPgError(err))
	}
	return collectBookingRecords(rows)
}

func collectBookingRecords(rows pgx.Rows) ([]queries.BookingRecord, error) {
	defer rows.Close()

	records := make([]queries.BookingRecord, 0)
	for rows.Next() {
		record, err := scanBookingRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return records, nil
}

func scanBookingRecord(row pgx.Row) (*queries.BookingRecord, error) {
	var (
		id         pgtype.UUID
		resourceID pgtype.UUID
		start      pgtype.Date
		end        pgtype.Date
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
		record     queries.BookingRecord
	)
	err := row.Scan(
		&id, &resourceID, &record.ResourceName, &record.GuestName, &record.GuestPhone,
		&start, &end, &record.TotalPriceCents, &record.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.ID = pgconv.UUIDFromPgtype(id)
	record.ResourceID = pgconv.UUIDFromPgtype(resourceID)
	record.StartDate = pgconv.DateFromPgtype(start)
	record.EndDate = pgconv.DateFromPgtype(end)
	record.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	record.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &record, nil
}
