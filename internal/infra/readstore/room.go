package readstore

import (
	"context"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	roomByIDSQL = `
		SELECT id, room_number, room_type, price_per_day_cents, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	roomListSQL = `
		SELECT id, room_number, room_type, price_per_day_cents, created_at, updated_at
		FROM rooms
		ORDER BY room_number`
)

type roomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) queries.RoomReadStore {
	return &roomReadStore{db: dbtx}
}

func (s *roomReadStore) ByID(ctx context.Context, id uuid.UUID) (*queries.RoomRecord, error) {
	record, err := scanRoomRecord(s.db.QueryRow(ctx, roomByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room", err, infra.KindFromPgError(err))
	}
	return record, nil
}

func (s *roomReadStore) List(ctx context.Context) ([]queries.RoomRecord, error) {
	rows, err := s.db.Query(ctx, roomListSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err, infra.KindFromPgError(err))
	}
	defer rows.Close()

	records := make([]queries.RoomRecord, 0)
	for rows.Next() {
		record, err := scanRoomRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms", err)
	}
	return records, nil
}

func scanRoomRecord(row pgx.Row) (*queries.RoomRecord, error) {
	var (
		id        pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
		record    queries.RoomRecord
	)
	err := row.Scan(&id, &record.RoomNumber, &record.RoomType, &record.PricePerDayCents, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	record.ID = pgconv.UUIDFromPgtype(id)
	record.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	record.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &record, nil
}
