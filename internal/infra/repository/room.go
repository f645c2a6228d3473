package repository

import (
	"context"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertRoomSQL = `
		INSERT INTO rooms (id, room_number, room_type, price_per_day_cents)
		VALUES ($1, $2, $3, $4)`

	updateRoomSQL = `
		UPDATE rooms
		SET room_number = $2, room_type = $3, price_per_day_cents = $4
		WHERE id = $1`

	deleteRoomSQL = `DELETE FROM rooms WHERE id = $1`

	// FOR UPDATE holds the row until the transaction ends, so concurrent
	// bookings for the same room serialize on its check-then-insert.
	lockRoomSQL = `
		SELECT id, room_number, price_per_day_cents
		FROM rooms
		WHERE id = $1
		FOR UPDATE`
)

type roomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) shared.RoomRepository {
	return &roomRepository{db: dbtx}
}

func (r *roomRepository) Insert(ctx context.Context, entity *room.Room) error {
	_, err := r.db.Exec(ctx, insertRoomSQL,
		pgconv.UUIDToPgtype(entity.ID()),
		entity.Number(),
		string(entity.Type()),
		entity.PricePerDay().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert room", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *roomRepository) Update(ctx context.Context, entity *room.Room) error {
	tag, err := r.db.Exec(ctx, updateRoomSQL,
		pgconv.UUIDToPgtype(entity.ID()),
		entity.Number(),
		string(entity.Type()),
		entity.PricePerDay().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteRoomSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *roomRepository) LockForBooking(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	var (
		rowID pgtype.UUID
		snap  shared.ResourceSnapshot
	)
	err := r.db.QueryRow(ctx, lockRoomSQL, pgconv.UUIDToPgtype(id)).Scan(&rowID, &snap.Name, &snap.PricePerDayCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err, infra.KindFromPgError(err))
	}
	snap.ID = pgconv.UUIDFromPgtype(rowID)
	return &snap, nil
}
