package repository

import (
	"context"

	"hotel-backoffice/internal/domain/venue"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertVenueSQL = `
		INSERT INTO venues (id, name, capacity, price_per_day_cents)
		VALUES ($1, $2, $3, $4)`

	updateVenueSQL = `
		UPDATE venues
		SET name = $2, capacity = $3, price_per_day_cents = $4
		WHERE id = $1`

	deleteVenueSQL = `DELETE FROM venues WHERE id = $1`

	lockVenueSQL = `
		SELECT id, name, price_per_day_cents
		FROM venues
		WHERE id = $1
		FOR UPDATE`
)

type venueRepository struct {
	db db.DBTX
}

func NewVenueRepository(dbtx db.DBTX) shared.VenueRepository {
	return &venueRepository{db: dbtx}
}

func (r *venueRepository) Insert(ctx context.Context, entity *venue.Venue) error {
	_, err := r.db.Exec(ctx, insertVenueSQL,
		pgconv.UUIDToPgtype(entity.ID()),
		entity.Name(),
		entity.Capacity(),
		entity.PricePerDay().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert venue", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *venueRepository) Update(ctx context.Context, entity *venue.Venue) error {
	tag, err := r.db.Exec(ctx, updateVenueSQL,
		pgconv.UUIDToPgtype(entity.ID()),
		entity.Name(),
		entity.Capacity(),
		entity.PricePerDay().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update venue", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteVenueSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete venue", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *venueRepository) LockForBooking(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	var (
		rowID pgtype.UUID
		snap  shared.ResourceSnapshot
	)
	err := r.db.QueryRow(ctx, lockVenueSQL, pgconv.UUIDToPgtype(id)).Scan(&rowID, &snap.Name, &snap.PricePerDayCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock venue", err, infra.KindFromPgError(err))
	}
	snap.ID = pgconv.UUIDFromPgtype(rowID)
	return &snap, nil
}
