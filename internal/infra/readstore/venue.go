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
	venueByIDSQL = `
		SELECT id, name, capacity, price_per_day_cents, created_at, updated_at
		FROM venues
		WHERE id = $1`

	venueListSQL = `
		SELECT id, name, capacity, price_per_day_cents, created_at, updated_at
		FROM venues
		ORDER BY name`
)

type venueReadStore struct {
	db db.DBTX
}

func NewVenueReadStore(dbtx db.DBTX) queries.VenueReadStore {
	return &venueReadStore{db: dbtx}
}

func (s *venueReadStore) ByID(ctx context.Context, id uuid.UUID) (*queries.VenueRecord, error) {
	record, err := scanVenueRecord(s.db.QueryRow(ctx, venueByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get venue", err, infra.KindFromPgError(err))
	}
	return record, nil
}

func (s *venueReadStore) List(ctx context.Context) ([]queries.VenueRecord, error) {
	rows, err := s.db.Query(ctx, venueListSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err, infra.KindFromPgError(err))
	}
	defer rows.Close()

	records := make([]queries.VenueRecord, 0)
	for rows.Next() {
		record, err := scanVenueRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venues", err)
	}
	return records, nil
}

func scanVenueRecord(row pgx.Row) (*queries.VenueRecord, error) {
	var (
		id        pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
		record    queries.VenueRecord
	)
	err := row.Scan(&id, &record.Name, &record.Capacity, &record.PricePerDayCents, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	record.ID = pgconv.UUIDFromPgtype(id)
	record.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	record.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &record, nil
}
