package commands

import (
	"context"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/venue"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/patch"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateVenueInput struct {
	Name        string
	Capacity    int
	PricePerDay string
}

type UpdateVenueInput struct {
	Name        *string
	Capacity    *int
	PricePerDay *string
}

type VenueCommands interface {
	Create(ctx context.Context, in CreateVenueInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateVenueInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewVenueCommands(uow shared.UnitOfWork) VenueCommands {
	return &venueCommandsImpl{uow: uow}
}

func (uc *venueCommandsImpl) Create(ctx context.Context, in CreateVenueInput) (uuid.UUID, error) {
	entity, err := buildVenue(uuid.New(), in.Name, in.Capacity, in.PricePerDay)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if ierr := tx.Venues().Insert(ctx, entity); ierr != nil {
			return errs.Mark(ierr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (uc *venueCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateVenueInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VenueByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrVenueNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		price := booking.FormatCents(snap.PricePerDayCents)
		entity, berr := buildVenue(
			snap.ID,
			patch.Coalesce(in.Name, snap.Name),
			patch.Coalesce(in.Capacity, snap.Capacity),
			patch.Coalesce(in.PricePerDay, price),
		)
		if berr != nil {
			return berr
		}

		if uerr := tx.Venues().Update(ctx, entity); uerr != nil {
			return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// Delete removes the venue; its bookings go with it via the schema's cascade.
func (uc *venueCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Venues().Delete(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrVenueNotFound
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func buildVenue(id uuid.UUID, name string, capacity int, pricePerDay string) (*venue.Venue, error) {
	price, err := booking.ParseMoney(pricePerDay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity, err := venue.NewVenue(id, name, capacity, price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return entity, nil
}
