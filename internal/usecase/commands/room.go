package commands

import (
	"context"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/patch"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomInput struct {
	RoomNumber  string
	RoomType    string
	PricePerDay string
}

type UpdateRoomInput struct {
	RoomNumber  *string
	RoomType    *string
	PricePerDay *string
}

type RoomCommands interface {
	Create(ctx context.Context, in CreateRoomInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateRoomInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (uc *roomCommandsImpl) Create(ctx context.Context, in CreateRoomInput) (uuid.UUID, error) {
	entity, err := buildRoom(uuid.New(), in.RoomNumber, in.RoomType, in.PricePerDay)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if ierr := tx.Rooms().Insert(ctx, entity); ierr != nil {
			if infra.IsKind(ierr, infra.KindDuplicateKey) {
				return errs.Mark(ierr, errs.ErrRoomNumberTaken)
			}
			return errs.Mark(ierr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (uc *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateRoomInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RoomByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		price := booking.FormatCents(snap.PricePerDayCents)
		entity, berr := buildRoom(
			snap.ID,
			patch.Coalesce(in.RoomNumber, snap.RoomNumber),
			patch.Coalesce(in.RoomType, snap.RoomType),
			patch.Coalesce(in.PricePerDay, price),
		)
		if berr != nil {
			return berr
		}

		if uerr := tx.Rooms().Update(ctx, entity); uerr != nil {
			if infra.IsKind(uerr, infra.KindDuplicateKey) {
				return errs.Mark(uerr, errs.ErrRoomNumberTaken)
			}
			return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// Delete removes the room; its bookings go with it via the schema's cascade.
func (uc *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Rooms().Delete(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func buildRoom(id uuid.UUID, number, roomType, pricePerDay string) (*room.Room, error) {
	price, err := booking.ParseMoney(pricePerDay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	parsedType, err := room.ParseType(roomType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity, err := room.NewRoom(id, number, parsedType, price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return entity, nil
}
