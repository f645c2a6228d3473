package commands

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/patch"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	GuestName  string
	GuestPhone string
	ResourceID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Status     string
}

// UpdateBookingInput carries a partial payload; nil fields keep their stored
// values. Touching the resource or either date re-runs the availability check
// against the merged range.
type UpdateBookingInput struct {
	GuestName  *string
	GuestPhone *string
	ResourceID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *string
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateBookingInput) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Distinct interface types so fx can wire both variants side by side.
type (
	RoomBookingCommands  interface{ BookingCommands }
	VenueBookingCommands interface{ BookingCommands }
)

// bookingVariant binds the shared engine to one subsystem: which range
// semantics apply, which repositories to use, and which not-found error to
// report for the resource.
type bookingVariant struct {
	mode             booking.RangeMode
	resourceNotFound error
	bookings         func(shared.Tx) shared.BookingRepository
	lockResource     func(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ResourceSnapshot, error)
	bookingByID      func(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.BookingSnapshot, error)
}

func roomVariant() bookingVariant {
	return bookingVariant{
		mode:             booking.HalfOpen,
		resourceNotFound: errs.ErrRoomNotFound,
		bookings:         func(tx shared.Tx) shared.BookingRepository { return tx.RoomBookings() },
		lockResource: func(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ResourceSnapshot, error) {
			return tx.Rooms().LockForBooking(ctx, id)
		},
		bookingByID: func(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.BookingSnapshot, error) {
			return reads.RoomBookingByID(ctx, id)
		},
	}
}

func venueVariant() bookingVariant {
	return bookingVariant{
		mode:             booking.Closed,
		resourceNotFound: errs.ErrVenueNotFound,
		bookings:         func(tx shared.Tx) shared.BookingRepository { return tx.VenueBookings() },
		lockResource: func(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ResourceSnapshot, error) {
			return tx.Venues().LockForBooking(ctx, id)
		},
		bookingByID: func(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.BookingSnapshot, error) {
			return reads.VenueBookingByID(ctx, id)
		},
	}
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	variant bookingVariant
}

func NewRoomBookingCommands(uow shared.UnitOfWork, clk clock.Clock) RoomBookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk, variant: roomVariant()}
}

func NewVenueBookingCommands(uow shared.UnitOfWork, clk clock.Clock) VenueBookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk, variant: venueVariant()}
}

// Create validates in a fixed order (shape, resource existence, date rules,
// availability) and only then persists. The resource row lock taken before
// the overlap check makes check-then-insert atomic per resource.
func (uc *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (uuid.UUID, error) {
	name, err := booking.NewGuestName(in.GuestName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	phone, err := booking.NewGuestPhone(in.GuestPhone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	status, err := booking.ParseStatus(in.Status)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, lerr := uc.variant.lockResource(ctx, tx, in.ResourceID)
		if lerr != nil {
			if infra.IsKind(lerr, infra.KindNotFound) {
				return uc.variant.resourceNotFound
			}
			return errs.Mark(lerr, errs.ErrDatabaseOperationFailed)
		}

		dates, derr := booking.NewDateRange(in.StartDate, in.EndDate, uc.variant.mode)
		if derr != nil {
			return errs.Mark(derr, errs.ErrInvalidDateRange)
		}
		if verr := dates.ValidateNotPast(clock.Today(uc.clock)); verr != nil {
			return errs.Mark(verr, errs.ErrInvalidDateRange)
		}

		repo := uc.variant.bookings(tx)
		conflict, cerr := repo.OverlapExists(ctx, res.ID, dates, nil)
		if cerr != nil {
			return errs.Mark(cerr, errs.ErrDatabaseOperationFailed)
		}
		if conflict {
			return errs.ErrBookingConflict
		}

		tariff, terr := tariffFrom(res, uc.variant.mode)
		if terr != nil {
			return terr
		}
		b, berr := booking.NewBooking(tariff, name, phone, dates, status, clock.Today(uc.clock))
		if berr != nil {
			return errs.Mark(berr, errs.ErrInvalidDateRange)
		}

		if ierr := repo.Insert(ctx, b); ierr != nil {
			if infra.IsKind(ierr, infra.KindConflict) {
				// exclusion constraint backstop
				return errs.Mark(ierr, errs.ErrBookingConflict)
			}
			return errs.Mark(ierr, errs.ErrDatabaseOperationFailed)
		}
		createdID = b.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

// Update merges the partial payload over the stored booking. Guest or status
// changes apply directly; a change to the resource or either date re-checks
// availability (excluding this booking) and recomputes the price on the
// merged values. Nothing is written when any step fails.
func (uc *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateBookingInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := uc.variant.bookingByID(ctx, tx.Reads(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		name, nerr := booking.NewGuestName(patch.Coalesce(in.GuestName, snap.GuestName))
		if nerr != nil {
			return errs.Mark(nerr, errs.ErrDomainValidation)
		}
		phone, perr := booking.NewGuestPhone(patch.Coalesce(in.GuestPhone, snap.GuestPhone))
		if perr != nil {
			return errs.Mark(perr, errs.ErrDomainValidation)
		}
		status, serr := booking.ParseStatus(patch.Coalesce(in.Status, snap.Status))
		if serr != nil {
			return errs.Mark(serr, errs.ErrDomainValidation)
		}

		repo := uc.variant.bookings(tx)

		rangeTouched := in.ResourceID != nil || in.StartDate != nil || in.EndDate != nil
		if !rangeTouched {
			// Stored ranges predate this request and may legitimately start
			// in the past; they are not revalidated here.
			dates, derr := booking.NewDateRange(snap.StartDate, snap.EndDate, uc.variant.mode)
			if derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
			price, merr := booking.NewMoney(snap.TotalPriceCents)
			if merr != nil {
				return errs.Mark(merr, errs.ErrDatabaseOperationFailed)
			}
			b := booking.Reconstruct(snap.ID, snap.ResourceID, name, phone, dates, price, status, snap.CreatedAt, snap.UpdatedAt)
			if uerr := repo.Update(ctx, b); uerr != nil {
				return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
			}
			return nil
		}

		resourceID := patch.Coalesce(in.ResourceID, snap.ResourceID)
		res, lerr := uc.variant.lockResource(ctx, tx, resourceID)
		if lerr != nil {
			if infra.IsKind(lerr, infra.KindNotFound) {
				return uc.variant.resourceNotFound
			}
			return errs.Mark(lerr, errs.ErrDatabaseOperationFailed)
		}

		start := patch.Coalesce(in.StartDate, snap.StartDate)
		end := patch.Coalesce(in.EndDate, snap.EndDate)
		dates, derr := booking.NewDateRange(start, end, uc.variant.mode)
		if derr != nil {
			return errs.Mark(derr, errs.ErrInvalidDateRange)
		}
		if in.StartDate != nil {
			if verr := dates.ValidateNotPast(clock.Today(uc.clock)); verr != nil {
				return errs.Mark(verr, errs.ErrInvalidDateRange)
			}
		}

		conflict, cerr := repo.OverlapExists(ctx, res.ID, dates, &id)
		if cerr != nil {
			return errs.Mark(cerr, errs.ErrDatabaseOperationFailed)
		}
		if conflict {
			return errs.ErrBookingConflict
		}

		tariff, terr := tariffFrom(res, uc.variant.mode)
		if terr != nil {
			return terr
		}
		b := booking.Reconstruct(id, res.ID, name, phone, dates, tariff.PriceFor(dates), status, snap.CreatedAt, snap.UpdatedAt)
		if uerr := repo.Update(ctx, b); uerr != nil {
			if infra.IsKind(uerr, infra.KindConflict) {
				return errs.Mark(uerr, errs.ErrBookingConflict)
			}
			return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// UpdatePaymentStatus changes only the payment state. No availability or
// price revalidation happens, even when the stored range would conflict.
func (uc *bookingCommandsImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := booking.ParseStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if uerr := uc.variant.bookings(tx).UpdateStatus(ctx, id, parsed); uerr != nil {
			if infra.IsKind(uerr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.variant.bookings(tx).Delete(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func tariffFrom(res *shared.ResourceSnapshot, mode booking.RangeMode) (booking.Tariff, error) {
	perDay, err := booking.NewMoney(res.PricePerDayCents)
	if err != nil {
		return booking.Tariff{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.Tariff{ResourceID: res.ID, PerDay: perDay, Mode: mode}, nil
}
