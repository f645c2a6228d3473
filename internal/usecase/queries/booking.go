package queries

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// BookingView is the presentation shape of a booking: dates as calendar
// strings, price as a two-decimal string, billable day count included.
type BookingView struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	GuestName    string
	GuestPhone   string
	StartDate    string
	EndDate      string
	Days         int
	TotalPrice   string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AvailabilityResult struct {
	Available bool
	Conflicts []BookingView
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context) ([]BookingView, error)
	// CheckAvailability reports whether the resource is free for the range
	// and returns the bookings that block it. excludeID ignores one booking
	// so a reschedule can probe its own slot.
	CheckAvailability(ctx context.Context, resourceID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (*AvailabilityResult, error)
}

type (
	RoomBookingQueries  interface{ BookingQueries }
	VenueBookingQueries interface{ BookingQueries }
)

type bookingQueryVariant struct {
	mode             booking.RangeMode
	resourceNotFound error
	resourceExists   func(ctx context.Context, id uuid.UUID) error
}

type bookingQueriesImpl struct {
	store   BookingReadStore
	variant bookingQueryVariant
}

func NewRoomBookingQueries(store RoomBookingReadStore, rooms RoomReadStore) RoomBookingQueries {
	return &bookingQueriesImpl{
		store: store,
		variant: bookingQueryVariant{
			mode:             booking.HalfOpen,
			resourceNotFound: errs.ErrRoomNotFound,
			resourceExists: func(ctx context.Context, id uuid.UUID) error {
				_, err := rooms.ByID(ctx, id)
				return err
			},
		},
	}
}

func NewVenueBookingQueries(store VenueBookingReadStore, venues VenueReadStore) VenueBookingQueries {
	return &bookingQueriesImpl{
		store: store,
		variant: bookingQueryVariant{
			mode:             booking.Closed,
			resourceNotFound: errs.ErrVenueNotFound,
			resourceExists: func(ctx context.Context, id uuid.UUID) error {
				_, err := venues.ByID(ctx, id)
				return err
			},
		},
	}
}

func (uc *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	record, err := uc.store.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view := uc.toView(*record)
	return &view, nil
}

func (uc *bookingQueriesImpl) List(ctx context.Context) ([]BookingView, error) {
	records, err := uc.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]BookingView, 0, len(records))
	for _, r := range records {
		views = append(views, uc.toView(r))
	}
	return views, nil
}

func (uc *bookingQueriesImpl) CheckAvailability(ctx context.Context, resourceID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (*AvailabilityResult, error) {
	if err := uc.variant.resourceExists(ctx, resourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, uc.variant.resourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	candidate, err := booking.NewDateRange(start, end, uc.variant.mode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	records, err := uc.store.ListForResource(ctx, resourceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var conflicts []BookingView
	for _, r := range records {
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		stored, rerr := booking.NewDateRange(r.StartDate, r.EndDate, uc.variant.mode)
		if rerr != nil {
			return nil, errs.Mark(rerr, errs.ErrDatabaseOperationFailed)
		}
		if candidate.Overlaps(stored) {
			conflicts = append(conflicts, uc.toView(r))
		}
	}

	return &AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

func (uc *bookingQueriesImpl) toView(r BookingRecord) BookingView {
	days := 0
	if dates, err := booking.NewDateRange(r.StartDate, r.EndDate, uc.variant.mode); err == nil {
		days = dates.Days()
	}
	return BookingView{
		ID:           r.ID,
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		GuestName:    r.GuestName,
		GuestPhone:   r.GuestPhone,
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		Days:         days,
		TotalPrice:   booking.FormatCents(r.TotalPriceCents),
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
