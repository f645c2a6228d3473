package shared

import (
	"context"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/domain/venue"

	"github.com/google/uuid"
)

// UnitOfWork scopes a conflict-check-then-write sequence to one database
// transaction. Pairing the check and the write with a row lock on the
// resource is what keeps two concurrent requests from double-booking it.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Venues() VenueRepository
	RoomBookings() BookingRepository
	VenueBookings() BookingRepository
	Reads() CommandReads
}

// BookingRepository is the write port shared by both booking variants.
type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	// OverlapExists runs the variant's overlap predicate against stored
	// bookings for the resource, optionally ignoring one booking (update).
	OverlapExists(ctx context.Context, resourceID uuid.UUID, dates booking.DateRange, excludeID *uuid.UUID) (bool, error)
}

type RoomRepository interface {
	Insert(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	// LockForBooking resolves the room's tariff and takes a row lock held
	// until the transaction ends, serializing writers per room.
	LockForBooking(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
}

type VenueRepository interface {
	Insert(ctx context.Context, v *venue.Venue) error
	Update(ctx context.Context, v *venue.Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
	LockForBooking(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
}

// CommandReads are the minimal snapshot reads commands need before writing.
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	VenueByID(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
	RoomBookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	VenueBookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}
