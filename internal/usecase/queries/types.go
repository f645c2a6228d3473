package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Records are rows as the read stores return them, before presentation
// shaping. Booking rows carry the joined resource name.

type RoomRecord struct {
	ID               uuid.UUID
	RoomNumber       string
	RoomType         string
	PricePerDayCents int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type VenueRecord struct {
	ID               uuid.UUID
	Name             string
	Capacity         int
	PricePerDayCents int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BookingRecord struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	ResourceName    string
	GuestName       string
	GuestPhone      string
	StartDate       time.Time
	EndDate         time.Time
	TotalPriceCents int64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type RoomReadStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*RoomRecord, error)
	List(ctx context.Context) ([]RoomRecord, error)
}

type VenueReadStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*VenueRecord, error)
	List(ctx context.Context) ([]VenueRecord, error)
}

type BookingReadStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*BookingRecord, error)
	List(ctx context.Context) ([]BookingRecord, error)
	ListForResource(ctx context.Context, resourceID uuid.UUID) ([]BookingRecord, error)
}

// Distinct interface types so fx can wire both booking read stores side by side.
type (
	RoomBookingReadStore  interface{ BookingReadStore }
	VenueBookingReadStore interface{ BookingReadStore }
)
