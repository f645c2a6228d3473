package shared

import (
	"time"

	"github.com/google/uuid"
)

// ResourceSnapshot is the tariff-shaped slice of a room or venue the booking
// engine needs: identity and flat per-day rate.
type ResourceSnapshot struct {
	ID               uuid.UUID
	Name             string
	PricePerDayCents int64
}

type RoomSnapshot struct {
	ID               uuid.UUID
	RoomNumber       string
	RoomType         string
	PricePerDayCents int64
}

type VenueSnapshot struct {
	ID               uuid.UUID
	Name             string
	Capacity         int
	PricePerDayCents int64
}

type BookingSnapshot struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	GuestName       string
	GuestPhone      string
	StartDate       time.Time
	EndDate         time.Time
	TotalPriceCents int64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
