package venue

import (
	"errors"
	"strings"

	"hotel-backoffice/internal/domain/booking"

	"github.com/google/uuid"
)

const MaxNameLength = 255

var (
	ErrNameRequired    = errors.New("venue name is required")
	ErrNameTooLong     = errors.New("venue name exceeds maximum length")
	ErrInvalidCapacity = errors.New("venue capacity must be positive")
)

// Venue is an event space: a bookable resource with a capacity and a flat
// per-day rate. Bookings are closed ranges, the end day is occupied.
type Venue struct {
	id          uuid.UUID
	name        string
	capacity    int
	pricePerDay booking.Money
}

func NewVenue(id uuid.UUID, name string, capacity int, pricePerDay booking.Money) (*Venue, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}
	if len(trimmed) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Venue{
		id:          id,
		name:        trimmed,
		capacity:    capacity,
		pricePerDay: pricePerDay,
	}, nil
}

func (v *Venue) ID() uuid.UUID              { return v.id }
func (v *Venue) Name() string               { return v.name }
func (v *Venue) Capacity() int              { return v.capacity }
func (v *Venue) PricePerDay() booking.Money { return v.pricePerDay }

// Tariff exposes the venue to the booking engine.
func (v *Venue) Tariff() booking.Tariff {
	return booking.Tariff{
		ResourceID: v.id,
		PerDay:     v.pricePerDay,
		Mode:       booking.Closed,
	}
}
