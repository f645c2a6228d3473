package room

import (
	"errors"
	"strings"

	"hotel-backoffice/internal/domain/booking"

	"github.com/google/uuid"
)

const MaxRoomNumberLength = 50

var (
	ErrRoomNumberRequired = errors.New("room number is required")
	ErrRoomNumberTooLong  = errors.New("room number exceeds maximum length")
	ErrInvalidRoomType    = errors.New("invalid room type")
)

type Type string

const (
	TypeStandard Type = "Standard"
	TypeDeluxe   Type = "Deluxe"
)

func (t Type) IsValid() bool {
	return t == TypeStandard || t == TypeDeluxe
}

func ParseType(value string) (Type, error) {
	t := Type(value)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}

// Room is a hotel room: a bookable resource with a unique room number and a
// flat per-day rate. Stays are half-open, the checkout day is free.
type Room struct {
	id          uuid.UUID
	number      string
	roomType    Type
	pricePerDay booking.Money
}

func NewRoom(id uuid.UUID, number string, roomType Type, pricePerDay booking.Money) (*Room, error) {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return nil, ErrRoomNumberRequired
	}
	if len(trimmed) > MaxRoomNumberLength {
		return nil, ErrRoomNumberTooLong
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}

	return &Room{
		id:          id,
		number:      trimmed,
		roomType:    roomType,
		pricePerDay: pricePerDay,
	}, nil
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) Number() string             { return r.number }
func (r *Room) Type() Type                 { return r.roomType }
func (r *Room) PricePerDay() booking.Money { return r.pricePerDay }

// Tariff exposes the room to the booking engine.
func (r *Room) Tariff() booking.Tariff {
	return booking.Tariff{
		ResourceID: r.id,
		PerDay:     r.pricePerDay,
		Mode:       booking.HalfOpen,
	}
}
