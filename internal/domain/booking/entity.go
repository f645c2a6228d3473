package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrRangeModeMismatch = errors.New("date range mode does not match resource")

// Tariff is the pricing capability a bookable resource exposes to the engine:
// its identity, flat per-day rate, and range inclusivity mode. Rooms and
// venues both reduce to this.
type Tariff struct {
	ResourceID uuid.UUID
	PerDay     Money
	Mode       RangeMode
}

// PriceFor derives the total for a stay: duration in days times the flat
// per-day rate. Always recomputed here; never trusted from client input.
func (t Tariff) PriceFor(r DateRange) Money {
	return t.PerDay.MulDays(r.Days())
}

// Booking is a reservation of a single resource for a whole-day date range.
type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	guestName  GuestName
	guestPhone GuestPhone
	dates      DateRange
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking builds a booking for the given tariff. The caller has already
// resolved the resource and checked availability; this validates the date
// rules and derives the price.
func NewBooking(
	tariff Tariff,
	name GuestName,
	phone GuestPhone,
	dates DateRange,
	status Status,
	today time.Time,
) (*Booking, error) {
	if dates.Mode() != tariff.Mode {
		return nil, ErrRangeModeMismatch
	}
	if err := dates.ValidateNotPast(today); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Booking{
		id:         uuid.New(),
		resourceID: tariff.ResourceID,
		guestName:  name,
		guestPhone: phone,
		dates:      dates,
		totalPrice: tariff.PriceFor(dates),
		status:     status,
	}, nil
}

func Reconstruct(
	id, resourceID uuid.UUID,
	name GuestName,
	phone GuestPhone,
	dates DateRange,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		guestName:  name,
		guestPhone: phone,
		dates:      dates,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangePaymentStatus flips the payment state only. Dates and price are
// untouched, so no availability re-check is needed.
func (b *Booking) ChangePaymentStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	b.status = status
	return nil
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ResourceID() uuid.UUID  { return b.resourceID }
func (b *Booking) GuestName() GuestName   { return b.guestName }
func (b *Booking) GuestPhone() GuestPhone { return b.guestPhone }
func (b *Booking) Dates() DateRange       { return b.dates }
func (b *Booking) TotalPrice() Money      { return b.totalPrice }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Days() int              { return b.dates.Days() }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
