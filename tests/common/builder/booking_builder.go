//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotel-backoffice/internal/domain/booking"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingBuilder assembles bookings in every representation the tests need.
// Defaults describe a valid two-night room stay well in the future.
type BookingBuilder struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	GuestName    string
	GuestPhone   string
	StartDate    time.Time
	EndDate      time.Time
	Mode         dombooking.RangeMode
	PerDayCents  int64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	return &BookingBuilder{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "101",
		GuestName:    "Taro Yamada",
		GuestPhone:   "090-1234-5678",
		StartDate:    date(2030, 1, 10),
		EndDate:      date(2030, 1, 12),
		Mode:         dombooking.HalfOpen,
		PerDayCents:  1500000,
		Status:       "unpaid",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func NewVenueBookingBuilder() *BookingBuilder {
	b := NewBookingBuilder()
	b.ResourceName = "Grand Hall"
	b.StartDate = date(2030, 2, 1)
	b.EndDate = date(2030, 2, 3)
	b.Mode = dombooking.Closed
	return b
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Tariff() dombooking.Tariff {
	perDay, err := dombooking.NewMoney(b.PerDayCents)
	if err != nil {
		panic(err)
	}
	return dombooking.Tariff{
		ResourceID: b.ResourceID,
		PerDay:     perDay,
		Mode:       b.Mode,
	}
}

func (b *BookingBuilder) DateRange() (dombooking.DateRange, error) {
	return dombooking.NewDateRange(b.StartDate, b.EndDate, b.Mode)
}

func (b *BookingBuilder) BuildDomain(today time.Time) (*dombooking.Booking, error) {
	name, err := dombooking.NewGuestName(b.GuestName)
	if err != nil {
		return nil, err
	}
	phone, err := dombooking.NewGuestPhone(b.GuestPhone)
	if err != nil {
		return nil, err
	}
	dates, err := b.DateRange()
	if err != nil {
		return nil, err
	}
	status, err := dombooking.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.Tariff(), name, phone, dates, status, today)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	days := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if b.Mode == dombooking.Closed {
		days++
	}
	return &shared.BookingSnapshot{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		GuestName:       b.GuestName,
		GuestPhone:      b.GuestPhone,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalPriceCents: b.PerDayCents * int64(days),
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildRecord() queries.BookingRecord {
	snap := b.BuildSnapshot()
	return queries.BookingRecord{
		ID:              snap.ID,
		ResourceID:      snap.ResourceID,
		ResourceName:    b.ResourceName,
		GuestName:       snap.GuestName,
		GuestPhone:      snap.GuestPhone,
		StartDate:       snap.StartDate,
		EndDate:         snap.EndDate,
		TotalPriceCents: snap.TotalPriceCents,
		Status:          snap.Status,
		CreatedAt:       snap.CreatedAt,
		UpdatedAt:       snap.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	record := b.BuildRecord()
	days := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if b.Mode == dombooking.Closed {
		days++
	}
	return &queries.BookingView{
		ID:           record.ID,
		ResourceID:   record.ResourceID,
		ResourceName: record.ResourceName,
		GuestName:    record.GuestName,
		GuestPhone:   record.GuestPhone,
		StartDate:    b.StartDate.Format("2006-01-02"),
		EndDate:      b.EndDate.Format("2006-01-02"),
		Days:         days,
		TotalPrice:   dombooking.FormatCents(record.TotalPriceCents),
		Status:       record.Status,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRoomRequestDTO() reqdto.CreateRoomReservationRequest {
	return reqdto.CreateRoomReservationRequest{
		RoomID:       b.ResourceID,
		GuestName:    b.GuestName,
		GuestPhone:   b.GuestPhone,
		CheckInDate:  b.StartDate.Format("2006-01-02"),
		CheckOutDate: b.EndDate.Format("2006-01-02"),
		Status:       b.Status,
	}
}

func (b *BookingBuilder) BuildCreateVenueRequestDTO() reqdto.CreateVenueReservationRequest {
	return reqdto.CreateVenueReservationRequest{
		VenueID:    b.ResourceID,
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
		StartDate:  b.StartDate.Format("2006-01-02"),
		EndDate:    b.EndDate.Format("2006-01-02"),
		Status:     b.Status,
	}
}

func (b *BookingBuilder) ResourceSnapshot() *shared.ResourceSnapshot {
	return &shared.ResourceSnapshot{
		ID:               b.ResourceID,
		Name:             b.ResourceName,
		PricePerDayCents: b.PerDayCents,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
