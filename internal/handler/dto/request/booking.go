package request

import (
	"time"

	"hotel-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Dates arrive as calendar strings; the datetime binding rule guarantees the
// layout before parseDate runs.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type CreateRoomReservationRequest struct {
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	GuestName    string    `json:"guest_name" binding:"required,max=255"`
	GuestPhone   string    `json:"guest_phone" binding:"required,max=20"`
	CheckInDate  string    `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string    `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	Status       string    `json:"status" binding:"required,oneof=unpaid paid"`
}

func (r CreateRoomReservationRequest) ToInput() (commands.CreateBookingInput, error) {
	start, err := parseDate(r.CheckInDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	end, err := parseDate(r.CheckOutDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		ResourceID: r.RoomID,
		StartDate:  start,
		EndDate:    end,
		Status:     r.Status,
	}, nil
}

type UpdateRoomReservationRequest struct {
	RoomID       *uuid.UUID `json:"room_id" binding:"omitempty"`
	GuestName    *string    `json:"guest_name" binding:"omitempty,max=255"`
	GuestPhone   *string    `json:"guest_phone" binding:"omitempty,max=20"`
	CheckInDate  *string    `json:"check_in_date" binding:"omitempty,datetime=2006-01-02"`
	CheckOutDate *string    `json:"check_out_date" binding:"omitempty,datetime=2006-01-02"`
	Status       *string    `json:"status" binding:"omitempty,oneof=unpaid paid"`
}

func (r UpdateRoomReservationRequest) ToInput() (commands.UpdateBookingInput, error) {
	start, err := parseDatePtr(r.CheckInDate)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}
	end, err := parseDatePtr(r.CheckOutDate)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}
	return commands.UpdateBookingInput{
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		ResourceID: r.RoomID,
		StartDate:  start,
		EndDate:    end,
		Status:     r.Status,
	}, nil
}

type CreateVenueReservationRequest struct {
	VenueID    uuid.UUID `json:"venue_id" binding:"required"`
	GuestName  string    `json:"guest_name" binding:"required,max=255"`
	GuestPhone string    `json:"guest_phone" binding:"required,max=20"`
	StartDate  string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string    `json:"end_date" binding:"required,datetime=2006-01-02"`
	Status     string    `json:"status" binding:"required,oneof=unpaid paid"`
}

func (r CreateVenueReservationRequest) ToInput() (commands.CreateBookingInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		ResourceID: r.VenueID,
		StartDate:  start,
		EndDate:    end,
		Status:     r.Status,
	}, nil
}

type UpdateVenueReservationRequest struct {
	VenueID    *uuid.UUID `json:"venue_id" binding:"omitempty"`
	GuestName  *string    `json:"guest_name" binding:"omitempty,max=255"`
	GuestPhone *string    `json:"guest_phone" binding:"omitempty,max=20"`
	StartDate  *string    `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    *string    `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status     *string    `json:"status" binding:"omitempty,oneof=unpaid paid"`
}

func (r UpdateVenueReservationRequest) ToInput() (commands.UpdateBookingInput, error) {
	start, err := parseDatePtr(r.StartDate)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}
	end, err := parseDatePtr(r.EndDate)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}
	return commands.UpdateBookingInput{
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		ResourceID: r.VenueID,
		StartDate:  start,
		EndDate:    end,
		Status:     r.Status,
	}, nil
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid"`
}

// Availability probes take the variant's own date vocabulary: rooms speak
// check-in/check-out, venues start/end. exclude_id lets a reschedule ignore
// its own booking.
type RoomAvailabilityQuery struct {
	CheckInDate  string `form:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string `form:"check_out_date" binding:"required,datetime=2006-01-02"`
	ExcludeID    string `form:"exclude_id" binding:"omitempty,uuid"`
}

func (q RoomAvailabilityQuery) Parse() (start, end time.Time, excludeID *uuid.UUID, err error) {
	return parseAvailability(q.CheckInDate, q.CheckOutDate, q.ExcludeID)
}

type VenueAvailabilityQuery struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
	ExcludeID string `form:"exclude_id" binding:"omitempty,uuid"`
}

func (q VenueAvailabilityQuery) Parse() (start, end time.Time, excludeID *uuid.UUID, err error) {
	return parseAvailability(q.StartDate, q.EndDate, q.ExcludeID)
}

func parseAvailability(rawStart, rawEnd, rawExclude string) (start, end time.Time, excludeID *uuid.UUID, err error) {
	start, err = parseDate(rawStart)
	if err != nil {
		return
	}
	end, err = parseDate(rawEnd)
	if err != nil {
		return
	}
	if rawExclude != "" {
		var id uuid.UUID
		id, err = uuid.Parse(rawExclude)
		if err != nil {
			return
		}
		excludeID = &id
	}
	return
}
