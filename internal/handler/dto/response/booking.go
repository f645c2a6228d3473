package response

import (
	"time"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	GuestName    string    `json:"guestName"`
	GuestPhone   string    `json:"guestPhone"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	Days         int       `json:"days"`
	TotalPrice   string    `json:"totalPrice"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromRoomReservationView(rm *queries.BookingView) *RoomReservationResponse {
	return &RoomReservationResponse{
		ID:           rm.ID,
		RoomID:       rm.ResourceID,
		RoomNumber:   rm.ResourceName,
		GuestName:    rm.GuestName,
		GuestPhone:   rm.GuestPhone,
		CheckInDate:  rm.StartDate,
		CheckOutDate: rm.EndDate,
		Days:         rm.Days,
		TotalPrice:   rm.TotalPrice,
		Status:       rm.Status,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

type VenueReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	VenueID    uuid.UUID `json:"venueId"`
	VenueName  string    `json:"venueName"`
	GuestName  string    `json:"guestName"`
	GuestPhone string    `json:"guestPhone"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Days       int       `json:"days"`
	TotalPrice string    `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromVenueReservationView(rm *queries.BookingView) *VenueReservationResponse {
	return &VenueReservationResponse{
		ID:         rm.ID,
		VenueID:    rm.ResourceID,
		VenueName:  rm.ResourceName,
		GuestName:  rm.GuestName,
		GuestPhone: rm.GuestPhone,
		StartDate:  rm.StartDate,
		EndDate:    rm.EndDate,
		Days:       rm.Days,
		TotalPrice: rm.TotalPrice,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

type RoomAvailabilityResponse struct {
	Available bool                       `json:"available"`
	Conflicts []*RoomReservationResponse `json:"conflicts"`
}

func FromRoomAvailability(rm *queries.AvailabilityResult) *RoomAvailabilityResponse {
	conflicts := make([]*RoomReservationResponse, len(rm.Conflicts))
	for i := range rm.Conflicts {
		conflicts[i] = FromRoomReservationView(&rm.Conflicts[i])
	}
	return &RoomAvailabilityResponse{
		Available: rm.Available,
		Conflicts: conflicts,
	}
}

type VenueAvailabilityResponse struct {
	Available bool                        `json:"available"`
	Conflicts []*VenueReservationResponse `json:"conflicts"`
}

func FromVenueAvailability(rm *queries.AvailabilityResult) *VenueAvailabilityResponse {
	conflicts := make([]*VenueReservationResponse, len(rm.Conflicts))
	for i := range rm.Conflicts {
		conflicts[i] = FromVenueReservationView(&rm.Conflicts[i])
	}
	return &VenueAvailabilityResponse{
		Available: rm.Available,
		Conflicts: conflicts,
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
