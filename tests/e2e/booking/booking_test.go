//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"

	"hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL             = "/api/rooms"
	venuesURL            = "/api/venues"
	reservationsURL      = "/api/reservations"
	venueReservationsURL = "/api/venue-reservations"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createRoom(number string) string {
	t := s.T()
	body := map[string]any{"room_number": number, "room_type": "Standard", "price_per_day": "150.00"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, body)
	require.Equal(t, http.StatusCreated, w.Code, "room creation failed: %s", w.Body.String())

	var room response.RoomResponse
	httptest.DecodeResponseBody(t, w.Body, &room)
	return room.ID.String()
}

func (s *BookingSuite) createVenue(name string) string {
	t := s.T()
	body := map[string]any{"name": name, "capacity": 100, "price_per_day": "500.00"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, venuesURL, body)
	require.Equal(t, http.StatusCreated, w.Code, "venue creation failed: %s", w.Body.String())

	var venue response.VenueResponse
	httptest.DecodeResponseBody(t, w.Body, &venue)
	return venue.ID.String()
}

func roomReservationBody(roomID, checkIn, checkOut string) map[string]any {
	return map[string]any{
		"room_id":        roomID,
		"guest_name":     "Taro Yamada",
		"guest_phone":    "090-1234-5678",
		"check_in_date":  checkIn,
		"check_out_date": checkOut,
		"status":         "unpaid",
	}
}

func venueReservationBody(venueID, start, end string) map[string]any {
	return map[string]any{
		"venue_id":    venueID,
		"guest_name":  "Hanako Sato",
		"guest_phone": "080-9876-5432",
		"start_date":  start,
		"end_date":    end,
		"status":      "unpaid",
	}
}

// =============================================================================
// TestRoomReservationLifecycle
// =============================================================================

func (s *BookingSuite) TestRoomReservationLifecycle() {
	s.Run("create, read, update, pay and cancel", func() {
		t := s.T()
		roomID := s.createRoom("101")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody(roomID, "2030-06-10", "2030-06-12"))
		require.Equal(t, http.StatusCreated, w.Code, "reservation failed: %s", w.Body.String())

		var created response.RoomReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, 2, created.Days, "two nights, checkout day free")
		require.Equal(t, "300.00", created.TotalPrice)
		require.Equal(t, "unpaid", created.Status)
		require.Equal(t, "101", created.RoomNumber)

		detailURL := reservationsURL + "/" + created.ID.String()

		// the detail view matches the creation response
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched response.RoomReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &fetched)
		if diff := cmp.Diff(created, fetched, cmpopts.IgnoreFields(response.RoomReservationResponse{}, "CreatedAt", "UpdatedAt")); diff != "" {
			t.Errorf("detail view mismatch (-created +fetched):\n%s", diff)
		}

		// guest-only patch keeps dates and price
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, detailURL,
			map[string]any{"guest_name": "Jiro Suzuki"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.RoomReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "Jiro Suzuki", updated.GuestName)
		require.Equal(t, "300.00", updated.TotalPrice)
		require.Equal(t, "2030-06-10", updated.CheckInDate)

		// extending the stay re-prices it
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, detailURL,
			map[string]any{"check_out_date": "2030-06-13"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, 3, updated.Days)
		require.Equal(t, "450.00", updated.TotalPrice)

		// payment status flip
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, detailURL+"/payment-status",
			map[string]any{"status": "paid"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "paid", updated.Status)

		// cancel frees the dates
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, detailURL, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody(roomID, "2030-06-10", "2030-06-12"))
		require.Equal(t, http.StatusCreated, w.Code, "freed dates should be bookable again")
	})

	s.Run("overlapping stays are rejected, back-to-back stays are not", func() {
		t := s.T()
		roomID := s.createRoom("102")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody(roomID, "2030-06-10", "2030-06-12"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody(roomID, "2030-06-11", "2030-06-13"))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "not available")

		// next guest checks in on the checkout day
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody(roomID, "2030-06-12", "2030-06-14"))
		require.Equal(t, http.StatusCreated, w.Code, "checkout day should be free: %s", w.Body.String())
	})

	s.Run("rejects empty and inverted stays", func() {
		t := s.T()
		roomID := s.createRoom("103")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody(roomID, "2030-06-10", "2030-06-10"))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody(roomID, "2030-06-12", "2030-06-10"))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("unknown room yields 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody("00000000-0000-0000-0000-000000000001", "2030-06-10", "2030-06-12"))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})
}

// =============================================================================
// TestRoomAvailability
// =============================================================================

func (s *BookingSuite) TestRoomAvailability() {
	s.Run("reports conflicts and honors exclude_id", func() {
		t := s.T()
		roomID := s.createRoom("201")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			roomReservationBody(roomID, "2030-06-10", "2030-06-12"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.RoomReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		availabilityURL := roomsURL + "/" + roomID + "/availability"

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			availabilityURL+"?check_in_date=2030-06-11&check_out_date=2030-06-13", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result response.RoomAvailabilityResponse
		httptest.DecodeResponseBody(t, w.Body, &result)
		require.False(t, result.Available)
		require.Len(t, result.Conflicts, 1)
		require.Equal(t, created.ID, result.Conflicts[0].ID)

		// free window
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			availabilityURL+"?check_in_date=2030-06-12&check_out_date=2030-06-14", nil)
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &result)
		require.True(t, result.Available)

		// the reservation can probe its own slot
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			availabilityURL+"?check_in_date=2030-06-10&check_out_date=2030-06-12&exclude_id="+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &result)
		require.True(t, result.Available)
	})
}

// =============================================================================
// TestVenueReservations
// =============================================================================

func (s *BookingSuite) TestVenueReservations() {
	s.Run("closed ranges bill and block the end day", func() {
		t := s.T()
		venueID := s.createVenue("Grand Hall")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, venueReservationsURL,
			venueReservationBody(venueID, "2030-07-01", "2030-07-03"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.VenueReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, 3, created.Days, "both endpoints billed")
		require.Equal(t, "1500.00", created.TotalPrice)
		require.Equal(t, "Grand Hall", created.VenueName)

		// starting on the occupied end day conflicts
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, venueReservationsURL,
			venueReservationBody(venueID, "2030-07-03", "2030-07-05"))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "not available")

		// the day after is free
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, venueReservationsURL,
			venueReservationBody(venueID, "2030-07-04", "2030-07-06"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("single-day booking occupies exactly one day", func() {
		t := s.T()
		venueID := s.createVenue("Annex")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, venueReservationsURL,
			venueReservationBody(venueID, "2030-07-10", "2030-07-10"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.VenueReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, 1, created.Days)
		require.Equal(t, "500.00", created.TotalPrice)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, venueReservationsURL,
			venueReservationBody(venueID, "2030-07-10", "2030-07-10"))
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, venueReservationsURL,
			venueReservationBody(venueID, "2030-07-11", "2030-07-11"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestConcurrentReservations
// =============================================================================

func (s *BookingSuite) TestConcurrentReservations() {
	s.Run("only one of two racing requests wins the slot", func() {
		t := s.T()
		roomID := s.createRoom("301")

		const racers = 2
		codes := make([]int, racers)
		var wg sync.WaitGroup
		wg.Add(racers)
		for i := range racers {
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
					roomReservationBody(roomID, "2030-08-10", "2030-08-12"))
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var wins, losses int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				wins++
			case http.StatusUnprocessableEntity:
				losses++
			}
		}
		require.Equal(t, 1, wins, "exactly one request should win, got codes %v", codes)
		require.Equal(t, 1, losses, "the loser should see a conflict, got codes %v", codes)
	})
}
