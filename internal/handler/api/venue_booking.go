package api

import (
	"errors"
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueReservationHandler struct {
	commands commands.VenueBookingCommands
	queries  queries.VenueBookingQueries
}

func NewVenueReservationHandler(cmd commands.VenueBookingCommands, qry queries.VenueBookingQueries) *VenueReservationHandler {
	return &VenueReservationHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create venue booking
// @Description Book a venue for an event over a closed date range; the end day is occupied
// @Tags venue-reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateVenueReservationRequest true "Booking attributes"
// @Success 201 {object} resdto.VenueReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venue-reservations [post]
func (h *VenueReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateVenueReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.FieldErrors(err))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVenueReservationView(view))
}

// @Summary List venue bookings
// @Tags venue-reservations
// @Produce json
// @Success 200 {array} resdto.VenueReservationResponse
// @Router /venue-reservations [get]
func (h *VenueReservationHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]*resdto.VenueReservationResponse, len(views))
	for i := range views {
		response[i] = resdto.FromVenueReservationView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get venue booking
// @Tags venue-reservations
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.VenueReservationResponse
// @Failure 404 {object} map[string]string
// @Router /venue-reservations/{id} [get]
func (h *VenueReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueReservationView(view))
}

// @Summary Update venue booking
// @Description Partially update a booking; changing the venue or dates re-checks availability and re-prices the event
// @Tags venue-reservations
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateVenueReservationRequest true "Fields to change"
// @Success 200 {object} resdto.VenueReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venue-reservations/{id} [patch]
func (h *VenueReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateVenueReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.FieldErrors(err))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, input); err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueReservationView(view))
}

// @Summary Update payment status
// @Description Flip the booking between unpaid and paid without touching dates or price
// @Tags venue-reservations
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "New payment status"
// @Success 200 {object} resdto.VenueReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Router /venue-reservations/{id}/payment-status [patch]
func (h *VenueReservationHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.FieldErrors(err))
		return
	}

	if err := h.commands.UpdatePaymentStatus(c.Request.Context(), id, req.Status); err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueReservationView(view))
}

// @Summary Delete venue booking
// @Description Cancel a booking; its dates become available immediately
// @Tags venue-reservations
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /venue-reservations/{id} [delete]
func (h *VenueReservationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check venue availability
// @Description Report whether the venue is free for a date range and list blocking bookings
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Param start_date query string true "First event day (YYYY-MM-DD)"
// @Param end_date query string true "Last event day (YYYY-MM-DD)"
// @Param exclude_id query string false "Booking to ignore"
// @Success 200 {object} resdto.VenueAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues/{id}/availability [get]
func (h *VenueReservationHandler) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query reqdto.VenueAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", httperr.FieldErrors(err))
		return
	}

	start, end, excludeID, err := query.Parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	result, err := h.queries.CheckAvailability(c.Request.Context(), id, start, end, excludeID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueAvailability(result))
}

func (h *VenueReservationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, errs.ErrBookingConflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Venue is not available for the requested dates"})
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid date range"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
