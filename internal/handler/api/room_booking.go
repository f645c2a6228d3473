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

type RoomReservationHandler struct {
	commands commands.RoomBookingCommands
	queries  queries.RoomBookingQueries
}

func NewRoomReservationHandler(cmd commands.RoomBookingCommands, qry queries.RoomBookingQueries) *RoomReservationHandler {
	return &RoomReservationHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create room reservation
// @Description Reserve a room for a guest over a half-open stay; the checkout day stays free
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomReservationRequest true "Reservation attributes"
// @Success 201 {object} resdto.RoomReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *RoomReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomReservationRequest
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
	c.JSON(http.StatusCreated, resdto.FromRoomReservationView(view))
}

// @Summary List room reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.RoomReservationResponse
// @Router /reservations [get]
func (h *RoomReservationHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]*resdto.RoomReservationResponse, len(views))
	for i := range views {
		response[i] = resdto.FromRoomReservationView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get room reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.RoomReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *RoomReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomReservationView(view))
}

// @Summary Update room reservation
// @Description Partially update a reservation; changing the room or dates re-checks availability and re-prices the stay
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateRoomReservationRequest true "Fields to change"
// @Success 200 {object} resdto.RoomReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id} [patch]
func (h *RoomReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomReservationRequest
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
	c.JSON(http.StatusOK, resdto.FromRoomReservationView(view))
}

// @Summary Update payment status
// @Description Flip the reservation between unpaid and paid without touching dates or price
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "New payment status"
// @Success 200 {object} resdto.RoomReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/payment-status [patch]
func (h *RoomReservationHandler) UpdatePaymentStatus(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromRoomReservationView(view))
}

// @Summary Delete room reservation
// @Description Cancel a reservation; its dates become available immediately
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *RoomReservationHandler) Delete(c *gin.Context) {
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

// @Summary Check room availability
// @Description Report whether the room is free for a date range and list blocking reservations
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string true "Check-out date (YYYY-MM-DD)"
// @Param exclude_id query string false "Reservation to ignore"
// @Success 200 {object} resdto.RoomAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id}/availability [get]
func (h *RoomReservationHandler) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query reqdto.RoomAvailabilityQuery
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
	c.JSON(http.StatusOK, resdto.FromRoomAvailability(result))
}

func (h *RoomReservationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, errs.ErrBookingConflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Room is not available for the requested dates"})
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid date range"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
