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

type VenueHandler struct {
	commands commands.VenueCommands
	queries  queries.VenueQueries
}

func NewVenueHandler(cmd commands.VenueCommands, qry queries.VenueQueries) *VenueHandler {
	return &VenueHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create venue
// @Description Register a new event space with its capacity and per-day rate
// @Tags venues
// @Accept json
// @Produce json
// @Param request body reqdto.CreateVenueRequest true "Venue attributes"
// @Success 201 {object} resdto.VenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} map[string]string
// @Router /venues [post]
func (h *VenueHandler) Create(c *gin.Context) {
	var req reqdto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.FieldErrors(err))
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVenueView(view))
}

// @Summary List venues
// @Tags venues
// @Produce json
// @Success 200 {array} resdto.VenueResponse
// @Router /venues [get]
func (h *VenueHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]*resdto.VenueResponse, len(views))
	for i := range views {
		response[i] = resdto.FromVenueView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary Update venue
// @Description Partially update a venue; omitted fields keep their values
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body reqdto.UpdateVenueRequest true "Fields to change"
// @Success 200 {object} resdto.VenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues/{id} [patch]
func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", httperr.FieldErrors(err))
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary Delete venue
// @Description Delete a venue and all bookings attached to it
// @Tags venues
// @Param id path string true "Venue ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [delete]
func (h *VenueHandler) Delete(c *gin.Context) {
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

func (h *VenueHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
