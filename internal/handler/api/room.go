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
	"github.com/google/uuid"
)

type RoomHandler struct {
	commands commands.RoomCommands
	queries  queries.RoomQueries
}

func NewRoomHandler(cmd commands.RoomCommands, qry queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create room
// @Description Register a new room with its type and per-day rate
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room attributes"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
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
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]*resdto.RoomResponse, len(views))
	for i := range views {
		response[i] = resdto.FromRoomView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Partially update a room; omitted fields keep their values
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
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
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Description Delete a room and all reservations attached to it
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
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

func (h *RoomHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, errs.ErrRoomNumberTaken):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Room number is already taken"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}
