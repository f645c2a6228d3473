package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	roomHandler *api.RoomHandler,
	venueHandler *api.VenueHandler,
	roomReservationHandler *api.RoomReservationHandler,
	venueReservationHandler *api.VenueReservationHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, roomHandler, venueHandler, roomReservationHandler, venueReservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	roomHandler *api.RoomHandler,
	venueHandler *api.VenueHandler,
	roomReservationHandler *api.RoomReservationHandler,
	venueReservationHandler *api.VenueReservationHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: roomHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: roomHandler.Update},
				{Method: http.MethodPatch, Path: "/:id", Handler: roomHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: roomReservationHandler.CheckAvailability},
			})
		}

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodPost, Path: "", Handler: venueHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: venueHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: venueHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: venueHandler.Update},
				{Method: http.MethodPatch, Path: "/:id", Handler: venueHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: venueHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: venueReservationHandler.CheckAvailability},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: roomReservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: roomReservationHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: roomReservationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: roomReservationHandler.Update},
				{Method: http.MethodPatch, Path: "/:id", Handler: roomReservationHandler.Update},
				{Method: http.MethodPatch, Path: "/:id/payment-status", Handler: roomReservationHandler.UpdatePaymentStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomReservationHandler.Delete},
			})
		}

		venueReservations := apiGroup.Group("/venue-reservations")
		{
			addRoutes(venueReservations, []route{
				{Method: http.MethodPost, Path: "", Handler: venueReservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: venueReservationHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: venueReservationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: venueReservationHandler.Update},
				{Method: http.MethodPatch, Path: "/:id", Handler: venueReservationHandler.Update},
				{Method: http.MethodPatch, Path: "/:id/payment-status", Handler: venueReservationHandler.UpdatePaymentStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: venueReservationHandler.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
