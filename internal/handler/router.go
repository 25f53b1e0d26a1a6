package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"workshop-booking/internal/handler/api"
	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, slotHandler *api.SlotHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, slotHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, slotHandler *api.SlotHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		workshops := apiGroup.Group("/workshops/:workshopId")
		{
			addRoutes(workshops, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: slotHandler.ListSlots},
				{Method: http.MethodGet, Path: "/alternatives", Handler: slotHandler.SuggestAlternatives},
			})

			ownerOnly := workshops.Group("")
			ownerOnly.Use(authMiddleware.RequireAuth())
			addRoutes(ownerOnly, []route{
				{Method: http.MethodPost, Path: "/slots", Handler: slotHandler.CreateSlot},
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.GetWorkshopBookings},
			})
		}

		slots := apiGroup.Group("/slots")
		slots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(slots, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: slotHandler.DeleteSlot},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodPost, Path: "/:serviceId/bookings", Handler: bookingHandler.CreateBooking},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.ConfirmBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: bookingHandler.CompleteBooking},
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
