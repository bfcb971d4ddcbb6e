package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pharmashift/internal/domain/user"
	"pharmashift/internal/handler/api"
	"pharmashift/internal/handler/middleware"
	"pharmashift/internal/pkg/config"
	"pharmashift/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking    *api.BookingHandler
	Invitation *api.InvitationHandler
	Shift      *api.ShiftHandler
	Auth       *middleware.AuthMiddleware
	Metrics    *metrics.Booking
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	invitationHandler *api.InvitationHandler,
	shiftHandler *api.ShiftHandler,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Booking,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, Handlers{
		Booking:    bookingHandler,
		Invitation: invitationHandler,
		Shift:      shiftHandler,
		Auth:       authMiddleware,
		Metrics:    m,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	workerOnly := h.Auth.RequireRole(user.Role.CanWork, "only pharmacists can do this")
	posterOnly := h.Auth.RequireRole(user.Role.CanPost, "only employers can do this")

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/acceptInvitation", Handler: h.Booking.AcceptInvitation, Mw: []gin.HandlerFunc{workerOnly}},
			{Method: http.MethodPost, Path: "/declineInvitation", Handler: h.Booking.DeclineInvitation, Mw: []gin.HandlerFunc{workerOnly}},
			{Method: http.MethodPost, Path: "/cancelShiftAsWorker", Handler: h.Booking.CancelShiftAsWorker, Mw: []gin.HandlerFunc{workerOnly}},
			{Method: http.MethodPost, Path: "/cancelShiftAsPoster", Handler: h.Booking.CancelShiftAsPoster, Mw: []gin.HandlerFunc{posterOnly}},
			{Method: http.MethodGet, Path: "/invitations", Handler: h.Invitation.List},
			{Method: http.MethodGet, Path: "/invitations/:id", Handler: h.Invitation.Get},
			{Method: http.MethodGet, Path: "/shifts/:id", Handler: h.Shift.Get},
		})
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
