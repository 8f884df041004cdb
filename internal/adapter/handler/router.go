package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meet-mock/internal/adapter/dto/common"
	"github.com/johnquangdev/meet-mock/pkg/config"

	_ "github.com/johnquangdev/meet-mock/docs"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	storageName        string
	pageHandler        *Page
	meetingHandler     *Meeting
	participantHandler *Participant
	viewHandler        *View
	paletteHandler     *Palette
	requireParticipant echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	storageName string,
	pageHandler *Page,
	meetingHandler *Meeting,
	participantHandler *Participant,
	viewHandler *View,
	paletteHandler *Palette,
	requireParticipant echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:                cfg,
		storageName:        storageName,
		pageHandler:        pageHandler,
		meetingHandler:     meetingHandler,
		participantHandler: participantHandler,
		viewHandler:        viewHandler,
		paletteHandler:     paletteHandler,
		requireParticipant: requireParticipant,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Rendered mock-up
	e.GET("/", rt.pageHandler.Index)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupParticipantRoutes(v1)
	rt.setupViewRoutes(v1)
	rt.setupPaletteRoutes(v1)
}

// setupMeetingRoutes configures meeting-wide routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meeting")

	meetingGroup.GET("", rt.meetingHandler.GetMeeting)
	meetingGroup.POST("/reset", rt.meetingHandler.ResetMeeting)
	meetingGroup.PATCH("/details", rt.meetingHandler.UpdateDetails)
	meetingGroup.GET("/layout", rt.meetingHandler.PreviewLayout)
}

// setupParticipantRoutes configures participant routes
func (rt *Router) setupParticipantRoutes(g *echo.Group) {
	participantGroup := g.Group("/participants")

	participantGroup.POST("", rt.participantHandler.AddParticipant)
	participantGroup.PATCH("/:id", rt.participantHandler.UpdateParticipant)
	participantGroup.DELETE("/:id", rt.participantHandler.RemoveParticipant)

	uploadMW := []echo.MiddlewareFunc{}
	if rt.requireParticipant != nil {
		uploadMW = append(uploadMW, rt.requireParticipant)
	}
	participantGroup.POST("/:id/image", rt.participantHandler.UploadImage, uploadMW...)
}

// setupViewRoutes configures the screen toggle routes
func (rt *Router) setupViewRoutes(g *echo.Group) {
	viewGroup := g.Group("/view")

	viewGroup.POST("/config/toggle", rt.viewHandler.ToggleConfig)
	viewGroup.POST("/hide", rt.viewHandler.HideUI)
	viewGroup.POST("/restore", rt.viewHandler.RestoreUI)
}

// setupPaletteRoutes configures palette routes
func (rt *Router) setupPaletteRoutes(g *echo.Group) {
	paletteGroup := g.Group("/palette")

	paletteGroup.GET("", rt.paletteHandler.ListPalette)
	paletteGroup.GET("/color", rt.paletteHandler.GetColor)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Storage:     rt.storageName,
	})
}

