package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	pkgvalidator "github.com/johnquangdev/meet-mock/pkg/validator"

	"github.com/johnquangdev/meet-mock/internal/adapter/handler"
	"github.com/johnquangdev/meet-mock/internal/adapter/repository"
	"github.com/johnquangdev/meet-mock/internal/infrastructure/cache"
	"github.com/johnquangdev/meet-mock/internal/infrastructure/storage"
	"github.com/johnquangdev/meet-mock/internal/infrastructure/web"
	"github.com/johnquangdev/meet-mock/internal/usecase/meeting"
	"github.com/johnquangdev/meet-mock/pkg/config"
	"github.com/johnquangdev/meet-mock/pkg/logger"
	participantmw "github.com/johnquangdev/meet-mock/pkg/middleware"
)

// @title           Meet Mock API
// @version         1.0
// @description     Mock-up of a video meeting screen: participant tiles, layout selection and name colours

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	e.Renderer = renderer

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false
	e.Debug = !cfg.IsProduction()

	// HTML forms can only POST; _method carries PATCH and DELETE
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromForm("_method"),
	}))

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Hard cap on request size; per-file upload size is checked in the handler
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", cfg.Server.MaxUploadBytes+(1<<20))))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	log.Printf("📦 Initializing %s image storage...", cfg.Storage.Type)
	imageStore, err := storage.New(rootCtx, &cfg.Storage, zapLogger)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	notices := cache.NewMemoryStore(rootCtx, cfg.View.SweepInterval)
	viewState := meeting.NewViewState(notices, cfg.View.ShowConfig, cfg.View.NoticeTTL)

	meetingRepo := repository.NewMeetingRepository()
	meetingService := meeting.NewMeetingService(meetingRepo, imageStore, viewState, zapLogger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		imageStore.Name(),
		handler.NewPageHandler(meetingService, zapLogger),
		handler.NewMeetingHandler(meetingService, zapLogger),
		handler.NewParticipantHandler(meetingService, cfg.Server.MaxUploadBytes, zapLogger),
		handler.NewViewHandler(viewState, zapLogger),
		handler.NewPaletteHandler(zapLogger),
		participantmw.RequireParticipant(meetingService, handler.RespondError(zapLogger)),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
		zapLogger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("storage", imageStore.Name()))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
