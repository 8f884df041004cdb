package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meet-mock/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meet-mock/internal/usecase/meeting"
)

// Page renders the meeting screen
type Page struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Page {
	return &Page{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Index handles GET /. A failed form post comes back with ?error=<message>.
func (h *Page) Index(c echo.Context) error {
	snap, err := h.meetingService.Snapshot(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	view := presenter.ToPageView(snap)
	view.Error = c.QueryParam("error")
	return c.Render(http.StatusOK, "page", view)
}
