package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meet-mock/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meet-mock/internal/usecase/meeting"
)

// View handles the screen toggles: config panel and screenshot mode
type View struct {
	view   *meetingUsecase.ViewState
	logger *zap.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(view *meetingUsecase.ViewState, logger *zap.Logger) *View {
	return &View{
		view:   view,
		logger: logger,
	}
}

// ToggleConfig handles POST /view/config/toggle
// @Summary      Toggle configuration panel
// @Tags         View
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=meeting.ViewResponse}
// @Router       /view/config/toggle [post]
func (h *View) ToggleConfig(c echo.Context) error {
	h.view.ToggleConfig()
	return HandleSuccess(h.logger, c, presenter.ToViewResponse(h.view.Snapshot()))
}

// HideUI handles POST /view/hide
// @Summary      Hide UI for a screenshot
// @Description  Hides the configuration panel and its toggle and raises a short notice. Escape or /view/restore brings them back.
// @Tags         View
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=meeting.ViewResponse}
// @Router       /view/hide [post]
func (h *View) HideUI(c echo.Context) error {
	h.view.HideUI()
	return HandleSuccess(h.logger, c, presenter.ToViewResponse(h.view.Snapshot()))
}

// RestoreUI handles POST /view/restore
// @Summary      Restore hidden UI
// @Tags         View
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=meeting.ViewResponse}
// @Router       /view/restore [post]
func (h *View) RestoreUI(c echo.Context) error {
	h.view.RestoreUI()
	return HandleSuccess(h.logger, c, presenter.ToViewResponse(h.view.Snapshot()))
}
