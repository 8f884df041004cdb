package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/johnquangdev/meet-mock/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meet-mock/internal/adapter/presenter"
	"github.com/johnquangdev/meet-mock/internal/usecase/palette"
)

// Palette exposes the name colour assignment
type Palette struct {
	logger *zap.Logger
}

// NewPaletteHandler creates a new palette handler
func NewPaletteHandler(logger *zap.Logger) *Palette {
	return &Palette{logger: logger}
}

// ListPalette handles GET /palette
// @Summary      List palette
// @Description  Returns the ordered colour palette used for avatars and tile backgrounds
// @Tags         Palette
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=meeting.PaletteResponse}
// @Router       /palette [get]
func (h *Palette) ListPalette(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToPaletteResponse())
}

// GetColor handles GET /palette/color
// @Summary      Colour for a name
// @Description  Returns the palette entry assigned to a display name. The empty name maps to the first entry.
// @Tags         Palette
// @Produce      json
// @Param        name  query     string  false  "Display name"
// @Success      200   {object}  common.SuccessResponse{data=meeting.ColorResponse}
// @Router       /palette/color [get]
func (h *Palette) GetColor(c echo.Context) error {
	var req meetingDTO.ColorRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, invalidRequest(err))
	}
	return HandleSuccess(h.logger, c, presenter.ToColorResponse(palette.Index(req.Name), palette.ColorFor(req.Name)))
}
