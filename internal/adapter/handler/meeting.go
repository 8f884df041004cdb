package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/johnquangdev/meet-mock/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meet-mock/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meet-mock/internal/usecase/meeting"
)

// Meeting handles meeting-wide HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// GetMeeting handles GET /meeting
// @Summary      Get meeting snapshot
// @Description  Returns participants, meeting details, the current layout plan and view toggles
// @Tags         Meeting
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=meeting.MeetingResponse}
// @Failure      500  {object}  common.ErrorResponse
// @Router       /meeting [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	snap, err := h.meetingService.Snapshot(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(snap))
}

// ResetMeeting handles POST /meeting/reset
// @Summary      Reset meeting
// @Description  Restores the seed participants and default meeting details
// @Tags         Meeting
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=meeting.MeetingResponse}
// @Failure      500  {object}  common.ErrorResponse
// @Router       /meeting/reset [post]
func (h *Meeting) ResetMeeting(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.meetingService.Reset(ctx); err != nil {
		return HandleError(h.logger, c, err)
	}

	snap, err := h.meetingService.Snapshot(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(snap))
}

// UpdateDetails handles PATCH /meeting/details
// @Summary      Update meeting details
// @Description  Partially updates time, code, recording flag, theme and layout. Unknown layouts fall back to auto and unknown themes to gradient.
// @Tags         Meeting
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.UpdateDetailsRequest  true  "Fields to change"
// @Success      200      {object}  common.SuccessResponse{data=meeting.DetailsResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Router       /meeting/details [patch]
func (h *Meeting) UpdateDetails(c echo.Context) error {
	var req meetingDTO.UpdateDetailsRequest
	if isForm(c) {
		req = meetingDTO.UpdateDetailsRequest{
			Time:        formString(c, "time"),
			Code:        formString(c, "code"),
			IsRecording: formBool(c, "is_recording"),
			Theme:       formString(c, "theme"),
			Layout:      formString(c, "layout"),
		}
	} else if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, invalidRequest(err))
	}

	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, invalidRequest(err))
	}

	details, err := h.meetingService.UpdateDetails(c.Request().Context(), presenter.ToDetailsPatch(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToDetailsResponse(details))
}

// PreviewLayout handles GET /meeting/layout
// @Summary      Preview a layout
// @Description  Computes the stage plan for the given mode without saving it. Unknown modes behave as auto.
// @Tags         Meeting
// @Produce      json
// @Param        mode  query     string  false  "auto, tiled, sidebar or spotlight"
// @Success      200   {object}  common.SuccessResponse{data=meeting.PlanResponse}
// @Failure      500   {object}  common.ErrorResponse
// @Router       /meeting/layout [get]
func (h *Meeting) PreviewLayout(c echo.Context) error {
	var req meetingDTO.LayoutPreviewRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, invalidRequest(err))
	}

	plan, err := h.meetingService.Preview(c.Request().Context(), req.Mode)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPlanResponse(plan))
}
