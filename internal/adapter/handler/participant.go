package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meet-mock/errors"
	meetingDTO "github.com/johnquangdev/meet-mock/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meet-mock/internal/adapter/presenter"
	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/meet-mock/internal/usecase/meeting"
	"github.com/johnquangdev/meet-mock/pkg/middleware"
)

// Participant handles participant HTTP requests
type Participant struct {
	meetingService meetingUsecase.Service
	maxUpload      int64
	logger         *zap.Logger
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(meetingService meetingUsecase.Service, maxUpload int64, logger *zap.Logger) *Participant {
	return &Participant{
		meetingService: meetingService,
		maxUpload:      maxUpload,
		logger:         logger,
	}
}

// AddParticipant handles POST /participants
// @Summary      Add a participant
// @Description  Adds a muted, video-off participant with a stock portrait. An empty name becomes "User N".
// @Tags         Participants
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.AddParticipantRequest  false  "Optional name and image"
// @Success      201      {object}  common.SuccessResponse{data=meeting.ParticipantResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Router       /participants [post]
func (h *Participant) AddParticipant(c echo.Context) error {
	var req meetingDTO.AddParticipantRequest
	if isForm(c) {
		if name := formString(c, "name"); name != nil {
			req.Name = *name
		}
		req.ImageURL = formString(c, "image_url")
	} else if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return HandleError(h.logger, c, invalidRequest(err))
		}
	}

	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, invalidRequest(err))
	}

	p, err := h.meetingService.AddParticipant(c.Request().Context(), meetingUsecase.AddParticipantInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToParticipantResponse(p))
}

// UpdateParticipant handles PATCH /participants/:id
// @Summary      Update a participant
// @Description  Partially updates a participant. Setting is_presenting stops everyone else presenting.
// @Tags         Participants
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Participant ID"
// @Param        request  body      meeting.UpdateParticipantRequest  true  "Fields to change"
// @Success      200      {object}  common.SuccessResponse{data=meeting.ParticipantResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /participants/{id} [patch]
func (h *Participant) UpdateParticipant(c echo.Context) error {
	var req meetingDTO.UpdateParticipantRequest
	if isForm(c) {
		req = meetingDTO.UpdateParticipantRequest{
			Name:                formString(c, "name"),
			ImageURL:            formString(c, "image_url"),
			PresentationContent: formString(c, "presentation_content"),
			IsMuted:             formBool(c, "is_muted"),
			IsVideoOff:          formBool(c, "is_video_off"),
			IsNetworkError:      formBool(c, "is_network_error"),
			IsSpeaking:          formBool(c, "is_speaking"),
			IsPinned:            formBool(c, "is_pinned"),
			IsHandRaised:        formBool(c, "is_hand_raised"),
			IsPresenting:        formBool(c, "is_presenting"),
		}
	} else if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, invalidRequest(err))
	}

	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, invalidRequest(err))
	}

	p, err := h.meetingService.UpdateParticipant(c.Request().Context(), c.Param("id"), presenter.ToParticipantPatch(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToParticipantResponse(p))
}

// RemoveParticipant handles DELETE /participants/:id
// @Summary      Remove a participant
// @Tags         Participants
// @Produce      json
// @Param        id   path      string  true  "Participant ID"
// @Success      200  {object}  common.SuccessResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /participants/{id} [delete]
func (h *Participant) RemoveParticipant(c echo.Context) error {
	if err := h.meetingService.RemoveParticipant(c.Request().Context(), c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, nil)
}

// UploadImage handles POST /participants/:id/image
// @Summary      Upload a participant image
// @Description  Stores an image and assigns it to the avatar (image_url) or the screen share (presentation_content)
// @Tags         Participants
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true   "Participant ID"
// @Param        field  query     string  false  "image_url (default) or presentation_content"
// @Param        file   formData  file    true   "Image file"
// @Success      200    {object}  common.SuccessResponse{data=meeting.ParticipantResponse}
// @Failure      400    {object}  common.ErrorResponse
// @Failure      404    {object}  common.ErrorResponse
// @Failure      413    {object}  common.ErrorResponse
// @Failure      415    {object}  common.ErrorResponse
// @Router       /participants/{id}/image [post]
func (h *Participant) UploadImage(c echo.Context) error {
	var req meetingDTO.ImageUploadRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return HandleError(h.logger, c, invalidRequest(err))
	}
	if req.Field == "" {
		req.Field = string(entities.ImageFieldAvatar)
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidImageField(req.Field))
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadMissingFile())
	}
	if fh.Size > h.maxUpload {
		return HandleError(h.logger, c, errors.ErrUploadTooLarge(h.maxUpload))
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUpload+1))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	if int64(len(data)) > h.maxUpload {
		return HandleError(h.logger, c, errors.ErrUploadTooLarge(h.maxUpload))
	}

	id := c.Param("id")
	if p, ok := middleware.Participant(c); ok {
		id = p.ID
	}

	p, err := h.meetingService.SetParticipantImage(c.Request().Context(), id, entities.ImageField(req.Field), meetingUsecase.Upload{
		Filename: fh.Filename,
		Data:     data,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToParticipantResponse(p))
}
