package handler

import (
	stdErrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meet-mock/errors"
	"github.com/johnquangdev/meet-mock/internal/adapter/dto/common"
	usecaseErrors "github.com/johnquangdev/meet-mock/internal/usecase/errors"
	"github.com/johnquangdev/meet-mock/pkg/validator"
)

// getRequestID reads the request id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return handleStatus(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return handleStatus(logger, c, http.StatusCreated, data)
}

func handleStatus(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if wantsRedirect(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	resp := common.SuccessResponse{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)
	appErr := toAppError(c, err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	// Browser forms land back on the page with the message shown there
	if wantsRedirect(c) {
		return c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(appErr.Message))
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// RespondError adapts HandleError for middleware that rejects requests
// before a handler runs
func RespondError(logger *zap.Logger) func(echo.Context, error) error {
	return func(c echo.Context, err error) error {
		return HandleError(logger, c, err)
	}
}

// toAppError maps usecase sentinels to API errors. Anything unknown is
// an internal error.
func toAppError(c echo.Context, err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrParticipantNotFound):
		return errors.ErrParticipantNotFound(c.Param("id"))
	case stdErrors.Is(err, usecaseErrors.ErrParticipantExists):
		return errors.ErrAlreadyExists("participant")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidImageField):
		return errors.ErrInvalidImageField(c.QueryParam("field"))
	case stdErrors.Is(err, usecaseErrors.ErrNotAnImage):
		detected := strings.TrimPrefix(err.Error(), usecaseErrors.ErrNotAnImage.Error()+": ")
		return errors.ErrUploadNotImage(detected)
	case stdErrors.Is(err, usecaseErrors.ErrEmptyUpload):
		return errors.ErrUploadMissingFile()
	case stdErrors.Is(err, usecaseErrors.ErrStorage):
		return errors.ErrStorageFailed("put", err)
	}
	return errors.ErrInternal(err)
}

// invalidRequest wraps bind and validation failures
func invalidRequest(err error) errors.AppError {
	appErr := errors.ErrInvalidPayload(err)
	for field, rule := range validator.Describe(err) {
		appErr = appErr.WithDetail(field, rule)
	}
	return appErr
}

// isForm reports whether the request came from an HTML form on the page
func isForm(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm)
}

// wantsRedirect is true for browser form posts, which go back to the page
func wantsRedirect(c echo.Context) bool {
	if isForm(c) {
		return true
	}
	ct := c.Request().Header.Get(echo.HeaderContentType)
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.HasPrefix(ct, echo.MIMEMultipartForm) && strings.Contains(accept, echo.MIMETextHTML)
}

// formString returns the last value posted for key, or nil when absent
func formString(c echo.Context, key string) *string {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}
	values, ok := params[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[len(values)-1]
	return &v
}

// formBool parses the last value posted for key. Checkboxes post "on".
func formBool(c echo.Context, key string) *bool {
	s := formString(c, key)
	if s == nil {
		return nil
	}
	if *s == "on" {
		v := true
		return &v
	}
	v, err := strconv.ParseBool(*s)
	if err != nil {
		return nil
	}
	return &v
}
