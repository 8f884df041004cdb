package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meet-mock/errors"
	meetingDTO "github.com/johnquangdev/meet-mock/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meet-mock/internal/adapter/repository"
	"github.com/johnquangdev/meet-mock/internal/infrastructure/cache"
	"github.com/johnquangdev/meet-mock/internal/infrastructure/storage"
	"github.com/johnquangdev/meet-mock/internal/infrastructure/web"
	meetingUsecase "github.com/johnquangdev/meet-mock/internal/usecase/meeting"
	usecaseErrors "github.com/johnquangdev/meet-mock/internal/usecase/errors"
	"github.com/johnquangdev/meet-mock/internal/usecase/palette"
	"github.com/johnquangdev/meet-mock/pkg/config"
	"github.com/johnquangdev/meet-mock/pkg/middleware"
	"github.com/johnquangdev/meet-mock/pkg/validator"
)

const testMaxUpload = 1024

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type errorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "development", MaxUploadBytes: testMaxUpload},
	}

	logger := zap.NewNop()
	images := storage.NewInlineStore()
	view := meetingUsecase.NewViewState(cache.NewMemoryStore(ctx, time.Minute), true, time.Minute)
	svc := meetingUsecase.NewMeetingService(repository.NewMeetingRepository(), images, view, logger)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	e.Renderer = renderer
	e.Pre(echoMiddleware.MethodOverrideWithConfig(echoMiddleware.MethodOverrideConfig{
		Getter: echoMiddleware.MethodFromForm("_method"),
	}))

	NewRouter(
		cfg,
		images.Name(),
		NewPageHandler(svc, logger),
		NewMeetingHandler(svc, logger),
		NewParticipantHandler(svc, testMaxUpload, logger),
		NewViewHandler(view, logger),
		NewPaletteHandler(logger),
		middleware.RequireParticipant(svc, RespondError(logger)),
	).Setup(e)

	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return serve(e, req)
}

func doForm(e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return serve(e, req)
}

func doUpload(t *testing.T, e *echo.Echo, target string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if data != nil {
		part, err := mw.CreateFormFile("file", "upload.bin")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return serve(e, req)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func getMeeting(t *testing.T, e *echo.Echo) meetingDTO.MeetingResponse {
	t.Helper()
	rec := doJSON(e, http.MethodGet, "/v1/meeting", "")
	require.Equal(t, http.StatusOK, rec.Code)
	return decode[envelope[meetingDTO.MeetingResponse]](t, rec).Data
}

func findParticipant(t *testing.T, m meetingDTO.MeetingResponse, id string) meetingDTO.ParticipantResponse {
	t.Helper()
	for _, p := range m.Participants {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("participant %s not in snapshot", id)
	return meetingDTO.ParticipantResponse{}
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"development","storage":"inline"}`, rec.Body.String())
}

func TestGetMeeting_SeedSnapshot(t *testing.T) {
	e := newTestServer(t)

	m := getMeeting(t, e)

	require.Len(t, m.Participants, 4)
	assert.Equal(t, "sidebar", m.Plan.Kind)
	require.NotNil(t, m.Plan.Main)
	assert.Equal(t, "1", m.Plan.Main.ID)
	assert.Len(t, m.Plan.Others, 3)
	assert.Equal(t, "dzt-mroa-txo", m.Details.Code)
	assert.Equal(t, "auto", m.Details.Layout)
	assert.True(t, m.View.ShowConfig)
	assert.Equal(t, 13, m.Participants[0].Color.Index)
	assert.Equal(t, "A", m.Participants[0].Initial)
}

func TestPreviewLayout(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/meeting/layout?mode=tiled", "")
	require.Equal(t, http.StatusOK, rec.Code)
	plan := decode[envelope[meetingDTO.PlanResponse]](t, rec).Data
	assert.Equal(t, "grid", plan.Kind)
	assert.Equal(t, 2, plan.Columns)
	assert.Equal(t, 2, plan.Rows)
	assert.Len(t, plan.Participants, 4)

	rec = doJSON(e, http.MethodGet, "/v1/meeting/layout?mode=spotlight", "")
	require.Equal(t, http.StatusOK, rec.Code)
	plan = decode[envelope[meetingDTO.PlanResponse]](t, rec).Data
	assert.Equal(t, "spotlight", plan.Kind)
	assert.Equal(t, "1", plan.Main.ID)

	// Previewing never changes the stored layout
	assert.Equal(t, "auto", getMeeting(t, e).Details.Layout)
}

func TestAddParticipant(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/participants", `{"name":"Jane Roe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	p := decode[envelope[meetingDTO.ParticipantResponse]](t, rec).Data
	assert.Equal(t, "Jane Roe", p.Name)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.IsMuted)
	assert.True(t, p.IsVideoOff)
	assert.False(t, p.IsPresenting)
	require.NotNil(t, p.ImageURL)

	rec = doJSON(e, http.MethodPost, "/v1/participants", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User 6", decode[envelope[meetingDTO.ParticipantResponse]](t, rec).Data.Name)

	assert.Len(t, getMeeting(t, e).Participants, 6)
}

func TestAddParticipant_Validation(t *testing.T) {
	e := newTestServer(t)

	body := `{"name":"` + strings.Repeat("x", 101) + `"}`
	rec := doJSON(e, http.MethodPost, "/v1/participants", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[errorBody](t, rec)
	assert.Equal(t, int(errors.ErrorCode_INVALID_PAYLOAD), got.Code)
	assert.Equal(t, "max=100", got.Details["name"])
}

func TestUpdateParticipant_PresentingMovesMainStage(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/v1/participants/3", `{"is_presenting":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[envelope[meetingDTO.ParticipantResponse]](t, rec).Data.IsPresenting)

	m := getMeeting(t, e)
	assert.Equal(t, "3", m.Plan.Main.ID)
	assert.False(t, findParticipant(t, m, "1").IsPresenting)
}

func TestUpdateParticipant_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/v1/participants/nope", `{"is_muted":true}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	got := decode[errorBody](t, rec)
	assert.Equal(t, int(errors.ErrorCode_PARTICIPANT_NOT_FOUND), got.Code)
	assert.Equal(t, "nope", got.Details["participant_id"])
}

func TestRemoveParticipant(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodDelete, "/v1/participants/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, getMeeting(t, e).Participants, 3)

	rec = doJSON(e, http.MethodDelete, "/v1/participants/4", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateDetails_JSON(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/v1/meeting/details", `{"is_recording":true,"theme":"neon","layout":"mosaic"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[envelope[meetingDTO.DetailsResponse]](t, rec).Data
	assert.True(t, d.IsRecording)
	assert.Equal(t, "gradient", d.Theme)
	assert.Equal(t, "auto", d.Layout)
	assert.Equal(t, "10:53 AM", d.Time)
}

func TestFormPosts_OverrideMethodAndRedirect(t *testing.T) {
	e := newTestServer(t)

	rec := doForm(e, "/v1/participants/2", url.Values{
		"_method":  {"PATCH"},
		"is_muted": {"false"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = doForm(e, "/v1/meeting/details", url.Values{
		"_method":      {"PATCH"},
		"is_recording": {"false", "true"},
		"layout":       {"spotlight"},
		"theme":        {"classic"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = doForm(e, "/v1/participants/3", url.Values{"_method": {"DELETE"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	m := getMeeting(t, e)
	assert.False(t, findParticipant(t, m, "2").IsMuted)
	assert.True(t, m.Details.IsRecording)
	assert.Equal(t, "spotlight", m.Details.Layout)
	assert.Equal(t, "classic", m.Details.Theme)
	assert.Equal(t, "spotlight", m.Plan.Kind)
	assert.Len(t, m.Participants, 3)
}

func TestUploadImage(t *testing.T) {
	e := newTestServer(t)

	rec := doUpload(t, e, "/v1/participants/2/image", pngHeader)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := decode[envelope[meetingDTO.ParticipantResponse]](t, rec).Data
	require.NotNil(t, p.ImageURL)
	assert.True(t, strings.HasPrefix(*p.ImageURL, "data:image/png;base64,"))

	rec = doUpload(t, e, "/v1/participants/1/image?field=presentation_content", pngHeader)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p = decode[envelope[meetingDTO.ParticipantResponse]](t, rec).Data
	require.NotNil(t, p.PresentationContent)
	assert.True(t, strings.HasPrefix(*p.PresentationContent, "data:image/png;base64,"))
}

func TestUploadImage_Rejects(t *testing.T) {
	tooLarge := append(append([]byte(nil), pngHeader...), make([]byte, testMaxUpload)...)

	tests := []struct {
		name     string
		target   string
		data     []byte
		status   int
		wantCode errors.ErrorCode
	}{
		{"not an image", "/v1/participants/2/image", []byte("just some plain text"), http.StatusUnsupportedMediaType, errors.ErrorCode_UPLOAD_NOT_IMAGE},
		{"missing file", "/v1/participants/2/image", nil, http.StatusBadRequest, errors.ErrorCode_UPLOAD_MISSING_FILE},
		{"too large", "/v1/participants/2/image", tooLarge, http.StatusRequestEntityTooLarge, errors.ErrorCode_UPLOAD_TOO_LARGE},
		{"bad field", "/v1/participants/2/image?field=banner", pngHeader, http.StatusBadRequest, errors.ErrorCode_INVALID_IMAGE_FIELD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(t)

			rec := doUpload(t, e, tt.target, tt.data)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, int(tt.wantCode), decode[errorBody](t, rec).Code)
		})
	}
}

func TestUploadImage_UnknownParticipant(t *testing.T) {
	e := newTestServer(t)

	rec := doUpload(t, e, "/v1/participants/ghost/image", pngHeader)

	require.Equal(t, http.StatusNotFound, rec.Code)
	got := decode[errorBody](t, rec)
	assert.Equal(t, int(errors.ErrorCode_PARTICIPANT_NOT_FOUND), got.Code)
	assert.Equal(t, "ghost", got.Details["participant_id"])
}

func TestFormPosts_ErrorsRedirectToPage(t *testing.T) {
	e := newTestServer(t)

	rec := doForm(e, "/v1/participants/2", url.Values{
		"_method": {"PATCH"},
		"name":    {strings.Repeat("x", 101)},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/", loc.Path)
	assert.Equal(t, "Invalid payload", loc.Query().Get("error"))

	rec = doForm(e, "/v1/participants/ghost", url.Values{"_method": {"DELETE"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "/?error=")

	rec = serve(e, httptest.NewRequest(http.MethodGet, loc.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="error"`)
	assert.Contains(t, rec.Body.String(), "Invalid payload")

	// The rejected rename left participant 2 alone
	assert.Equal(t, "S Yuvaraj", findParticipant(t, getMeeting(t, e), "2").Name)
}

func TestToAppError_DuplicateParticipant(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/participants", nil), httptest.NewRecorder())

	got := toAppError(c, fmt.Errorf("%w: id 7", usecaseErrors.ErrParticipantExists))

	assert.Equal(t, http.StatusConflict, got.HTTPCode)
	assert.Equal(t, errors.ErrorCode_ALREADY_EXISTS, got.Code)
}

func TestPalette(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/palette", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[envelope[meetingDTO.PaletteResponse]](t, rec).Data
	assert.Equal(t, palette.Size, list.Size)
	assert.Len(t, list.Colors, palette.Size)

	rec = doJSON(e, http.MethodGet, "/v1/palette/color?name=Algo%20Tutor", "")
	require.Equal(t, http.StatusOK, rec.Code)
	color := decode[envelope[meetingDTO.ColorResponse]](t, rec).Data
	assert.Equal(t, 13, color.Index)
	assert.Equal(t, list.Colors[13], color)

	rec = doJSON(e, http.MethodGet, "/v1/palette/color", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[envelope[meetingDTO.ColorResponse]](t, rec).Data.Index)
}

func TestViewToggles(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/view/config/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[envelope[meetingDTO.ViewResponse]](t, rec).Data.ShowConfig)

	rec = doJSON(e, http.MethodPost, "/v1/view/hide", "")
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[envelope[meetingDTO.ViewResponse]](t, rec).Data
	assert.True(t, v.UIHidden)
	assert.Equal(t, meetingUsecase.HiddenNotice, v.Notice)
	assert.Positive(t, v.NoticeTTLMs)

	rec = doJSON(e, http.MethodPost, "/v1/view/restore", "")
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[envelope[meetingDTO.ViewResponse]](t, rec).Data
	assert.False(t, v.UIHidden)
	assert.Empty(t, v.Notice)
}

func TestResetMeeting(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusOK, doJSON(e, http.MethodDelete, "/v1/participants/1", "").Code)
	require.Equal(t, http.StatusOK, doJSON(e, http.MethodPost, "/v1/view/hide", "").Code)

	rec := doJSON(e, http.MethodPost, "/v1/meeting/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	m := decode[envelope[meetingDTO.MeetingResponse]](t, rec).Data
	assert.Len(t, m.Participants, 4)
	assert.Equal(t, "sidebar", m.Plan.Kind)
	assert.False(t, m.View.UIHidden)
}

func TestIndexPage(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Algo Tutor (Presenting)")
	assert.Contains(t, rec.Body.String(), "Mock Configuration")
}
