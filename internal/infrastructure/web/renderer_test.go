package web

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meet-mock/internal/adapter/presenter"
	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	"github.com/johnquangdev/meet-mock/internal/usecase/layout"
	"github.com/johnquangdev/meet-mock/internal/usecase/meeting"
)

func render(t *testing.T, snap *meeting.Snapshot) string {
	t.Helper()

	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "page", presenter.ToPageView(snap), nil))
	return buf.String()
}

func TestRender_SeedPage(t *testing.T) {
	seed := entities.SeedParticipants()
	details := entities.DefaultDetails()

	html := render(t, &meeting.Snapshot{
		Participants: seed,
		Details:      details,
		Plan:         layout.Select(seed, details.Layout),
		View:         meeting.ViewSnapshot{ShowConfig: true},
	})

	assert.Contains(t, html, `data-layout="sidebar"`)
	assert.Contains(t, html, "Algo Tutor (Presenting)")
	assert.Contains(t, html, "Algo Tutor is presenting")
	assert.Contains(t, html, "dzt-mroa-txo")
	assert.Contains(t, html, "Leave call")
	assert.Contains(t, html, "Mock Configuration")
	assert.Contains(t, html, "radial-gradient(circle at center")
	assert.NotContains(t, html, "ZgotmplZ")
	assert.NotContains(t, html, ">REC")
}

func TestRender_HiddenUIWithNotice(t *testing.T) {
	seed := entities.SeedParticipants()
	details := entities.DefaultDetails()
	details.IsRecording = true
	details.Layout = entities.LayoutTiled

	html := render(t, &meeting.Snapshot{
		Participants: seed,
		Details:      details,
		Plan:         layout.Select(seed, details.Layout),
		View: meeting.ViewSnapshot{
			ShowConfig: true,
			UIHidden:   true,
			Notice:     meeting.HiddenNotice,
			NoticeTTL:  3 * time.Second,
		},
	})

	assert.Contains(t, html, `data-layout="grid"`)
	assert.Contains(t, html, "max-width: 1000px")
	assert.Contains(t, html, "REC")
	assert.Contains(t, html, "UI Hidden for Screenshot")
	assert.NotContains(t, html, "Mock Configuration")
}

func TestRender_DataURLImages(t *testing.T) {
	p := entities.Participant{ID: "9", Name: "Cam", ImageURL: ptr("data:image/png;base64,AAAA")}
	ps := []entities.Participant{p}

	html := render(t, &meeting.Snapshot{
		Participants: ps,
		Details:      entities.DefaultDetails(),
		Plan:         layout.Select(ps, entities.LayoutAuto),
	})

	assert.Contains(t, html, "data:image/png;base64,AAAA")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestRender_ScriptURLsAreFiltered(t *testing.T) {
	p := entities.Participant{ID: "9", Name: "Cam", ImageURL: ptr("javascript:alert(1)")}
	ps := []entities.Participant{p}

	html := render(t, &meeting.Snapshot{
		Participants: ps,
		Details:      entities.DefaultDetails(),
		Plan:         layout.Select(ps, entities.LayoutAuto),
		View:         meeting.ViewSnapshot{ShowConfig: true},
	})

	assert.NotContains(t, html, "javascript:alert")
	assert.Contains(t, html, "ZgotmplZ")
}

func TestImageSource(t *testing.T) {
	assert.Equal(t, template.URL("data:image/png;base64,AAAA"), imageSource("data:image/png;base64,AAAA"))
	assert.Equal(t, template.URL("DATA:image/gif;base64,R0"), imageSource("DATA:image/gif;base64,R0"))
	assert.Equal(t, "https://cdn.example.com/a.png", imageSource("https://cdn.example.com/a.png"))
	assert.Equal(t, "data:text/html,<b>", imageSource("data:text/html,<b>"))
	assert.Equal(t, "javascript:alert(1)", imageSource("javascript:alert(1)"))
}

func TestRender_ErrorBanner(t *testing.T) {
	seed := entities.SeedParticipants()
	details := entities.DefaultDetails()

	r, err := NewRenderer()
	require.NoError(t, err)

	view := presenter.ToPageView(&meeting.Snapshot{
		Participants: seed,
		Details:      details,
		Plan:         layout.Select(seed, details.Layout),
	})
	view.Error = "<b>bad</b> input"

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "page", view, nil))
	html := buf.String()

	assert.Contains(t, html, `id="error"`)
	assert.Contains(t, html, "&lt;b&gt;bad&lt;/b&gt; input")
}

func ptr(s string) *string { return &s }
