package entities

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in   string
		want Layout
	}{
		{"auto", LayoutAuto},
		{"tiled", LayoutTiled},
		{"spotlight", LayoutSpotlight},
		{"sidebar", LayoutSidebar},
		{" Sidebar ", LayoutSidebar},
		{"", LayoutAuto},
		{"mosaic", LayoutAuto},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLayout(tt.in))
		})
	}
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeClassic, ParseTheme("classic"))
	assert.Equal(t, ThemeGradient, ParseTheme("GRADIENT"))
	assert.Equal(t, ThemeGradient, ParseTheme("neon"))
}

func TestParticipant_InitialLetter(t *testing.T) {
	assert.Equal(t, "A", (&Participant{Name: "algo"}).InitialLetter())
	assert.Equal(t, "É", (&Participant{Name: "élodie"}).InitialLetter())
	assert.Equal(t, " ", (&Participant{Name: "   "}).InitialLetter())
	assert.Equal(t, "", (&Participant{}).InitialLetter())
}

func TestParticipantPatch_Apply(t *testing.T) {
	p := Participant{ID: "1", Name: "Old", IsMuted: true}

	ParticipantPatch{
		Name:         lo.ToPtr("New"),
		IsMuted:      lo.ToPtr(false),
		IsPresenting: lo.ToPtr(true),
	}.Apply(&p)

	assert.Equal(t, "New", p.Name)
	assert.False(t, p.IsMuted)
	assert.True(t, p.IsPresenting)
	assert.False(t, p.IsVideoOff, "untouched fields keep their value")
}

func TestParticipant_CloneDoesNotShareImages(t *testing.T) {
	p := Participant{ImageURL: lo.ToPtr("a.png")}
	c := p.Clone()
	*c.ImageURL = "b.png"

	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "a.png", *p.ImageURL)
}

func TestParticipant_SetImage(t *testing.T) {
	var p Participant
	p.SetImage(ImageFieldAvatar, "avatar")
	p.SetImage(ImageFieldPresentation, "slide")

	assert.True(t, p.HasImage())
	assert.True(t, p.HasPresentationContent())
	assert.False(t, ImageField("banner").Valid())
}

func TestDetailsPatch_ApplyNormalizes(t *testing.T) {
	d := DefaultDetails()

	DetailsPatch{
		Code:   lo.ToPtr("abc-defg-hij"),
		Layout: lo.ToPtr("carousel"),
		Theme:  lo.ToPtr("classic"),
	}.Apply(&d)

	assert.Equal(t, "abc-defg-hij", d.Code)
	assert.Equal(t, LayoutAuto, d.Layout)
	assert.Equal(t, ThemeClassic, d.Theme)
	assert.Equal(t, "10:53 AM", d.Time)
}

func TestSeedParticipants_SinglePresenter(t *testing.T) {
	seed := SeedParticipants()
	require.Len(t, seed, 4)

	presenting := lo.Filter(seed, func(p Participant, _ int) bool { return p.IsPresenting })
	require.Len(t, presenting, 1)
	assert.Equal(t, "Algo Tutor", presenting[0].Name)

	// fresh copies each call
	*seed[0].ImageURL = "changed"
	assert.Equal(t, MockImages[0], *SeedParticipants()[0].ImageURL)
}
