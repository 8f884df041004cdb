package presenter

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	"github.com/johnquangdev/meet-mock/internal/usecase/layout"
	"github.com/johnquangdev/meet-mock/internal/usecase/meeting"
	"github.com/johnquangdev/meet-mock/internal/usecase/palette"
)

const (
	classicBackground = "#3c4043"
	presentingSuffix  = " (Presenting)"

	// NetworkErrorText is shown over tiles whose video stalled
	NetworkErrorText = "This video is paused due to problems with your network"
)

// TileView holds every decision the tile template needs
type TileView struct {
	ID      string
	Name    string
	Label   string
	Initial string

	ShowPresentation    bool
	PresentationContent string
	ShowPlaceholder     bool
	ShowVideo           bool
	ImageURL            string

	// Background is the inline CSS background, empty for none
	Background  string
	AvatarClass string
	AvatarHex   string

	ShowMuteBadge  bool
	ShowBorder     bool
	IsSpeaking     bool
	IsPinned       bool
	IsHandRaised   bool
	IsNetworkError bool
	NetworkError   string
}

// ToTileView decides how a single participant tile renders under theme
func ToTileView(p entities.Participant, theme entities.Theme) TileView {
	color := palette.ColorFor(p.Name)

	showPresentation := p.IsPresenting
	showPlaceholder := !showPresentation && (p.IsVideoOff || p.IsNetworkError || !p.HasImage())
	liveVideo := !p.IsVideoOff && p.HasImage() && !p.IsNetworkError

	view := TileView{
		ID:               p.ID,
		Name:             p.Name,
		Label:            p.Name,
		Initial:          p.InitialLetter(),
		ShowPresentation: showPresentation,
		ShowPlaceholder:  showPlaceholder,
		ShowVideo:        !showPresentation && !showPlaceholder,
		AvatarClass:      color.Avatar,
		AvatarHex:        color.Hex,
		ShowMuteBadge:    p.IsMuted && !showPresentation,
		ShowBorder:       !p.IsSpeaking && !showPlaceholder && !showPresentation,
		IsSpeaking:       p.IsSpeaking,
		IsPinned:         p.IsPinned,
		IsHandRaised:     p.IsHandRaised,
		IsNetworkError:   p.IsNetworkError,
	}

	if showPresentation {
		view.Label += presentingSuffix
		view.PresentationContent = lo.FromPtr(p.PresentationContent)
	}
	if p.HasImage() {
		view.ImageURL = *p.ImageURL
	}
	if showPlaceholder && p.IsNetworkError {
		view.NetworkError = NetworkErrorText
	}

	switch {
	case showPresentation, liveVideo:
	case theme == entities.ThemeClassic:
		view.Background = classicBackground
	default:
		view.Background = color.Gradient
	}

	return view
}

// StageView is the arranged stage the page template draws
type StageView struct {
	Kind string

	// Sidebar and spotlight
	Main   *TileView
	Others []TileView

	// Grid
	Columns  int
	Rows     int
	MaxWidth string
	Tiles    []TileView
}

// GridTemplate returns the CSS grid-template-columns value
func (s StageView) GridTemplate() string {
	return fmt.Sprintf("repeat(%d, minmax(0, 1fr))", s.Columns)
}

// RowTemplate returns the CSS grid-template-rows value
func (s StageView) RowTemplate() string {
	return fmt.Sprintf("repeat(%d, minmax(0, 1fr))", s.Rows)
}

// ToStageView arranges the tiles of plan
func ToStageView(plan layout.Plan, theme entities.Theme) StageView {
	toTiles := func(ps []entities.Participant) []TileView {
		return lo.Map(ps, func(p entities.Participant, _ int) TileView {
			return ToTileView(p, theme)
		})
	}

	stage := StageView{Kind: string(plan.Kind())}

	switch pl := plan.(type) {
	case layout.Sidebar:
		main := ToTileView(pl.Main, theme)
		stage.Main = &main
		stage.Others = toTiles(pl.Others)
	case layout.Spotlight:
		main := ToTileView(pl.Main, theme)
		stage.Main = &main
	case layout.Grid:
		stage.Columns = pl.Columns
		stage.Rows = pl.Rows
		stage.MaxWidth = "100%"
		if pl.Columns <= 2 {
			stage.MaxWidth = "1000px"
		}
		stage.Tiles = toTiles(pl.Participants)
	}

	return stage
}

// ControlButton is one button of the bottom control bar
type ControlButton struct {
	Icon    string
	Tooltip string
	Danger  bool
}

// CenterControls are the call controls in the middle of the bar
var CenterControls = []ControlButton{
	{Icon: "mic", Tooltip: "Turn off microphone (ctrl + d)"},
	{Icon: "videocam", Tooltip: "Turn off camera (ctrl + e)"},
	{Icon: "closed_caption", Tooltip: "Turn on captions (c)"},
	{Icon: "mood", Tooltip: "Send a reaction"},
	{Icon: "present_to_all", Tooltip: "Present now"},
	{Icon: "back_hand", Tooltip: "Raise hand (ctrl + alt + h)"},
	{Icon: "more_vert", Tooltip: "More options"},
	{Icon: "call_end", Tooltip: "Leave call", Danger: true},
}

// SideControls are the panel toggles on the right of the bar
var SideControls = []ControlButton{
	{Icon: "info", Tooltip: "Meeting details"},
	{Icon: "group", Tooltip: "Show everyone"},
	{Icon: "chat", Tooltip: "Chat with everyone"},
	{Icon: "category", Tooltip: "Activities"},
}

// Option is a select option in the configuration panel
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// ConfigRow is one participant row in the configuration panel
type ConfigRow struct {
	Participant entities.Participant
	Image       string
	Color       palette.ColorPair
}

// PageView is everything the page template renders
type PageView struct {
	Details      entities.MeetingDetails
	Stage        StageView
	View         meeting.ViewSnapshot
	Participants []ConfigRow
	Layouts      []Option
	Themes       []Option
	Center       []ControlButton
	Side         []ControlButton
	NoticeMs     int64
	Error        string
}

// ToPageView builds the full page model from a snapshot
func ToPageView(s *meeting.Snapshot) PageView {
	layouts := lo.Map(entities.Layouts, func(l entities.Layout, _ int) Option {
		return Option{Value: string(l), Label: l.Label(), Selected: l == s.Details.Layout}
	})
	themes := lo.Map(entities.Themes, func(t entities.Theme, _ int) Option {
		return Option{Value: string(t), Label: t.Label(), Selected: t == s.Details.Theme}
	})
	rows := lo.Map(s.Participants, func(p entities.Participant, _ int) ConfigRow {
		return ConfigRow{Participant: p, Image: lo.FromPtr(p.ImageURL), Color: palette.ColorFor(p.Name)}
	})

	return PageView{
		Details:      s.Details,
		Stage:        ToStageView(s.Plan, s.Details.Theme),
		View:         s.View,
		Participants: rows,
		Layouts:      layouts,
		Themes:       themes,
		Center:       CenterControls,
		Side:         SideControls,
		NoticeMs:     s.View.NoticeTTL.Milliseconds(),
	}
}
