package entities

import "strings"

// Theme represents how video-off tiles are painted
type Theme string

const (
	ThemeClassic  Theme = "classic"
	ThemeGradient Theme = "gradient"
)

// Layout represents the requested stage arrangement
type Layout string

const (
	LayoutAuto      Layout = "auto"
	LayoutTiled     Layout = "tiled"
	LayoutSpotlight Layout = "spotlight"
	LayoutSidebar   Layout = "sidebar"
)

// Layouts lists every layout mode in the order the config panel offers them
var Layouts = []Layout{LayoutAuto, LayoutTiled, LayoutSidebar, LayoutSpotlight}

// Themes lists every tile theme in the order the config panel offers them
var Themes = []Theme{ThemeGradient, ThemeClassic}

// ParseLayout converts s to a Layout. Unknown values fall back to auto.
func ParseLayout(s string) Layout {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutAuto, LayoutTiled, LayoutSpotlight, LayoutSidebar:
		return l
	default:
		return LayoutAuto
	}
}

// ParseTheme converts s to a Theme. Unknown values fall back to gradient.
func ParseTheme(s string) Theme {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeClassic, ThemeGradient:
		return t
	default:
		return ThemeGradient
	}
}

// Label returns the human readable option text used by the config panel
func (l Layout) Label() string {
	switch l {
	case LayoutTiled:
		return "Tiled Grid"
	case LayoutSidebar:
		return "Sidebar (Presentation Mode)"
	case LayoutSpotlight:
		return "Spotlight (One Tile)"
	default:
		return "Auto (Responsive)"
	}
}

// Label returns the human readable option text used by the config panel
func (t Theme) Label() string {
	if t == ThemeClassic {
		return "Classic (Dark Grey)"
	}
	return "Modern Gradient (Colorful)"
}

// MeetingDetails holds the meeting info shown in the control bar
type MeetingDetails struct {
	Time        string `json:"time"`
	Code        string `json:"code"`
	IsRecording bool   `json:"is_recording"`
	Theme       Theme  `json:"theme"`
	Layout      Layout `json:"layout"`
}

// DetailsPatch is a partial update of MeetingDetails
type DetailsPatch struct {
	Time        *string
	Code        *string
	IsRecording *bool
	Theme       *string
	Layout      *string
}

// Apply merges the patch into d, normalizing theme and layout
func (patch DetailsPatch) Apply(d *MeetingDetails) {
	if patch.Time != nil {
		d.Time = *patch.Time
	}
	if patch.Code != nil {
		d.Code = *patch.Code
	}
	if patch.IsRecording != nil {
		d.IsRecording = *patch.IsRecording
	}
	if patch.Theme != nil {
		d.Theme = ParseTheme(*patch.Theme)
	}
	if patch.Layout != nil {
		d.Layout = ParseLayout(*patch.Layout)
	}
}
