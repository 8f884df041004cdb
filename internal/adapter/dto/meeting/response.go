package meeting

// ColorResponse represents a palette entry
type ColorResponse struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Hex      string `json:"hex"`
	Gradient string `json:"gradient"`
}

// PaletteResponse lists every palette entry in order
type PaletteResponse struct {
	Size   int             `json:"size"`
	Colors []ColorResponse `json:"colors"`
}

// ParticipantResponse represents a participant in API responses
type ParticipantResponse struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Initial             string        `json:"initial"`
	ImageURL            *string       `json:"image_url,omitempty"`
	PresentationContent *string       `json:"presentation_content,omitempty"`
	IsMuted             bool          `json:"is_muted"`
	IsVideoOff          bool          `json:"is_video_off"`
	IsNetworkError      bool          `json:"is_network_error"`
	IsSpeaking          bool          `json:"is_speaking"`
	IsPinned            bool          `json:"is_pinned"`
	IsHandRaised        bool          `json:"is_hand_raised"`
	IsPresenting        bool          `json:"is_presenting"`
	Color               ColorResponse `json:"color"`
}

// DetailsResponse represents the meeting details
type DetailsResponse struct {
	Time        string `json:"time"`
	Code        string `json:"code"`
	IsRecording bool   `json:"is_recording"`
	Theme       string `json:"theme"`
	Layout      string `json:"layout"`
}

// PlanResponse represents a layout plan. Only the fields of the plan's
// kind are populated.
type PlanResponse struct {
	Kind         string                `json:"kind"`
	Main         *ParticipantResponse  `json:"main,omitempty"`
	Others       []ParticipantResponse `json:"others,omitempty"`
	Columns      int                   `json:"columns,omitempty"`
	Rows         int                   `json:"rows,omitempty"`
	Participants []ParticipantResponse `json:"participants,omitempty"`
}

// ViewResponse represents the screen toggles
type ViewResponse struct {
	ShowConfig  bool   `json:"show_config"`
	UIHidden    bool   `json:"ui_hidden"`
	Notice      string `json:"notice,omitempty"`
	NoticeTTLMs int64  `json:"notice_ttl_ms,omitempty"`
}

// MeetingResponse is the full meeting snapshot
type MeetingResponse struct {
	Participants []ParticipantResponse `json:"participants"`
	Details      DetailsResponse       `json:"details"`
	Plan         PlanResponse          `json:"plan"`
	View         ViewResponse          `json:"view"`
}
