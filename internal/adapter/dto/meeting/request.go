package meeting

// AddParticipantRequest represents the request to add a participant
type AddParticipantRequest struct {
	Name     string  `json:"name" validate:"max=100"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,max=2048"`
}

// UpdateParticipantRequest represents a partial participant update.
// Omitted fields keep their current value.
type UpdateParticipantRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,max=100"`
	ImageURL            *string `json:"image_url,omitempty" validate:"omitempty,max=2048"`
	PresentationContent *string `json:"presentation_content,omitempty" validate:"omitempty,max=2048"`
	IsMuted             *bool   `json:"is_muted,omitempty"`
	IsVideoOff          *bool   `json:"is_video_off,omitempty"`
	IsNetworkError      *bool   `json:"is_network_error,omitempty"`
	IsSpeaking          *bool   `json:"is_speaking,omitempty"`
	IsPinned            *bool   `json:"is_pinned,omitempty"`
	IsHandRaised        *bool   `json:"is_hand_raised,omitempty"`
	IsPresenting        *bool   `json:"is_presenting,omitempty"`
}

// UpdateDetailsRequest represents a partial meeting details update.
// Unknown layout or theme values are accepted and fall back to the defaults.
type UpdateDetailsRequest struct {
	Time        *string `json:"time,omitempty" validate:"omitempty,max=32"`
	Code        *string `json:"code,omitempty" validate:"omitempty,max=64"`
	IsRecording *bool   `json:"is_recording,omitempty"`
	Theme       *string `json:"theme,omitempty"`
	Layout      *string `json:"layout,omitempty"`
}

// LayoutPreviewRequest represents query parameters for a plan preview
type LayoutPreviewRequest struct {
	Mode string `query:"mode"`
}

// ColorRequest represents query parameters for a colour lookup
type ColorRequest struct {
	Name string `query:"name"`
}

// ImageUploadRequest represents query parameters for an image upload
type ImageUploadRequest struct {
	Field string `query:"field" validate:"omitempty,oneof=image_url presentation_content"`
}
