package entities

import (
	"strings"
	"unicode/utf8"
)

// Participant represents one tile on the meeting stage
type Participant struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	ImageURL            *string `json:"image_url,omitempty"`
	PresentationContent *string `json:"presentation_content,omitempty"` // only meaningful while presenting
	IsMuted             bool    `json:"is_muted"`
	IsVideoOff          bool    `json:"is_video_off"`
	IsNetworkError      bool    `json:"is_network_error"`
	IsSpeaking          bool    `json:"is_speaking"`
	IsPinned            bool    `json:"is_pinned"`
	IsHandRaised        bool    `json:"is_hand_raised"`
	IsPresenting        bool    `json:"is_presenting"`
}

// ImageField names a participant field that can hold an uploaded image
type ImageField string

const (
	ImageFieldAvatar       ImageField = "image_url"
	ImageFieldPresentation ImageField = "presentation_content"
)

// Valid reports whether f is one of the known image fields
func (f ImageField) Valid() bool {
	return f == ImageFieldAvatar || f == ImageFieldPresentation
}

// HasImage checks if the participant has a non-empty image reference
func (p *Participant) HasImage() bool {
	return p.ImageURL != nil && *p.ImageURL != ""
}

// HasPresentationContent checks if the participant has a screen share image
func (p *Participant) HasPresentationContent() bool {
	return p.PresentationContent != nil && *p.PresentationContent != ""
}

// InitialLetter returns the upper-cased first character of the name
func (p *Participant) InitialLetter() string {
	if p.Name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(p.Name)
	return strings.ToUpper(string(r))
}

// SetImage writes ref into the given image field
func (p *Participant) SetImage(field ImageField, ref string) {
	switch field {
	case ImageFieldAvatar:
		p.ImageURL = &ref
	case ImageFieldPresentation:
		p.PresentationContent = &ref
	}
}

// Clone returns a deep copy so callers can't reach into owned state
func (p Participant) Clone() Participant {
	out := p
	if p.ImageURL != nil {
		v := *p.ImageURL
		out.ImageURL = &v
	}
	if p.PresentationContent != nil {
		v := *p.PresentationContent
		out.PresentationContent = &v
	}
	return out
}

// ParticipantPatch is a partial update; nil fields are left untouched
type ParticipantPatch struct {
	Name                *string
	ImageURL            *string
	PresentationContent *string
	IsMuted             *bool
	IsVideoOff          *bool
	IsNetworkError      *bool
	IsSpeaking          *bool
	IsPinned            *bool
	IsHandRaised        *bool
	IsPresenting        *bool
}

// Apply merges the patch into p
func (patch ParticipantPatch) Apply(p *Participant) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ImageURL != nil {
		v := *patch.ImageURL
		p.ImageURL = &v
	}
	if patch.PresentationContent != nil {
		v := *patch.PresentationContent
		p.PresentationContent = &v
	}
	setBool(&p.IsMuted, patch.IsMuted)
	setBool(&p.IsVideoOff, patch.IsVideoOff)
	setBool(&p.IsNetworkError, patch.IsNetworkError)
	setBool(&p.IsSpeaking, patch.IsSpeaking)
	setBool(&p.IsPinned, patch.IsPinned)
	setBool(&p.IsHandRaised, patch.IsHandRaised)
	setBool(&p.IsPresenting, patch.IsPresenting)
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
