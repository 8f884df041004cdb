package errors

import "errors"

// Participant errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantExists   = errors.New("participant already exists")
	ErrInvalidImageField   = errors.New("image field must be image_url or presentation_content")
)

// Upload errors
var (
	ErrNotAnImage  = errors.New("uploaded content is not an image")
	ErrEmptyUpload = errors.New("uploaded content is empty")
	ErrStorage     = errors.New("image storage failed")
)
