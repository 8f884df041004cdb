package entities

import "errors"

// Domain errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDuplicateID         = errors.New("participant id already in use")
	ErrEmptyID             = errors.New("participant id is empty")
)
