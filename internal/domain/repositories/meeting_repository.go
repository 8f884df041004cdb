package repositories

import (
	"context"

	"github.com/johnquangdev/meet-mock/internal/domain/entities"
)

// MeetingRepository owns the participant roster and the meeting details
type MeetingRepository interface {
	// List returns a snapshot of all participants in display order
	List(ctx context.Context) ([]entities.Participant, error)

	// FindByID retrieves a participant by ID
	FindByID(ctx context.Context, id string) (*entities.Participant, error)

	// Create appends a participant to the roster
	Create(ctx context.Context, participant *entities.Participant) error

	// Patch applies mutate to the stored record atomically and returns the
	// result. When the record ends up presenting, every other participant
	// stops presenting in the same write.
	Patch(ctx context.Context, id string, mutate func(*entities.Participant)) (*entities.Participant, error)

	// Delete removes a participant
	Delete(ctx context.Context, id string) error

	// ReplaceAll swaps the whole roster and the details at once
	ReplaceAll(ctx context.Context, participants []entities.Participant, details entities.MeetingDetails) error

	// Count returns the number of participants
	Count(ctx context.Context) (int, error)

	// GetDetails returns the meeting details
	GetDetails(ctx context.Context) (entities.MeetingDetails, error)

	// PatchDetails applies mutate to the meeting details atomically
	PatchDetails(ctx context.Context, mutate func(*entities.MeetingDetails)) (entities.MeetingDetails, error)
}
