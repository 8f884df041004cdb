package meeting

import (
	"context"

	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	"github.com/johnquangdev/meet-mock/internal/usecase/layout"
)

// Service defines the interface for the meeting use case
type Service interface {
	// Snapshot returns everything needed to render the meeting screen
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Preview computes the plan the stage would use under mode
	Preview(ctx context.Context, mode string) (layout.Plan, error)

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, id string) (*entities.Participant, error)

	// AddParticipant appends a participant with mock defaults
	AddParticipant(ctx context.Context, input AddParticipantInput) (*entities.Participant, error)

	// UpdateParticipant applies a partial update to a participant
	UpdateParticipant(ctx context.Context, id string, patch entities.ParticipantPatch) (*entities.Participant, error)

	// RemoveParticipant removes a participant from the stage
	RemoveParticipant(ctx context.Context, id string) error

	// UpdateDetails applies a partial update to the meeting details
	UpdateDetails(ctx context.Context, patch entities.DetailsPatch) (*entities.MeetingDetails, error)

	// SetParticipantImage stores an uploaded image and points field at it
	SetParticipantImage(ctx context.Context, id string, field entities.ImageField, upload Upload) (*entities.Participant, error)

	// Reset restores the seed roster and details
	Reset(ctx context.Context) error

	// View exposes the screen-level toggles
	View() *ViewState
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
