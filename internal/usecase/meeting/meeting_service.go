package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	"github.com/johnquangdev/meet-mock/internal/domain/repositories"
	"github.com/johnquangdev/meet-mock/internal/infrastructure/storage"
	"github.com/johnquangdev/meet-mock/internal/usecase/layout"
	usecaseErrors "github.com/johnquangdev/meet-mock/internal/usecase/errors"
)

// ImageStore persists uploaded images and returns a reference a tile can load
type ImageStore interface {
	Put(ctx context.Context, obj storage.Object) (string, error)
	Name() string
}

// MeetingService handles meeting business logic
type MeetingService struct {
	repo   repositories.MeetingRepository
	images ImageStore
	view   *ViewState
	logger *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	repo repositories.MeetingRepository,
	images ImageStore,
	view *ViewState,
	logger *zap.Logger,
) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{
		repo:   repo,
		images: images,
		view:   view,
		logger: logger,
	}
}

// Snapshot is the full render state of the meeting screen
type Snapshot struct {
	Participants []entities.Participant
	Details      entities.MeetingDetails
	Plan         layout.Plan
	View         ViewSnapshot
}

// AddParticipantInput represents input for adding a participant
type AddParticipantInput struct {
	Name     string
	ImageURL *string
}

// Upload is an image file received from the client
type Upload struct {
	Filename string
	Data     []byte
}

// Snapshot returns participants, details, the current plan and the view toggles
func (s *MeetingService) Snapshot(ctx context.Context) (*Snapshot, error) {
	participants, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	details, err := s.repo.GetDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting details: %w", err)
	}

	return &Snapshot{
		Participants: participants,
		Details:      details,
		Plan:         layout.Select(participants, details.Layout),
		View:         s.view.Snapshot(),
	}, nil
}

// Preview computes the plan for mode without changing the stored layout
func (s *MeetingService) Preview(ctx context.Context, mode string) (layout.Plan, error) {
	participants, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return layout.Select(participants, entities.ParseLayout(mode)), nil
}

// GetParticipant retrieves a participant by ID
func (s *MeetingService) GetParticipant(ctx context.Context, id string) (*entities.Participant, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return p, nil
}

// AddParticipant appends a muted, video-off participant. An empty name
// becomes "User N" where N is the new roster size.
func (s *MeetingService) AddParticipant(ctx context.Context, input AddParticipantInput) (*entities.Participant, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	name := input.Name
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("User %d", count+1)
	}

	image := input.ImageURL
	if image == nil {
		image = lo.ToPtr(lo.Sample(entities.MockImages))
	}

	p := &entities.Participant{
		ID:         uuid.New().String(),
		Name:       name,
		ImageURL:   image,
		IsMuted:    true,
		IsVideoOff: true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Debug("participant added",
		zap.String("participant_id", p.ID),
		zap.String("name", p.Name))

	return p, nil
}

// UpdateParticipant applies patch to the latest stored record. Presenting
// is exclusive, the repository clears the flag on everyone else.
func (s *MeetingService) UpdateParticipant(ctx context.Context, id string, patch entities.ParticipantPatch) (*entities.Participant, error) {
	p, err := s.repo.Patch(ctx, id, patch.Apply)
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Debug("participant updated",
		zap.String("participant_id", p.ID),
		zap.Bool("is_presenting", p.IsPresenting))

	return p, nil
}

// RemoveParticipant removes a participant from the stage
func (s *MeetingService) RemoveParticipant(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}

	s.logger.Debug("participant removed", zap.String("participant_id", id))
	return nil
}

// UpdateDetails merges patch into the meeting details
func (s *MeetingService) UpdateDetails(ctx context.Context, patch entities.DetailsPatch) (*entities.MeetingDetails, error) {
	details, err := s.repo.PatchDetails(ctx, patch.Apply)
	if err != nil {
		return nil, fmt.Errorf("failed to update meeting details: %w", err)
	}

	s.logger.Debug("meeting details updated",
		zap.String("layout", string(details.Layout)),
		zap.String("theme", string(details.Theme)),
		zap.Bool("is_recording", details.IsRecording))

	return &details, nil
}

// SetParticipantImage stores upload and writes the returned reference
// into field
func (s *MeetingService) SetParticipantImage(ctx context.Context, id string, field entities.ImageField, upload Upload) (*entities.Participant, error) {
	if !field.Valid() {
		return nil, usecaseErrors.ErrInvalidImageField
	}
	if len(upload.Data) == 0 {
		return nil, usecaseErrors.ErrEmptyUpload
	}

	mtype := mimetype.Detect(upload.Data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrNotAnImage, mtype.String())
	}

	// Unknown ids are rejected before anything is uploaded
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepoError(err)
	}

	key := fmt.Sprintf("participants/%s/%s-%s%s", id, field, uuid.New().String(), mtype.Extension())
	ref, err := s.images.Put(ctx, storage.Object{
		Key:         key,
		ContentType: mtype.String(),
		Data:        upload.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrStorage, err)
	}

	// Write only the image field so changes made during the upload survive
	p, err := s.repo.Patch(ctx, id, func(p *entities.Participant) {
		p.SetImage(field, ref)
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Debug("participant image stored",
		zap.String("participant_id", p.ID),
		zap.String("field", string(field)),
		zap.String("backend", s.images.Name()),
		zap.String("content_type", mtype.String()),
		zap.Int("size", len(upload.Data)))

	return p, nil
}

// Reset restores the seed roster and details and brings the UI back
func (s *MeetingService) Reset(ctx context.Context) error {
	if err := s.repo.ReplaceAll(ctx, entities.SeedParticipants(), entities.DefaultDetails()); err != nil {
		return fmt.Errorf("failed to reset meeting: %w", err)
	}
	s.view.RestoreUI()

	s.logger.Debug("meeting reset")
	return nil
}

// View exposes the screen-level toggles
func (s *MeetingService) View() *ViewState {
	return s.view
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, entities.ErrParticipantNotFound):
		return usecaseErrors.ErrParticipantNotFound
	case errors.Is(err, entities.ErrDuplicateID):
		return fmt.Errorf("%w: %v", usecaseErrors.ErrParticipantExists, err)
	}
	return err
}
