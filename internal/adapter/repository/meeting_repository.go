package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	"github.com/johnquangdev/meet-mock/internal/domain/repositories"
)

// meetingRepository keeps the roster and details in process memory
type meetingRepository struct {
	mu           sync.RWMutex
	participants []entities.Participant
	details      entities.MeetingDetails
}

// NewMeetingRepository creates a repository loaded with the seed state
func NewMeetingRepository() repositories.MeetingRepository {
	return &meetingRepository{
		participants: entities.SeedParticipants(),
		details:      entities.DefaultDetails(),
	}
}

// NewMeetingRepositoryWith creates a repository holding the given state
func NewMeetingRepositoryWith(participants []entities.Participant, details entities.MeetingDetails) (repositories.MeetingRepository, error) {
	repo := &meetingRepository{}
	if err := repo.ReplaceAll(context.Background(), participants, details); err != nil {
		return nil, err
	}
	return repo, nil
}

// List returns a snapshot of all participants in display order
func (r *meetingRepository) List(ctx context.Context) ([]entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAll(r.participants), nil
}

// FindByID retrieves a participant by ID
func (r *meetingRepository) FindByID(ctx context.Context, id string) (*entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, entities.ErrParticipantNotFound
	}
	p := r.participants[idx].Clone()
	return &p, nil
}

// Create appends a participant to the roster
func (r *meetingRepository) Create(ctx context.Context, participant *entities.Participant) error {
	if participant.ID == "" {
		return entities.ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(participant.ID) >= 0 {
		return fmt.Errorf("%w: %s", entities.ErrDuplicateID, participant.ID)
	}

	p := participant.Clone()
	if p.IsPresenting {
		r.clearPresenting()
	}
	r.participants = append(r.participants, p)
	return nil
}

// Patch runs mutate against the stored record under the write lock and
// returns a copy of the result. A record left presenting takes the
// presenter role away from everybody else in the same critical section.
func (r *meetingRepository) Patch(ctx context.Context, id string, mutate func(*entities.Participant)) (*entities.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, entities.ErrParticipantNotFound
	}

	p := r.participants[idx].Clone()
	mutate(&p)
	p.ID = id

	if p.IsPresenting {
		r.clearPresenting()
	}
	r.participants[idx] = p

	out := p.Clone()
	return &out, nil
}

// Delete removes a participant
func (r *meetingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return entities.ErrParticipantNotFound
	}

	r.participants = append(r.participants[:idx:idx], r.participants[idx+1:]...)
	return nil
}

// ReplaceAll swaps the roster and the details in one write. Only the
// first presenting record keeps the flag. A rejected roster leaves the
// current state untouched.
func (r *meetingRepository) ReplaceAll(ctx context.Context, participants []entities.Participant, details entities.MeetingDetails) error {
	next, err := normalizeRoster(participants)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.participants = next
	r.details = details
	r.mu.Unlock()
	return nil
}

// Count returns the number of participants
func (r *meetingRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.participants), nil
}

// GetDetails returns the meeting details
func (r *meetingRepository) GetDetails(ctx context.Context) (entities.MeetingDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.details, nil
}

// PatchDetails runs mutate against the stored details under the write lock
func (r *meetingRepository) PatchDetails(ctx context.Context, mutate func(*entities.MeetingDetails)) (entities.MeetingDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mutate(&r.details)
	return r.details, nil
}

func (r *meetingRepository) indexOf(id string) int {
	_, idx, ok := lo.FindIndexOf(r.participants, func(p entities.Participant) bool {
		return p.ID == id
	})
	if !ok {
		return -1
	}
	return idx
}

func (r *meetingRepository) clearPresenting() {
	for i := range r.participants {
		r.participants[i].IsPresenting = false
	}
}

func normalizeRoster(participants []entities.Participant) ([]entities.Participant, error) {
	next := cloneAll(participants)

	seen := make(map[string]struct{}, len(next))
	presenterFound := false
	for i := range next {
		if next[i].ID == "" {
			return nil, entities.ErrEmptyID
		}
		if _, dup := seen[next[i].ID]; dup {
			return nil, fmt.Errorf("%w: %s", entities.ErrDuplicateID, next[i].ID)
		}
		seen[next[i].ID] = struct{}{}

		if next[i].IsPresenting {
			if presenterFound {
				next[i].IsPresenting = false
			}
			presenterFound = true
		}
	}
	return next, nil
}

func cloneAll(participants []entities.Participant) []entities.Participant {
	return lo.Map(participants, func(p entities.Participant, _ int) entities.Participant {
		return p.Clone()
	})
}
