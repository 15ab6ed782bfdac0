package adoption

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption/internal/platform/logger"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrBadState       = errors.New("interest is not pending")
	ErrAlreadyInQueue = errors.New("adopter already in queue for this animal")
	ErrPetUnavailable = errors.New("animal is no longer available")
)

// PetLookup evita importar el paquete pets (rompe ciclos).
// Un animal inexistente se informa con ErrNotFound; cualquier otro error se propaga tal cual.
type PetLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
	IsAvailable(ctx context.Context, petID string) (bool, error)
}

// UseCases es lo que consumen el handler y el decorator de observabilidad.
type UseCases interface {
	Register(ctx context.Context, in RegisterInput) (Interest, error)
	ListQueue(ctx context.Context, animalID, orgID string) ([]Interest, error)
	Evaluate(ctx context.Context, interestID, orgID string, decision Status) (Interest, error)
	ListByAdopter(ctx context.Context, adopterID string) ([]Interest, error)
}

type Service struct {
	repo      Repository
	pets      PetLookup
	publisher EventPublisher
	log       logger.Logger
	now       func() time.Time
}

type Option func(*Service)

func WithPublisher(p EventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo Repository, pets PetLookup, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		pets:      pets,
		publisher: NoopPublisher(),
		log:       logger.Discard(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type RegisterInput struct {
	AnimalID     string
	AdopterID    string
	AdopterName  string
	AdopterEmail string
}

// Register crea un interés PENDING.
// Si el adoptante ya está en la fila devuelve el interés existente junto con ErrAlreadyInQueue.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Interest, error) {
	animalID := strings.TrimSpace(in.AnimalID)
	adopterID := strings.TrimSpace(in.AdopterID)
	if animalID == "" || adopterID == "" {
		return Interest{}, ErrInvalidInput
	}

	available, err := s.pets.IsAvailable(ctx, animalID)
	if err != nil {
		return Interest{}, err
	}

	existing, err := s.repo.FindPending(ctx, adopterID, animalID)
	switch {
	case err == nil:
		return existing, ErrAlreadyInQueue
	case !errors.Is(err, ErrNotFound):
		return Interest{}, err
	}
	if !available {
		return Interest{}, ErrPetUnavailable
	}

	now := s.now()
	i := Interest{
		ID:           uuid.NewString(),
		AnimalID:     animalID,
		AdopterID:    adopterID,
		AdopterName:  strings.TrimSpace(in.AdopterName),
		AdopterEmail: strings.TrimSpace(in.AdopterEmail),
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		if errors.Is(err, ErrAlreadyInQueue) {
			// Carrera: otro request ganó entre FindPending y Create.
			existing, findErr := s.repo.FindPending(ctx, adopterID, animalID)
			if findErr != nil {
				return Interest{}, ErrAlreadyInQueue
			}
			return existing, ErrAlreadyInQueue
		}
		return Interest{}, err
	}

	s.publish(ctx, EventInterestRegistered, i)
	return i, nil
}

// ListQueue devuelve los PENDING del animal. Solo la organización dueña.
func (s *Service) ListQueue(ctx context.Context, animalID, orgID string) ([]Interest, error) {
	animalID = strings.TrimSpace(animalID)
	orgID = strings.TrimSpace(orgID)
	if animalID == "" || orgID == "" {
		return nil, ErrInvalidInput
	}

	if err := s.authorizeOwner(ctx, animalID, orgID); err != nil {
		return nil, err
	}
	return s.repo.ListPendingByAnimal(ctx, animalID)
}

// Evaluate aprueba o rechaza un interés PENDING.
// No toca los otros interesados del mismo animal.
func (s *Service) Evaluate(ctx context.Context, interestID, orgID string, decision Status) (Interest, error) {
	interestID = strings.TrimSpace(interestID)
	orgID = strings.TrimSpace(orgID)
	if interestID == "" || orgID == "" {
		return Interest{}, ErrInvalidInput
	}
	if decision != StatusApproved && decision != StatusRejected {
		return Interest{}, ErrInvalidInput
	}

	i, err := s.repo.GetByID(ctx, interestID)
	if err != nil {
		return Interest{}, err
	}

	if err := s.authorizeOwner(ctx, i.AnimalID, orgID); err != nil {
		return Interest{}, err
	}

	if !i.Status.CanTransitionTo(decision) {
		return Interest{}, ErrBadState
	}

	i.Status = decision
	i.UpdatedAt = s.now()
	i.EvaluatedBy = orgID

	if err := s.repo.UpdatePending(ctx, i); err != nil {
		return Interest{}, err
	}

	s.publish(ctx, EventInterestEvaluated, i)
	return i, nil
}

func (s *Service) ListByAdopter(ctx context.Context, adopterID string) ([]Interest, error) {
	adopterID = strings.TrimSpace(adopterID)
	if adopterID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByAdopter(ctx, adopterID)
}

func (s *Service) authorizeOwner(ctx context.Context, animalID, orgID string) error {
	ownerID, err := s.pets.OwnerOf(ctx, animalID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(ownerID) == "" {
		return ErrNotFound
	}
	if ownerID != orgID {
		return ErrForbidden
	}
	return nil
}

// publish es best-effort: el cambio ya está persistido.
func (s *Service) publish(ctx context.Context, t EventType, i Interest) {
	e := Event{Type: t, Interest: i, OccurredAt: s.now()}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.Warn("failed to publish adoption event", map[string]any{
			"event":       string(t),
			"interest_id": i.ID,
			"error":       err.Error(),
		})
	}
}

var _ UseCases = (*Service)(nil)
