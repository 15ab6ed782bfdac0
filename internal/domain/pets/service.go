package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Species     string
	Size        string
	AgeYears    int
	Breed       string
	Description string
	ImageURL    string
	PhotoURLs   []string
}

func (s *Service) Create(ctx context.Context, ownerOrgID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerOrgID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.AgeYears < 0 {
		return Pet{}, ErrInvalidInput
	}

	photos := make([]Photo, 0, len(in.PhotoURLs))
	for _, u := range in.PhotoURLs {
		if u = strings.TrimSpace(u); u != "" {
			photos = append(photos, Photo{URL: u})
		}
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerOrgID:  ownerOrgID,
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Size:        Size(strings.TrimSpace(in.Size)),
		AgeYears:    in.AgeYears,
		Breed:       strings.TrimSpace(in.Breed),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Photos:      photos,
		Status:      StatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	return p, nil
}

// List devuelve el catálogo público. status vacío => todos.
func (s *Service) List(ctx context.Context, status Status) ([]Pet, error) {
	return s.repo.List(ctx, status)
}

func (s *Service) ListByOwner(ctx context.Context, ownerOrgID string) ([]Pet, error) {
	if strings.TrimSpace(ownerOrgID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerOrgID)
}

// UpdateStatus marca un animal como adotado/disponível. Solo la organización dueña.
func (s *Service) UpdateStatus(ctx context.Context, petID, orgID string, status Status) (Pet, error) {
	if strings.TrimSpace(orgID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if status != StatusAvailable && status != StatusAdopted {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerOrgID != orgID {
		return Pet{}, ErrForbidden
	}

	// Idempotente
	if p.Status == status {
		return p, nil
	}

	p.Status = status
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
