package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-adoption/internal/domain/adoption"
)

type interestRepo struct {
	mu   sync.RWMutex
	byID map[string]adoption.Interest
}

func NewInterestRepo() adoption.Repository {
	return &interestRepo{
		byID: make(map[string]adoption.Interest),
	}
}

// Create chequea la unicidad de PENDING bajo el mismo lock que inserta.
func (r *interestRepo) Create(ctx context.Context, i adoption.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i.ID == "" {
		return errors.New("interest id required")
	}
	if _, exists := r.byID[i.ID]; exists {
		return errors.New("interest already exists")
	}
	if i.Status == adoption.StatusPending {
		if _, ok := r.findPendingLocked(i.AdopterID, i.AnimalID); ok {
			return adoption.ErrAlreadyInQueue
		}
	}
	r.byID[i.ID] = i
	return nil
}

func (r *interestRepo) UpdatePending(ctx context.Context, i adoption.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[i.ID]
	if !exists {
		return adoption.ErrNotFound
	}
	if cur.Status != adoption.StatusPending {
		return adoption.ErrBadState
	}
	r.byID[i.ID] = i
	return nil
}

func (r *interestRepo) GetByID(ctx context.Context, id string) (adoption.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return adoption.Interest{}, adoption.ErrNotFound
	}
	return i, nil
}

func (r *interestRepo) FindPending(ctx context.Context, adopterID, animalID string) (adoption.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.findPendingLocked(adopterID, animalID)
	if !ok {
		return adoption.Interest{}, adoption.ErrNotFound
	}
	return i, nil
}

func (r *interestRepo) ListPendingByAnimal(ctx context.Context, animalID string) ([]adoption.Interest, error) {
	return r.filter(func(i adoption.Interest) bool {
		return i.AnimalID == animalID && i.Status == adoption.StatusPending
	}), nil
}

func (r *interestRepo) ListByAdopter(ctx context.Context, adopterID string) ([]adoption.Interest, error) {
	return r.filter(func(i adoption.Interest) bool {
		return i.AdopterID == adopterID
	}), nil
}

func (r *interestRepo) findPendingLocked(adopterID, animalID string) (adoption.Interest, bool) {
	for _, i := range r.byID {
		if i.Status == adoption.StatusPending && i.AdopterID == adopterID && i.AnimalID == animalID {
			return i, true
		}
	}
	return adoption.Interest{}, false
}

func (r *interestRepo) filter(keep func(adoption.Interest) bool) []adoption.Interest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoption.Interest, 0)
	for _, i := range r.byID {
		if keep(i) {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].ID < out[b].ID
		}
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out
}
