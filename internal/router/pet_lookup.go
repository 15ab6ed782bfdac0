package router

import (
	"context"
	"errors"

	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/pets"
)

// petLookup adapta pets.Service al puerto de adoption.
// Solo el "no existe" se traduce; los errores de infraestructura pasan tal cual (=> 500).
type petLookup struct {
	svc *pets.Service
}

func (l petLookup) OwnerOf(ctx context.Context, petID string) (string, error) {
	owner, err := l.svc.OwnerOf(ctx, petID)
	return owner, translatePetErr(err)
}

func (l petLookup) IsAvailable(ctx context.Context, petID string) (bool, error) {
	ok, err := l.svc.IsAvailable(ctx, petID)
	return ok, translatePetErr(err)
}

func translatePetErr(err error) error {
	if errors.Is(err, pets.ErrNotFound) || errors.Is(err, pets.ErrInvalidInput) {
		return adoption.ErrNotFound
	}
	return err
}
