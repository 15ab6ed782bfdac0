package pets

import "context"

// Repository: GetByID y Update devuelven ErrNotFound si el animal no existe.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, status Status) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerOrgID string) ([]Pet, error)
}
