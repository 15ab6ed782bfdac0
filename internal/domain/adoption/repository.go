package adoption

import "context"

// Repository es la única fuente de verdad de la regla
// "a lo sumo un PENDING por (adoptante, animal)".
// GetByID, FindPending y UpdatePending devuelven ErrNotFound si no hay registro;
// otros errores son de infraestructura.
type Repository interface {
	// Create devuelve ErrAlreadyInQueue si ya existe un PENDING para el par.
	Create(ctx context.Context, i Interest) error
	// UpdatePending persiste i solo si el registro actual sigue PENDING (ErrBadState si no).
	UpdatePending(ctx context.Context, i Interest) error
	GetByID(ctx context.Context, id string) (Interest, error)
	FindPending(ctx context.Context, adopterID, animalID string) (Interest, error)
	// ListPendingByAnimal ordena por CreatedAt asc, desempate por ID.
	ListPendingByAnimal(ctx context.Context, animalID string) ([]Interest, error)
	ListByAdopter(ctx context.Context, adopterID string) ([]Interest, error)
}
