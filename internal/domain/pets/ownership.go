package pets

import "context"

// OwnerOf expone la organización dueña de un animal.
// Se usa para evitar ciclos de imports entre módulos (pets <-> adoption).
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerOrgID, nil
}

// IsAvailable indica si el animal todavía acepta interesados.
func (s *Service) IsAvailable(ctx context.Context, petID string) (bool, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return false, err
	}
	return p.Available(), nil
}

// NameOf devuelve el nombre del animal (referencia parcial para el listado del adoptante).
func (s *Service) NameOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}
