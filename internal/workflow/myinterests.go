package workflow

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultPetImage se usa cuando el animal no tiene fotos ni imagemUrl.
const DefaultPetImage = "https://via.placeholder.com/800x600?text=Sem+Foto"

const defaultEnrichLimit = 4

// InterestWithPet es un ítem de "mis intereses".
// Enriched=false => Pet solo tiene ID y Name (la consulta del detalle falló).
type InterestWithPet struct {
	Interest Interest
	Pet      Pet
	Enriched bool
}

// Image resuelve la foto a mostrar.
func (i InterestWithPet) Image() string {
	return ResolveImage(i.Pet)
}

func (i InterestWithPet) Label() string {
	return StatusLabel(i.Interest.Status)
}

type MyInterests struct {
	store Store
	limit int
}

// NewMyInterests: limit <= 0 usa el default de consultas de detalle en paralelo.
func NewMyInterests(store Store, limit int) *MyInterests {
	if limit <= 0 {
		limit = defaultEnrichLimit
	}
	return &MyInterests{store: store, limit: limit}
}

// Load lista los intereses del actor y completa cada animal en paralelo.
// Un detalle que falla deja la referencia parcial; ningún ítem se pierde y el orden se respeta.
func (m *MyInterests) Load(ctx context.Context, actor Actor) ([]InterestWithPet, error) {
	if strings.TrimSpace(actor.ID) == "" {
		return nil, ErrInvalidInput
	}

	listed, err := m.store.ListMyInterests(ctx, actor)
	if err != nil {
		return nil, err
	}

	out := make([]InterestWithPet, len(listed))
	for idx, li := range listed {
		out[idx] = InterestWithPet{
			Interest: li.Interest,
			Pet:      Pet{ID: li.Pet.ID, Name: li.Pet.Name},
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.limit)
	for idx := range out {
		petID := out[idx].Pet.ID
		if petID == "" {
			continue
		}
		g.Go(func() error {
			pet, err := m.store.GetPet(gctx, actor, petID)
			if err != nil {
				return nil // degradado: queda la referencia parcial
			}
			if pet.Name == "" {
				pet.Name = out[idx].Pet.Name
			}
			out[idx].Pet = pet
			out[idx].Enriched = true
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

// StatusLabel es la etiqueta para el adoptante. Lo que no es aprobado ni rechazado se muestra como en análisis.
func StatusLabel(s Status) string {
	switch ParseStatus(string(s)) {
	case StatusApproved:
		return "accepted, expect contact"
	case StatusRejected:
		return "closed, not accepted"
	default:
		return "awaiting review"
	}
}

// ResolveImage: primera foto, si no imagemUrl, si no la imagen default.
func ResolveImage(p Pet) string {
	for _, u := range p.PhotoURLs {
		if u = strings.TrimSpace(u); u != "" {
			return u
		}
	}
	if u := strings.TrimSpace(p.ImageURL); u != "" {
		return u
	}
	return DefaultPetImage
}
