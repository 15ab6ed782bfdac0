// Package workflow es el núcleo del cliente de adopción: registro de interés,
// fila por animal, evaluación por la organización y "mis intereses" del adoptante.
// Toda la persistencia la hace la API remota a través de Store.
package workflow

import (
	"context"
	"strings"
	"time"

	"pet-adoption/internal/ports/auth"
)

// Actor es la identidad de quien opera. Se pasa explícita en cada llamada; no hay sesión global.
type Actor struct {
	ID    string
	Role  auth.Role
	Name  string
	Email string
	Token string // bearer; vacío en modo dev
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus normaliza el estado que manda la API, incluidos los valores en portugués.
// Lo desconocido se devuelve en mayúsculas, sin tocar.
func ParseStatus(s string) Status {
	switch v := strings.ToUpper(strings.TrimSpace(s)); v {
	case "APROVADO":
		return StatusApproved
	case "REJEITADO":
		return StatusRejected
	case "PENDENTE", "EM_ANALISE":
		return StatusPending
	default:
		return Status(v)
	}
}

type Interest struct {
	ID           string
	AnimalID     string
	AdopterID    string
	AdopterName  string
	AdopterEmail string
	Status       Status
	CreatedAt    time.Time
}

// PetRef es la referencia parcial que trae el listado del adoptante.
type PetRef struct {
	ID   string
	Name string
}

type Pet struct {
	ID          string
	OwnerOrgID  string
	Name        string
	Species     string
	Size        string
	AgeYears    int
	Breed       string
	Description string
	ImageURL    string
	PhotoURLs   []string
	Status      string
}

type AdopterInterest struct {
	Interest Interest
	Pet      PetRef
}

// Store es el puerto hacia el registro remoto de intereses.
type Store interface {
	RegisterInterest(ctx context.Context, actor Actor, animalID string) (Interest, error)
	ListInterests(ctx context.Context, actor Actor, animalID string) ([]Interest, error)
	EvaluateInterest(ctx context.Context, actor Actor, interestID string, decision Status) (Interest, error)
	ListMyInterests(ctx context.Context, actor Actor) ([]AdopterInterest, error)
	GetPet(ctx context.Context, actor Actor, petID string) (Pet, error)
	ListMyPets(ctx context.Context, actor Actor) ([]Pet, error)
}
