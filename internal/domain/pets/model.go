package pets

import (
	"strings"
	"time"
)

// Status define la disponibilidad de un animal para adopción.
// @Enum DISPONIVEL, ADOTADO
type Status string

const (
	StatusAvailable Status = "DISPONIVEL"
	StatusAdopted   Status = "ADOTADO"
)

// ParseStatus acepta también AVAILABLE / ADOPTED.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DISPONIVEL", "AVAILABLE":
		return StatusAvailable, true
	case "ADOTADO", "ADOPTED":
		return StatusAdopted, true
	default:
		return "", false
	}
}

// Size es el porte del animal (texto libre en la UI: Pequeno, Médio, Grande).
type Size string

// Photo es una foto subida por la organización. La primera es la principal.
type Photo struct {
	URL string
}

// Pet es un animal publicado por una organización para adopción.
type Pet struct {
	ID         string
	OwnerOrgID string

	Name        string
	Species     string // Cachorro, Gato...
	Size        Size
	AgeYears    int
	Breed       string
	Description string

	ImageURL string
	Photos   []Photo

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Pet) Available() bool {
	return p.Status == StatusAvailable
}
