package adoption

import (
	"strings"
	"time"
)

// Status del interés de adopción.
// @Enum PENDING, APPROVED, REJECTED
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// CanTransitionTo: solo PENDING -> APPROVED | REJECTED. Ambos terminales.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected
}

// ParseDecision normaliza la decisión de la organización.
// Acepta APROVADO / REJEITADO (payload del cliente web).
func ParseDecision(s string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "APPROVED", "APROVADO":
		return StatusApproved, true
	case "REJECTED", "REJEITADO":
		return StatusRejected, true
	default:
		return "", false
	}
}

// Interest es la solicitud de un adoptante para entrar en la fila de un animal.
type Interest struct {
	ID       string
	AnimalID string

	AdopterID string
	// Snapshot tomado al registrar; no se sincroniza con el perfil.
	AdopterName  string
	AdopterEmail string

	Status Status

	CreatedAt   time.Time
	UpdatedAt   time.Time
	EvaluatedBy string // org que decidió; vacío mientras PENDING
}
