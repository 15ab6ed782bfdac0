package workflow

import (
	"context"
	"errors"
	"strings"
)

// Códigos de duplicado que puede mandar el servidor.
var duplicateCodes = map[string]struct{}{
	"ALREADY_IN_QUEUE":   {},
	"ALREADY_INTERESTED": {},
}

// Frases conocidas, para servidores que no mandan code.
var duplicatePhrases = []string{
	"já está na fila",
	"já demonstrou interesse",
	"already in queue",
	"already expressed interest",
}

// Registration es el resultado de Register. AlreadyRegistered=true cuando el
// adoptante ya estaba en la fila; Interest puede venir vacío si el servidor no lo adjuntó.
type Registration struct {
	Interest          Interest
	AlreadyRegistered bool
}

type Registrar struct {
	store Store
}

func NewRegistrar(store Store) *Registrar {
	return &Registrar{store: store}
}

// Register anota al actor en la fila del animal. Un duplicado es éxito (idempotente).
func (r *Registrar) Register(ctx context.Context, actor Actor, animalID string) (Registration, error) {
	animalID = strings.TrimSpace(animalID)
	if strings.TrimSpace(actor.ID) == "" || animalID == "" {
		return Registration{}, ErrInvalidInput
	}

	i, err := r.store.RegisterInterest(ctx, actor, animalID)
	if err == nil {
		return Registration{Interest: i}, nil
	}

	if IsDuplicate(err) {
		reg := Registration{AlreadyRegistered: true}
		var re *RemoteError
		if errors.As(err, &re) && re.Interest != nil {
			reg.Interest = *re.Interest
		}
		return reg, nil
	}
	return Registration{}, err
}

// IsDuplicate clasifica primero por code y después por el texto del mensaje.
func IsDuplicate(err error) bool {
	var re *RemoteError
	if !errors.As(err, &re) {
		return false
	}
	if re.Code != "" {
		_, ok := duplicateCodes[strings.ToUpper(re.Code)]
		return ok
	}
	msg := strings.ToLower(re.Message)
	for _, phrase := range duplicatePhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
