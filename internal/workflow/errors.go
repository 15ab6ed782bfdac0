package workflow

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("service unavailable, please try again")
	ErrNotConfirmed = errors.New("action not confirmed")
	ErrDiscarded    = errors.New("result discarded: view closed or reloaded")
)

// RemoteError es una respuesta de error de la API.
// Kind es uno de los sentinels de arriba; Message se muestra tal cual al usuario.
type RemoteError struct {
	Kind    error
	Status  int
	Code    string
	Message string

	// Interest existente cuando el servidor lo adjunta a un duplicado.
	Interest *Interest
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (status %d)", e.Kind, e.Status)
	}
	return e.Message
}

func (e *RemoteError) Unwrap() error { return e.Kind }
