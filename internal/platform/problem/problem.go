// Package problem implementa respuestas RFC 7807 (Problem Details) para la API.
package problem

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentType es el media type de las respuestas de error.
const ContentType = "application/problem+json"

// Detail representa un Problem Details. Code es una extensión propia: código estable
// que los clientes usan para clasificar errores sin depender del texto.
type Detail struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Code     string         `json:"code,omitempty"`
	Extra    map[string]any `json:"extensions,omitempty"`
}

func (p Detail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

func (p Detail) WithDetail(detail string) Detail {
	p.Detail = detail
	return p
}

func (p Detail) WithCode(code string) Detail {
	p.Code = code
	return p
}

func (p Detail) WithExtension(key string, value any) Detail {
	extra := make(map[string]any, len(p.Extra)+1)
	for k, v := range p.Extra {
		extra[k] = v
	}
	extra[key] = value
	p.Extra = extra
	return p
}

const (
	TypeValidation   = "/problems/validation-error"
	TypeNotFound     = "/problems/not-found"
	TypeConflict     = "/problems/conflict"
	TypeInternal     = "/problems/internal-error"
	TypeUnauthorized = "/problems/unauthorized"
	TypeForbidden    = "/problems/forbidden"
)

var (
	NotFound = Detail{
		Type:   TypeNotFound,
		Title:  "Resource Not Found",
		Status: http.StatusNotFound,
	}

	Validation = Detail{
		Type:   TypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
	}

	Conflict = Detail{
		Type:   TypeConflict,
		Title:  "Conflict",
		Status: http.StatusConflict,
	}

	Internal = Detail{
		Type:   TypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
	}

	Unauthorized = Detail{
		Type:   TypeUnauthorized,
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
	}

	Forbidden = Detail{
		Type:   TypeForbidden,
		Title:  "Forbidden",
		Status: http.StatusForbidden,
	}
)

// Write envía el problem con el content type correcto. Instance default = path del request.
func Write(w http.ResponseWriter, r *http.Request, p Detail) {
	if p.Instance == "" && r != nil {
		p.Instance = r.URL.Path
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}
