package adoption

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/problem"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Códigos estables en el campo "code" del problem; el cliente clasifica por acá, no por el texto.
const (
	CodeAlreadyInQueue = "ALREADY_IN_QUEUE"
	CodePetUnavailable = "PET_UNAVAILABLE"
	CodeNotPending     = "INTEREST_NOT_PENDING"
	CodeNotOwner       = "NOT_OWNER"
	CodeWrongRole      = "WRONG_ROLE"
)

// Texto que mostraba el cliente web ante un duplicado.
const duplicateDetail = "Usuário já está na fila de espera deste animal"

// PetNames resuelve la referencia parcial {id, nome} del listado del adoptante.
type PetNames interface {
	NameOf(ctx context.Context, petID string) (string, error)
}

func RegisterRoutes(r chi.Router, svc UseCases, names PetNames) {
	r.Route("/adoption", func(ar chi.Router) {
		ar.Post("/animal/{animalId}/match", registerInterestHandler(svc))
		ar.Get("/animal/{animalId}/queue", listQueueHandler(svc))
		ar.Put("/interest/{interestId}/evaluate", evaluateInterestHandler(svc))
		ar.Get("/adopter", listAdopterInterestsHandler(svc, names))
	})
}

type interestResponse struct {
	ID           string    `json:"interesseId"`
	AnimalID     string    `json:"animalId"`
	AdopterID    string    `json:"usuarioId"`
	AdopterName  string    `json:"nomeUsuario"`
	AdopterEmail string    `json:"emailUsuario"`
	CreatedAt    time.Time `json:"dataDeInteresse"`
	Status       Status    `json:"status"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type animalRef struct {
	ID   string `json:"id"`
	Name string `json:"nome,omitempty"`
}

type adopterInterestResponse struct {
	interestResponse
	Animal animalRef `json:"animal"`
}

type evaluateRequest struct {
	Status string `json:"status"`
}

// registerInterestHandler godoc
// @Summary Registrar interés en un animal
// @Description El adoptante entra en la fila del animal. Si ya estaba, responde 409 con code `ALREADY_IN_QUEUE` y el interés existente en `extensions.interest`. Autenticación: `X-Debug-User-ID` + `X-Debug-User-Role: ADOPTER` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags adoption
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param X-Debug-User-Role header string false "Solo en modo dev: ADOPTER"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalId path string true "ID del animal"
// @Success 201 {object} interestResponse
// @Failure 400 {object} problem.Detail
// @Failure 401 {object} problem.Detail
// @Failure 403 {object} problem.Detail
// @Failure 404 {object} problem.Detail
// @Failure 409 {object} problem.Detail "ALREADY_IN_QUEUE | PET_UNAVAILABLE"
// @Router /adoption/animal/{animalId}/match [post]
func registerInterestHandler(svc UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireRole(w, r, auth.RoleAdopter)
		if !ok {
			return
		}

		i, err := svc.Register(r.Context(), RegisterInput{
			AnimalID:     chi.URLParam(r, "animalId"),
			AdopterID:    claims.UserID,
			AdopterName:  claims.Name,
			AdopterEmail: claims.Email,
		})
		if err != nil {
			if errors.Is(err, ErrAlreadyInQueue) {
				p := problem.Conflict.WithDetail(duplicateDetail).WithCode(CodeAlreadyInQueue)
				if i.ID != "" {
					p = p.WithExtension("interest", toInterestResponse(i))
				}
				problem.Write(w, r, p)
				return
			}
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, toInterestResponse(i))
	}
}

// listQueueHandler godoc
// @Summary Fila de interesados de un animal
// @Description Interesados PENDING ordenados por fecha de interés. Solo la organización dueña.
// @Tags adoption
// @Produce json
// @Param animalId path string true "ID del animal"
// @Success 200 {array} interestResponse
// @Failure 401 {object} problem.Detail
// @Failure 403 {object} problem.Detail
// @Failure 404 {object} problem.Detail
// @Router /adoption/animal/{animalId}/queue [get]
func listQueueHandler(svc UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireRole(w, r, auth.RoleOrganization)
		if !ok {
			return
		}

		items, err := svc.ListQueue(r.Context(), chi.URLParam(r, "animalId"), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]interestResponse, 0, len(items))
		for _, i := range items {
			out = append(out, toInterestResponse(i))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// evaluateInterestHandler godoc
// @Summary Aprobar o rechazar un interés
// @Description Body `{"status": "APPROVED" | "REJECTED"}` (acepta APROVADO / REJEITADO). Solo intereses PENDING; no afecta a los demás interesados.
// @Tags adoption
// @Accept json
// @Produce json
// @Param interestId path string true "ID del interés"
// @Param payload body evaluateRequest true "Decisión"
// @Success 200 {object} interestResponse
// @Failure 400 {object} problem.Detail
// @Failure 401 {object} problem.Detail
// @Failure 403 {object} problem.Detail
// @Failure 404 {object} problem.Detail
// @Failure 409 {object} problem.Detail "INTEREST_NOT_PENDING"
// @Router /adoption/interest/{interestId}/evaluate [put]
func evaluateInterestHandler(svc UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireRole(w, r, auth.RoleOrganization)
		if !ok {
			return
		}

		var req evaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			problem.Write(w, r, problem.Validation.WithDetail("invalid json"))
			return
		}
		decision, ok := ParseDecision(req.Status)
		if !ok {
			problem.Write(w, r, problem.Validation.WithDetail("status must be APPROVED or REJECTED"))
			return
		}

		i, err := svc.Evaluate(r.Context(), chi.URLParam(r, "interestId"), claims.UserID, decision)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, toInterestResponse(i))
	}
}

// listAdopterInterestsHandler godoc
// @Summary Mis intereses
// @Description Todos los intereses del adoptante logueado, con referencia parcial al animal.
// @Tags adoption
// @Produce json
// @Success 200 {array} adopterInterestResponse
// @Failure 401 {object} problem.Detail
// @Failure 403 {object} problem.Detail
// @Router /adoption/adopter [get]
func listAdopterInterestsHandler(svc UseCases, names PetNames) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireRole(w, r, auth.RoleAdopter)
		if !ok {
			return
		}

		items, err := svc.ListByAdopter(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]adopterInterestResponse, 0, len(items))
		for _, i := range items {
			ref := animalRef{ID: i.AnimalID}
			if names != nil {
				// Referencia parcial: si el animal ya no resuelve, va sin nombre.
				if name, err := names.NameOf(r.Context(), i.AnimalID); err == nil {
					ref.Name = name
				}
			}
			out = append(out, adopterInterestResponse{
				interestResponse: toInterestResponse(i),
				Animal:           ref,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func requireRole(w http.ResponseWriter, r *http.Request, role auth.Role) (auth.Claims, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		problem.Write(w, r, problem.Unauthorized)
		return auth.Claims{}, false
	}
	if !claims.Is(role) {
		problem.Write(w, r, problem.Forbidden.
			WithDetail("operation requires role "+string(role)).
			WithCode(CodeWrongRole))
		return auth.Claims{}, false
	}
	return claims, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		problem.Write(w, r, problem.Validation.WithDetail(err.Error()))
	case errors.Is(err, ErrNotFound):
		problem.Write(w, r, problem.NotFound.WithDetail(err.Error()))
	case errors.Is(err, ErrForbidden):
		problem.Write(w, r, problem.Forbidden.
			WithDetail("animal belongs to another organization").
			WithCode(CodeNotOwner))
	case errors.Is(err, ErrBadState):
		problem.Write(w, r, problem.Conflict.WithDetail(err.Error()).WithCode(CodeNotPending))
	case errors.Is(err, ErrPetUnavailable):
		problem.Write(w, r, problem.Conflict.WithDetail(err.Error()).WithCode(CodePetUnavailable))
	case errors.Is(err, ErrAlreadyInQueue):
		problem.Write(w, r, problem.Conflict.WithDetail(duplicateDetail).WithCode(CodeAlreadyInQueue))
	default:
		problem.Write(w, r, problem.Internal)
	}
}

func toInterestResponse(i Interest) interestResponse {
	return interestResponse{
		ID:           i.ID,
		AnimalID:     i.AnimalID,
		AdopterID:    i.AdopterID,
		AdopterName:  i.AdopterName,
		AdopterEmail: i.AdopterEmail,
		CreatedAt:    i.CreatedAt,
		Status:       i.Status,
		UpdatedAt:    i.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/adoption).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
