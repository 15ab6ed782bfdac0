package pets

import (
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

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{id}", getPetHandler(svc))
		pr.Patch("/{id}/status", updateStatusHandler(svc))
	})

	// Animales de la organización logueada
	r.Get("/me/animals", listMyPetsHandler(svc))
}

type createPetRequest struct {
	Name        string   `json:"nome"`
	Species     string   `json:"especie"`
	Size        string   `json:"porte"`
	AgeYears    int      `json:"idade"`
	Breed       string   `json:"raca"`
	Description string   `json:"descricao"`
	ImageURL    string   `json:"imagemUrl"`
	PhotoURLs   []string `json:"fotos"`
}

type photoResponse struct {
	URL string `json:"url"`
}

type petResponse struct {
	ID          string          `json:"id"`
	OwnerOrgID  string          `json:"ownerOrgId"`
	Name        string          `json:"nome"`
	Species     string          `json:"especie"`
	Size        string          `json:"porte"`
	AgeYears    int             `json:"idade"`
	Breed       string          `json:"raca"`
	Description string          `json:"descricao"`
	ImageURL    string          `json:"imagemUrl,omitempty"`
	Photos      []photoResponse `json:"fotosAnimais"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// listPetsHandler godoc
// @Summary Listar animales
// @Description Catálogo público. Filtro opcional `status` (DISPONIVEL | ADOTADO).
// @Tags animals
// @Produce json
// @Param status query string false "DISPONIVEL | ADOTADO"
// @Success 200 {array} petResponse
// @Failure 400 {object} problem.Detail
// @Router /animals [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status Status
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			st, ok := ParseStatus(raw)
			if !ok {
				problem.Write(w, r, problem.Validation.WithDetail("status must be DISPONIVEL or ADOTADO"))
				return
			}
			status = st
		}

		items, err := svc.List(r.Context(), status)
		if err != nil {
			problem.Write(w, r, problem.Internal)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// createPetHandler godoc
// @Summary Publicar animal
// @Description Una organización publica un animal para adopción. Queda DISPONIVEL. Autenticación: `X-Debug-User-ID` + `X-Debug-User-Role` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param X-Debug-User-Role header string false "Solo en modo dev: ORGANIZATION"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createPetRequest true "Datos del animal"
// @Success 201 {object} petResponse
// @Failure 400 {object} problem.Detail
// @Failure 401 {object} problem.Detail
// @Failure 403 {object} problem.Detail
// @Router /animals [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			problem.Write(w, r, problem.Unauthorized)
			return
		}
		if !claims.Is(auth.RoleOrganization) {
			problem.Write(w, r, problem.Forbidden.WithDetail("only organizations can publish animals"))
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			problem.Write(w, r, problem.Validation.WithDetail("invalid json"))
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Species:     req.Species,
			Size:        req.Size,
			AgeYears:    req.AgeYears,
			Breed:       req.Breed,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			PhotoURLs:   req.PhotoURLs,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Detalle de un animal
// @Tags animals
// @Produce json
// @Param id path string true "ID del animal"
// @Success 200 {object} petResponse
// @Failure 404 {object} problem.Detail
// @Router /animals/{id} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de un animal
// @Description Solo la organización dueña. Un animal ADOTADO deja de aceptar interesados.
// @Tags animals
// @Accept json
// @Produce json
// @Param id path string true "ID del animal"
// @Param payload body updateStatusRequest true "DISPONIVEL | ADOTADO"
// @Success 200 {object} petResponse
// @Failure 400 {object} problem.Detail
// @Failure 401 {object} problem.Detail
// @Failure 403 {object} problem.Detail
// @Failure 404 {object} problem.Detail
// @Router /animals/{id}/status [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			problem.Write(w, r, problem.Unauthorized)
			return
		}
		if !claims.Is(auth.RoleOrganization) {
			problem.Write(w, r, problem.Forbidden)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			problem.Write(w, r, problem.Validation.WithDetail("invalid json"))
			return
		}
		status, ok := ParseStatus(req.Status)
		if !ok {
			problem.Write(w, r, problem.Validation.WithDetail("status must be DISPONIVEL or ADOTADO"))
			return
		}

		p, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), claims.UserID, status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// listMyPetsHandler godoc
// @Summary Animales de mi organización
// @Tags animals
// @Produce json
// @Success 200 {array} petResponse
// @Failure 401 {object} problem.Detail
// @Failure 403 {object} problem.Detail
// @Router /me/animals [get]
func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			problem.Write(w, r, problem.Unauthorized)
			return
		}
		if !claims.Is(auth.RoleOrganization) {
			problem.Write(w, r, problem.Forbidden)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		problem.Write(w, r, problem.Validation.WithDetail(err.Error()))
	case errors.Is(err, ErrNotFound):
		problem.Write(w, r, problem.NotFound.WithDetail("pet not found"))
	case errors.Is(err, ErrForbidden):
		problem.Write(w, r, problem.Forbidden.WithDetail("animal belongs to another organization"))
	default:
		problem.Write(w, r, problem.Internal)
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

func toPetResponse(p Pet) petResponse {
	photos := make([]photoResponse, 0, len(p.Photos))
	for _, ph := range p.Photos {
		photos = append(photos, photoResponse{URL: ph.URL})
	}
	return petResponse{
		ID:          p.ID,
		OwnerOrgID:  p.OwnerOrgID,
		Name:        p.Name,
		Species:     p.Species,
		Size:        string(p.Size),
		AgeYears:    p.AgeYears,
		Breed:       p.Breed,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Photos:      photos,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/adoption)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
