package adoption

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/ports/auth"
)

// failingUseCases devuelve siempre el mismo error.
type failingUseCases struct{ err error }

func (f failingUseCases) Register(context.Context, RegisterInput) (Interest, error) {
	return Interest{}, f.err
}
func (f failingUseCases) ListQueue(context.Context, string, string) ([]Interest, error) {
	return nil, f.err
}
func (f failingUseCases) Evaluate(context.Context, string, string, Status) (Interest, error) {
	return Interest{}, f.err
}
func (f failingUseCases) ListByAdopter(context.Context, string) ([]Interest, error) {
	return nil, f.err
}

func serve(t *testing.T, uc UseCases, method, path, role, body string) int {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, uc, nil)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{UserID: "u-1", Role: auth.ParseRole(role)}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestHandlers_StoreFailureIs500NotNotFound(t *testing.T) {
	uc := failingUseCases{err: errStoreDown}

	require.Equal(t, http.StatusInternalServerError, serve(t, uc, http.MethodPost, "/adoption/animal/pet-1/match", "ADOPTER", ""))
	require.Equal(t, http.StatusInternalServerError, serve(t, uc, http.MethodGet, "/adoption/animal/pet-1/queue", "ORGANIZATION", ""))
	require.Equal(t, http.StatusInternalServerError, serve(t, uc, http.MethodPut, "/adoption/interest/i-1/evaluate", "ORGANIZATION", `{"status":"APPROVED"}`))
	require.Equal(t, http.StatusInternalServerError, serve(t, uc, http.MethodGet, "/adoption/adopter", "ADOPTER", ""))
}

func TestHandlers_NotFoundIs404(t *testing.T) {
	uc := failingUseCases{err: ErrNotFound}

	require.Equal(t, http.StatusNotFound, serve(t, uc, http.MethodPost, "/adoption/animal/pet-1/match", "ADOPTER", ""))
	require.Equal(t, http.StatusNotFound, serve(t, uc, http.MethodPut, "/adoption/interest/i-1/evaluate", "ORGANIZATION", `{"status":"REJEITADO"}`))
}
