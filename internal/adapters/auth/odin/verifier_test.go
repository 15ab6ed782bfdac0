package odin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-adoption/internal/ports/auth"
)

func newOdin(t *testing.T, h http.HandlerFunc) *Verifier {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k-1", Timeout: time.Second})
	require.NoError(t, err)
	return NewVerifier(c)
}

func TestVerifier_MapsRoleAlias(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, verifyPath, r.URL.Path)
		require.Equal(t, "k-1", r.Header.Get("X-Api-Key"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body verifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "tok", body.Token)

		_ = json.NewEncoder(w).Encode(verifyResponse{UserID: "org-9", Name: "Patinhas", Role: "ONG"})
	})

	claims, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "org-9", claims.UserID)
	require.Equal(t, auth.RoleOrganization, claims.Role)
}

func TestVerifier_Unauthorized(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := v.Verify(context.Background(), "tok")
	require.ErrorIs(t, err, ErrOdinUnauthorized)
}

func TestVerifier_RequiresRole(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(verifyResponse{UserID: "u-1"})
	})

	_, err := v.Verify(context.Background(), "tok")
	require.ErrorIs(t, err, ErrNoRole)
}

func TestClient_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	require.False(t, c.IsConfigured())

	_, err = NewVerifier(c).Verify(context.Background(), "tok")
	require.ErrorIs(t, err, ErrOdinNotConfigured)
}
