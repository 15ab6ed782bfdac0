package odin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/ports/auth"
)

var (
	ErrTokenEmpty = errors.New("token is empty")
	ErrNoRole     = errors.New("odin claims missing role")
)

// Verifier implementa auth.AuthVerifier usando Odin.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrOdinNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		// El middleware no corta; el handler decide 401/403.
		return auth.Claims{}, fmt.Errorf("odin verify failed: %w", err)
	}

	// Sin rol no hay operación de adopción posible.
	if claims.Role == "" {
		return auth.Claims{}, ErrNoRole
	}

	return claims, nil
}

var _ auth.AuthVerifier = (*Verifier)(nil)
