package odin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-care-insights/internal/platform/logger"
	"pet-care-insights/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier adapta Client a auth.AuthVerifier. AuthContext descarta el error,
// así que los rechazos quedan registrados acá.
type Verifier struct {
	client *Client
	log    logger.Logger
}

// NewVerifier: log nil descarta los rechazos.
func NewVerifier(client *Client, log logger.Logger) *Verifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Verifier{client: client, log: log}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			v.log.Debug("token rejected", nil)
		} else {
			v.log.Warn("odin verify failed", map[string]any{"error": err})
		}
		return auth.Claims{}, fmt.Errorf("odin verify failed: %w", err)
	}
	return claims, nil
}
