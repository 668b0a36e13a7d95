package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier identifies voters by the subject of a Google ID token.
type GoogleVerifier struct {
	clientID string
}

func NewVerifier(clientID string) ports.IdentityProvider {
	return &GoogleVerifier{clientID: clientID}
}

func (v *GoogleVerifier) Identify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthenticated
	}
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	return voterFromPayload(payload)
}

func voterFromPayload(payload *idtoken.Payload) (string, error) {
	if payload == nil || payload.Subject == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, errors.New("subject not found in claims"))
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, errors.New("email not verified"))
	}
	return payload.Subject, nil
}
