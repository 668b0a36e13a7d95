package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vncsmyrnk/awards/internal/core/domain"
)

// AuthService verifies HS256 access tokens issued by the identity provider.
// The token subject is the voter id.
type AuthService struct {
	jwtSecret []byte
	audience  string
}

func NewAuthService(jwtSecret []byte, audience string) *AuthService {
	return &AuthService{
		jwtSecret: jwtSecret,
		audience:  audience,
	}
}

func (s *AuthService) Identify(ctx context.Context, accessToken string) (string, error) {
	if accessToken == "" {
		return "", domain.ErrUnauthenticated
	}
	if len(s.jwtSecret) == 0 {
		return "", fmt.Errorf("%w: no signing secret configured", domain.ErrUnauthenticated)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	token, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, errors.New("token has no subject"))
	}

	return claims.Subject, nil
}
