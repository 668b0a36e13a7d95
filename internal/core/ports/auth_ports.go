package ports

import "context"

// IdentityProvider resolves the voter behind an access token.
type IdentityProvider interface {
	Identify(ctx context.Context, accessToken string) (string, error)
}
