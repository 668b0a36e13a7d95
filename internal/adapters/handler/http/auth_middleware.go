package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type contextKey string

const VoterIDKey contextKey = "voter_id"

const accessTokenCookie = "access_token"

type AuthMiddleware struct {
	identity ports.IdentityProvider
	logger   *slog.Logger
}

func NewAuthMiddleware(identity ports.IdentityProvider, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		identity: identity,
		logger:   logger,
	}
}

// Authenticate resolves the caller from the bearer token or the access_token
// cookie and stores the voter id in the request context. Requests without a
// valid token pass through anonymously; handlers decide whether that is fatal.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := accessToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		voterID, err := m.identity.Identify(r.Context(), token)
		if err != nil {
			m.logger.DebugContext(r.Context(), "access token rejected", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), VoterIDKey, voterID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VoterID returns the authenticated voter stored by Authenticate.
func VoterID(ctx context.Context) (string, bool) {
	voterID, ok := ctx.Value(VoterIDKey).(string)
	return voterID, ok && voterID != ""
}

func accessToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	cookie, err := r.Cookie(accessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
