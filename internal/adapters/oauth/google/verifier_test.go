package google

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"google.golang.org/api/idtoken"
)

func TestIdentify_RejectsMalformedTokens(t *testing.T) {
	v := NewVerifier("client-id")

	for _, token := range []string{"", "not-a-jwt"} {
		voterID, err := v.Identify(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		assert.Empty(t, voterID)
	}
}

func TestVoterFromPayload(t *testing.T) {
	voterID, err := voterFromPayload(&idtoken.Payload{
		Subject: "1234567890",
		Claims:  map[string]interface{}{"email_verified": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "1234567890", voterID)

	_, err = voterFromPayload(&idtoken.Payload{})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = voterFromPayload(&idtoken.Payload{
		Subject: "1234567890",
		Claims:  map[string]interface{}{"email_verified": false},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = voterFromPayload(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
