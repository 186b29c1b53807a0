package auth_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/auth"
	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-0123456789"

func TestTokenManager_IssueParse(t *testing.T) {
	m := auth.NewTokenManager(secret, time.Hour, "garden-shop")

	token, expiresAt, err := m.Issue(entities.Principal{UserID: 42, IsAdmin: true})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	p, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, entities.Principal{UserID: 42, IsAdmin: true}, p)
}

func TestTokenManager_Parse_Rejects(t *testing.T) {
	m := auth.NewTokenManager(secret, time.Hour, "garden-shop")

	expired := auth.NewTokenManager(secret, -time.Minute, "garden-shop")
	expiredToken, _, err := expired.Issue(entities.Principal{UserID: 1})
	require.NoError(t, err)

	foreign := auth.NewTokenManager("another-secret-0123456789", time.Hour, "garden-shop")
	foreignToken, _, err := foreign.Issue(entities.Principal{UserID: 1})
	require.NoError(t, err)

	otherIssuer := auth.NewTokenManager(secret, time.Hour, "someone-else")
	otherIssuerToken, _, err := otherIssuer.Issue(entities.Principal{UserID: 1})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: foreignToken},
		{name: "wrong issuer", token: otherIssuerToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Parse(tc.token)
			assert.ErrorIs(t, err, entities.ErrUnauthorized)
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NoError(t, auth.ComparePassword(hash, "s3cret"))
	assert.ErrorIs(t, auth.ComparePassword(hash, "wrong"), entities.ErrUnauthorized)
}
