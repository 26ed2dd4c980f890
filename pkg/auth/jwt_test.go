package auth_test

import (
	"testing"
	"time"

	"go-talent-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	token, err := m.Generate("user-1", "talent@example.com")
	assert.NoError(t, err)

	sub, err := m.ExtractSubject(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, "talent@example.com", m.ExtractEmail(token))

	assert.True(t, m.IsValid(token, "user-1"))
	assert.False(t, m.IsValid(token, "someone-else"))
}

func TestExpiredTokenRejected(t *testing.T) {
	m := auth.NewTokenManager("secret", -time.Minute)

	token, err := m.Generate("user-1", "talent@example.com")
	assert.NoError(t, err)

	_, err = m.ExtractSubject(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.False(t, m.IsValid(token, "user-1"))
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate("user-1", "talent@example.com")
	assert.NoError(t, err)

	_, err = verifier.ExtractSubject(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	_, err := m.ExtractSubject("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
