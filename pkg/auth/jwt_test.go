package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionAuth_TokenRoundTrip(t *testing.T) {
	a := NewSessionAuth("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := a.GenerateToken(accountID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := a.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, accountID, parsed)
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	a := NewSessionAuth("test-secret", -time.Minute)

	token, err := a.GenerateToken(uuid.New())
	assert.NoError(t, err)

	_, err = a.ParseToken(token)
	assert.Error(t, err)
}

func TestSessionAuth_WrongSecret(t *testing.T) {
	a := NewSessionAuth("test-secret", time.Hour)
	other := NewSessionAuth("other-secret", time.Hour)

	token, err := a.GenerateToken(uuid.New())
	assert.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestSessionAuth_GarbageToken(t *testing.T) {
	a := NewSessionAuth("test-secret", time.Hour)

	_, err := a.ParseToken("not-a-token")
	assert.Error(t, err)
}
