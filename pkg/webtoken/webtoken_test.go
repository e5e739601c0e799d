package webtoken_test

import (
	"testing"
	"time"

	"github.com/defff666/cryptodivebot/pkg/webtoken"
	"gotest.tools/assert"
)

var secret = []byte("test-secret")

func TestRoundTrip(t *testing.T) {
	token, err := webtoken.Create(secret, 42, time.Hour)
	assert.NilError(t, err)

	claims, err := webtoken.Validate(secret, token)
	assert.NilError(t, err)
	assert.Equal(t, claims.UserID, int64(42))
}

func TestWrongSecret(t *testing.T) {
	token, err := webtoken.Create(secret, 42, time.Hour)
	assert.NilError(t, err)

	_, err = webtoken.Validate([]byte("other-secret"), token)
	assert.Error(t, err, "invalid token")
}

func TestExpiredToken(t *testing.T) {
	token, err := webtoken.Create(secret, 42, -time.Minute)
	assert.NilError(t, err)

	_, err = webtoken.Validate(secret, token)
	assert.Error(t, err, "invalid token")
}

func TestGarbageToken(t *testing.T) {
	_, err := webtoken.Validate(secret, "not.a.token")
	assert.Error(t, err, "invalid token")
}
