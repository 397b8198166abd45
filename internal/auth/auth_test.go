package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123")

func TestUserContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, UserFromContext(ctx))

	ctx = StoreUserInContext(ctx, "u1")
	u := UserFromContext(ctx)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
}

func TestMintAndParseToken(t *testing.T) {
	tok, err := MintToken(secret, "u1", time.Now(), time.Hour)
	require.NoError(t, err)

	sub, err := ParseToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)

	_, err = ParseToken([]byte("another-secret-of-length"), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	tok, err := MintToken(secret, "u1", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsOtherAlgorithms(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(secret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateRequest(t *testing.T) {
	tok, err := MintToken(secret, "u1", time.Now(), 0)
	require.NoError(t, err)

	h := http.Header{}
	_, err = AuthenticateRequest(context.Background(), h, secret)
	assert.ErrorIs(t, err, ErrNoToken)

	h.Set("Authorization", "Basic abc")
	_, err = AuthenticateRequest(context.Background(), h, secret)
	assert.ErrorIs(t, err, ErrNoToken)

	h.Set("Authorization", "Bearer "+tok)
	ctx, err := AuthenticateRequest(context.Background(), h, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", UserFromContext(ctx).ID)
}
