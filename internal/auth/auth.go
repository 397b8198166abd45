// Package auth carries the acting user through a context and turns bearer
// tokens into that user.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxkey string

const (
	userkey ctxkey = "autheduser"
)

type AuthedUser struct {
	ID string
}

func StoreUserInContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userkey, &AuthedUser{ID: id})
}

func UserFromContext(ctx context.Context) *AuthedUser {
	au, ok := ctx.Value(userkey).(*AuthedUser)
	if ok {
		return au
	}
	return nil
}

var (
	ErrNoToken      = errors.New("no bearer token")
	ErrInvalidToken = errors.New("could not parse token")
)

// MintToken signs an HS256 token whose subject is userID. A zero ttl means
// the token never expires.
func MintToken(secret []byte, userID string, now time.Time, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}
	claims := jwt.RegisteredClaims{
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return s, nil
}

// ParseToken verifies an HS256 token and returns its subject.
func ParseToken(secret []byte, raw string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// AuthenticateRequest reads the Authorization header and stores its user in
// the returned context.
func AuthenticateRequest(ctx context.Context, header http.Header, secret []byte) (context.Context, error) {
	authHeader := header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrNoToken
	}
	raw, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return nil, ErrNoToken
	}
	uid, err := ParseToken(secret, raw)
	if err != nil {
		return nil, err
	}
	return StoreUserInContext(ctx, uid), nil
}
