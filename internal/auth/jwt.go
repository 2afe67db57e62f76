package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "scheme-payments"

// Claims identifies the API client that submitted a request.
type Claims struct {
	ClientID string
	Scopes   []string
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Scopes []string `json:"scopes,omitempty"`
}

var ErrMissingSubject = errors.New("token has no subject")

func GenerateToken(clientID string, scopes []string, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Scopes: scopes,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("GenerateToken: %w", err)
	}
	return signed, nil
}

func ValidateToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("ValidateToken: %w", err)
	}

	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("ValidateToken: invalid token claims")
	}
	if tc.Subject == "" {
		return nil, fmt.Errorf("ValidateToken: %w", ErrMissingSubject)
	}

	return &Claims{
		ClientID: tc.Subject,
		Scopes:   tc.Scopes,
	}, nil
}

func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
