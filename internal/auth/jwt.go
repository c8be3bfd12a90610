// Package auth verifies bearer tokens issued by the institution's identity
// system and turns them into authorization principals.
package auth

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"archivo/internal/authz"
	"archivo/internal/config"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingUserID    = errors.New("missing user_id in claims")
	ErrMissingSecret    = errors.New("jwt secret is not configured")
)

// Claims carried by access tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	Superuser   bool     `json:"is_superuser,omitempty"`
	Oficina     string   `json:"oficina,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// Principal converts verified claims.
func (c *Claims) Principal() (authz.Principal, error) {
	id, err := strconv.ParseInt(c.UserID, 10, 64)
	if err != nil || id <= 0 {
		return authz.Principal{}, ErrMissingUserID
	}
	return authz.Principal{
		ID:          id,
		Username:    c.Username,
		Superuser:   c.Superuser,
		Oficina:     c.Oficina,
		Permissions: c.Permissions,
	}, nil
}

// Verifier validates HS256 tokens.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a verifier from the auth configuration. An empty issuer
// disables the issuer check; an empty secret is rejected.
func NewVerifier(cfg config.AuthConfig) (*Verifier, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return &Verifier{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer}, nil
}

// Verify parses and validates tokenString. A verifier without a key accepts
// nothing.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	if v == nil || len(v.secret) == 0 {
		return nil, ErrInvalidToken
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
