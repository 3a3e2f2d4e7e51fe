// Package auth is the identity context for the marketplace: it issues and
// verifies the tokens that turn an HTTP request into a verified actor. The
// domain services never touch credentials; they only ever see an Identity.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	model "auction-house/internal/models"
)

// Identity is a verified actor: who is calling and whether they hold the
// admin role.
type Identity struct {
	ID    string
	Admin bool
}

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies HS256 bearer tokens
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// token lifetime.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Generate signs a token carrying the user's id and admin flag
func (s *TokenService) Generate(user model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"admin":   user.Admin,
		"exp":     now.Add(s.expiry).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a signed token and returns the Identity it carries
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("auth: %w", ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("auth: %w", ErrInvalidToken)
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return Identity{}, fmt.Errorf("auth: %w - missing user_id claim", ErrInvalidToken)
	}
	admin, _ := claims["admin"].(bool)

	return Identity{ID: id, Admin: admin}, nil
}
