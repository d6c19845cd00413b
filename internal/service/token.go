package service

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by tokens the external identity
// provider issues. Only the subject and role are consumed here; token
// issuance lives outside this service.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ErrTokenInvalid covers every token parse or validation failure.
var ErrTokenInvalid = errors.New("token invalid")

// ParseToken verifies an HS256 token and returns its claims.
func ParseToken(secret, tokenString string) (*TokenClaims, error) {
	if strings.TrimSpace(secret) == "" || strings.TrimSpace(tokenString) == "" {
		return nil, ErrTokenInvalid
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &TokenClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
