package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the fixed lifetime of an issued token. Tokens are
// stateless and not revocable before expiry.
const TokenValidity = 365 * 24 * time.Hour

// TokenClaims is the identity decoded from a verified token.
type TokenClaims struct {
	UserID string
	Role   string
}

// GenerateToken signs a token carrying the user id and role.
func GenerateToken(secret, userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(TokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims. An
// optional "Bearer " scheme prefix is stripped, so both raw-token and
// Bearer-prefixed Authorization headers are accepted.
func ParseToken(secret, raw string) (*TokenClaims, error) {
	raw = strings.TrimPrefix(raw, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("invalid token payload")
	}
	role, _ := claims["role"].(string)

	return &TokenClaims{UserID: userID, Role: role}, nil
}
