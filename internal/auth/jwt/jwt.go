package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yacinedev/mystore-backend/internal/config"
)

const adminSubject = "admin"

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates the admin access token. There is a single
// shared admin identity, so claims carry only the subject and expiry. Tokens
// are deliberately not revoked on password change; they simply age out.
//
//go:generate mockgen -source=jwt.go -destination=mocks/mock.go -package=mockjwt
type TokenManager interface {
	GenerateToken() (string, error)
	ParseToken(tokenStr string) error
}

type tokenManager struct {
	jwtConfig config.JWT
}

func NewTokenManager(jwtConfig config.JWT) TokenManager {
	return &tokenManager{
		jwtConfig: jwtConfig,
	}
}

func (tm *tokenManager) GenerateToken() (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.jwtConfig.AccessTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(tm.jwtConfig.Secret))
}

func (tm *tokenManager) ParseToken(tokenStr string) error {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tm.jwtConfig.Secret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject != adminSubject {
		return ErrInvalidToken
	}

	return nil
}
