package jwtauth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=middleware.go -destination=mocks/middleware_mock.go -package=mockjwt
type JwtManager interface {
	ParseToken(tokenStr string) error
}

// NewMiddleware guards admin endpoints: requests without a valid bearer token
// are rejected with 401.
func NewMiddleware(logger *zap.Logger, tokenManager JwtManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := tokenManager.ParseToken(headerParts[1]); err != nil {
				logger.Warn("error when parsing JWT token", zap.Error(err))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
