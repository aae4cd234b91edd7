package middleware

import (
	"net/http"
	"strings"

	"slot_client/internal/config"
	"slot_client/pkg/token"
)

// Auth проверяет Bearer токен оператора на всех игровых маршрутах
func Auth(jwtConfig config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			if _, err := token.VerifyAccessToken(tokenStr, jwtConfig.AccessTokenSecretKey()); err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
