package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionExpiry извлекает срок действия из сессионного токена RGS.
// Подпись не проверяется: ключ известен только серверу, клиенту нужен
// лишь момент истечения, чтобы вовремя прекратить ставки
func SessionExpiry(tokenStr string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.RegisteredClaims{}
	_, _, err := parser.ParseUnverified(tokenStr, &claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse session token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("session token has no expiry")
	}

	return claims.ExpiresAt.Time, nil
}
