package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"slot_client/internal/model"
)

// GenerateAccessToken выдает access токен оператора шлюза
func GenerateAccessToken(operator string, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.OperatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// VerifyAccessToken проверяет подпись и срок действия access токена
func VerifyAccessToken(tokenStr string, secretKey []byte) (*model.OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := token.Claims.(*model.OperatorClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
