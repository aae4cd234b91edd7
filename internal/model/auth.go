package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// OperatorClaims — claims access токена оператора шлюза
type OperatorClaims struct {
	jwt.RegisteredClaims
}

// AuthData — результат логина оператора
type AuthData struct {
	AccessToken string
}
