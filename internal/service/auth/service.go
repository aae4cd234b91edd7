package auth

import (
	"context"
	"errors"

	"slot_client/internal/config"
	"slot_client/internal/model"
	"slot_client/internal/service"
	"slot_client/pkg/pass"
	"slot_client/pkg/token"
)

// ErrInvalidCredentials возвращается при неверном логине или пароле
var ErrInvalidCredentials = errors.New("invalid login or password")

type serv struct {
	jwtConfig config.JWTConfig
	opConfig  config.OperatorConfig
}

func NewAuthService(jwtConfig config.JWTConfig, opConfig config.OperatorConfig) service.AuthService {
	return &serv{
		jwtConfig: jwtConfig,
		opConfig:  opConfig,
	}
}

// Login проверяет учетные данные оператора и выдает access токен
func (s *serv) Login(_ context.Context, login, password string) (*model.AuthData, error) {
	if login != s.opConfig.Login() {
		return nil, ErrInvalidCredentials
	}
	if !pass.VerifyPassword(s.opConfig.PasswordHash(), password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := token.GenerateAccessToken(
		login,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{AccessToken: accessToken}, nil
}
