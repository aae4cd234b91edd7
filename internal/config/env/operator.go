package env

import (
	"errors"
	"os"

	"slot_client/internal/config"
)

const (
	operatorLoginEnvName        = "OPERATOR_LOGIN"
	operatorPasswordHashEnvName = "OPERATOR_PASSWORD_HASH"
)

type operatorConfig struct {
	login        string
	passwordHash string
}

func NewOperatorConfig() (config.OperatorConfig, error) {
	login := os.Getenv(operatorLoginEnvName)
	if len(login) == 0 {
		return nil, errors.New("operator login not found")
	}

	passwordHash := os.Getenv(operatorPasswordHashEnvName)
	if len(passwordHash) == 0 {
		return nil, errors.New("operator password hash not found")
	}

	return &operatorConfig{
		login:        login,
		passwordHash: passwordHash,
	}, nil
}

func (cfg *operatorConfig) Login() string {
	return cfg.login
}

func (cfg *operatorConfig) PasswordHash() string {
	return cfg.passwordHash
}
