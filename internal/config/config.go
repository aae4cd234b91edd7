package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

// OperatorConfig — учетные данные оператора шлюза (пароль хранится
// только bcrypt-хэшем)
type OperatorConfig interface {
	Login() string
	PasswordHash() string
}

// RGSConfig — параметры подключения к удаленному игровому серверу.
// Читаются один раз на старте и не меняются в течение сессии
type RGSConfig interface {
	BaseURL() string
	SessionID() string
	Language() string
	Currency() string
}

// GameConfig — статическая конфигурация игры из config.yaml
type GameConfig interface {
	Name() string
	Reels() int
	Rows() int
	Symbols() []string
	DefaultSymbol() string
	BetLevels() []float64
	DefaultBetLevelIndex() int
}
