package env

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"slot_client/internal/config"
)

const (
	rgsURLEnvName       = "RGS_URL"
	rgsSessionIDEnvName = "RGS_SESSION_ID"
	rgsLanguageEnvName  = "RGS_LANGUAGE"
	rgsCurrencyEnvName  = "RGS_CURRENCY"
)

type rgsConfig struct {
	baseURL   string
	sessionID string
	language  string
	currency  string
}

func NewRGSConfig() (config.RGSConfig, error) {
	baseURL := os.Getenv(rgsURLEnvName)
	if len(baseURL) == 0 {
		return nil, errors.New("rgs url not found")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	// Обычно sessionID выдает платформа через параметры запуска;
	// без него генерируем собственный на время процесса
	sessionID := os.Getenv(rgsSessionIDEnvName)
	if len(sessionID) == 0 {
		sessionID = uuid.NewString()
		log.Printf("[config] rgs session id not set, generated %s", sessionID)
	}

	language := os.Getenv(rgsLanguageEnvName)
	if len(language) == 0 {
		language = "en"
	}

	currency := os.Getenv(rgsCurrencyEnvName)
	if len(currency) == 0 {
		currency = "USD"
	}

	return &rgsConfig{
		baseURL:   baseURL,
		sessionID: sessionID,
		language:  language,
		currency:  currency,
	}, nil
}

func (cfg *rgsConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *rgsConfig) SessionID() string {
	return cfg.sessionID
}

func (cfg *rgsConfig) Language() string {
	return cfg.language
}

func (cfg *rgsConfig) Currency() string {
	return cfg.currency
}
