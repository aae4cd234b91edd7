package rgs

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotAuthenticated — попытка сделать ставку до успешной аутентификации.
// Это ошибка последовательности вызовов, а не сети
var ErrNotAuthenticated = errors.New("rgs client not authenticated")

// AuthError — фатальная ошибка установления сессии
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// BetRequestError — сетевой или серверный отказ во время размещения ставки.
// Payload хранит тело ответа сервера, если оно было получено
type BetRequestError struct {
	Status  int
	Payload json.RawMessage
	Err     error
}

func (e *BetRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bet request failed: %v", e.Err)
	}
	return fmt.Sprintf("bet request failed: status %d", e.Status)
}

func (e *BetRequestError) Unwrap() error {
	return e.Err
}
