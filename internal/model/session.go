package model

import "time"

// SessionRecord — запись игровой сессии для аудита (upsert по SessionID)
type SessionRecord struct {
	SessionID string
	Balance   float64
	Currency  string
	UpdatedAt time.Time
}

// RoundRecord — запись завершенного раунда для аудита
type RoundRecord struct {
	SessionID        string
	RoundID          string
	BetAmount        float64
	WinAmount        float64
	PayoutMultiplier float64
	Symbols          [][]Symbol
	Events           []BookEvent
	Mode             string
	CreatedAt        time.Time
}

// ErrorRecord — запись ошибки клиента для аудита
type ErrorRecord struct {
	SessionID string
	Kind      string
	Message   string
	Stack     string
	Context   map[string]any
	CreatedAt time.Time
}
