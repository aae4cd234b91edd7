package rgs

import (
	"encoding/json"

	"slot_client/internal/model"
)

// Денежные суммы в протоколе RGS передаются целыми числами,
// умноженными на миллион
const apiAmountMultiplier = 1_000_000

type walletBalance struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type walletConfig struct {
	GameID          string  `json:"gameID"`
	MinBet          int64   `json:"minBet"`
	MaxBet          int64   `json:"maxBet"`
	StepBet         int64   `json:"stepBet"`
	DefaultBetLevel int64   `json:"defaultBetLevel"`
	BetLevels       []int64 `json:"betLevels"`
	Jurisdiction    any     `json:"jurisdiction,omitempty"`
}

type walletRound struct {
	BetID            int               `json:"betID"`
	Amount           int64             `json:"amount"`
	Payout           int64             `json:"payout"`
	PayoutMultiplier float64           `json:"payoutMultiplier"`
	Active           bool              `json:"active"`
	State            []model.BookEvent `json:"state"`
	Mode             string            `json:"mode"`
}

type authenticateRequest struct {
	SessionID string `json:"sessionID"`
	Language  string `json:"language"`
}

type authenticateResponse struct {
	Balance *walletBalance  `json:"balance,omitempty"`
	Config  *walletConfig   `json:"config,omitempty"`
	Round   *walletRound    `json:"round,omitempty"`
	Token   string          `json:"token,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

type playRequest struct {
	SessionID string `json:"sessionID"`
	Currency  string `json:"currency"`
	Amount    int64  `json:"amount"`
	Mode      string `json:"mode"`
}

type playResponse struct {
	Balance *walletBalance  `json:"balance,omitempty"`
	Round   *walletRound    `json:"round,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

type endRoundRequest struct {
	SessionID string `json:"sessionID"`
}

type endRoundResponse struct {
	Error json.RawMessage `json:"error,omitempty"`
}

// AuthResult — результат аутентификации в единицах валюты
type AuthResult struct {
	Balance   float64
	Currency  string
	BetLevels []float64
	MinBet    float64
	MaxBet    float64
	Resumed   *PlayResult
}

// PlayResult — результат размещения ставки в единицах валюты
type PlayResult struct {
	Balance  float64
	Currency string
	RoundID  string
	Payout   float64
	Book     *model.Book
}
