package game

type SpinRequest struct {
	Bet  float64 `json:"bet"`            // Ставка в единицах валюты; 0 — текущая ставка лестницы
	Mode string  `json:"mode,omitempty"` // Режим ставки, по умолчанию BASE
}

type GameStateResponse struct {
	Board           [][]string `json:"board"` // Имена символов, reels x rows
	GameType        string     `json:"game_type"`
	CurrentWin      float64    `json:"current_win"`
	TotalWin        float64    `json:"total_win"`
	FreeSpinCurrent int        `json:"free_spin_current"`
	FreeSpinTotal   int        `json:"free_spin_total"`
	IsSpinning      bool       `json:"is_spinning"`
}

type RoundStateResponse struct {
	Balance          float64   `json:"balance"`
	Currency         string    `json:"currency"`
	IsAuthenticated  bool      `json:"is_authenticated"`
	IsRoundActive    bool      `json:"is_round_active"`
	IsLoading        bool      `json:"is_loading"`
	Error            string    `json:"error,omitempty"`
	CurrentBetAmount float64   `json:"current_bet_amount"`
	BetLevels        []float64 `json:"bet_levels"`
	BetLevelIndex    int       `json:"bet_level_index"`
	CanSpin          bool      `json:"can_spin"`
}

type StateResponse struct {
	Game  GameStateResponse  `json:"game"`
	Round RoundStateResponse `json:"round"`
}

type HistoryRound struct {
	RoundID          string  `json:"round_id"`
	BetAmount        float64 `json:"bet_amount"`
	WinAmount        float64 `json:"win_amount"`
	PayoutMultiplier float64 `json:"payout_multiplier"`
	Mode             string  `json:"mode"`
	CreatedAt        string  `json:"created_at"`
}

type HistoryResponse struct {
	Rounds []HistoryRound `json:"rounds"`
}
