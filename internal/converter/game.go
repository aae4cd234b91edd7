package converter

import (
	"time"

	dto "slot_client/internal/api/dto/game"
	"slot_client/internal/model"
	"slot_client/internal/state"
)

func ToStateResponse(game state.GameSnapshot, round state.RoundSnapshot) dto.StateResponse {
	return dto.StateResponse{
		Game:  toGameStateResponse(game),
		Round: toRoundStateResponse(round),
	}
}

func toGameStateResponse(snap state.GameSnapshot) dto.GameStateResponse {
	board := make([][]string, len(snap.Board))
	for i, reel := range snap.Board {
		board[i] = make([]string, len(reel))
		for j, symbol := range reel {
			board[i][j] = symbol.Name
		}
	}

	return dto.GameStateResponse{
		Board:           board,
		GameType:        string(snap.GameType),
		CurrentWin:      snap.CurrentWin,
		TotalWin:        snap.TotalWin,
		FreeSpinCurrent: snap.FreeSpinCurrent,
		FreeSpinTotal:   snap.FreeSpinTotal,
		IsSpinning:      snap.IsSpinning,
	}
}

func toRoundStateResponse(snap state.RoundSnapshot) dto.RoundStateResponse {
	return dto.RoundStateResponse{
		Balance:          snap.Balance,
		Currency:         snap.Currency,
		IsAuthenticated:  snap.IsAuthenticated,
		IsRoundActive:    snap.IsRoundActive,
		IsLoading:        snap.IsLoading,
		Error:            snap.Err,
		CurrentBetAmount: snap.CurrentBetAmount,
		BetLevels:        snap.BetLevels,
		BetLevelIndex:    snap.BetLevelIndex,
		CanSpin:          snap.CanSpin,
	}
}

func ToHistoryResponse(records []model.RoundRecord) dto.HistoryResponse {
	rounds := make([]dto.HistoryRound, 0, len(records))
	for _, record := range records {
		rounds = append(rounds, dto.HistoryRound{
			RoundID:          record.RoundID,
			BetAmount:        record.BetAmount,
			WinAmount:        record.WinAmount,
			PayoutMultiplier: record.PayoutMultiplier,
			Mode:             record.Mode,
			CreatedAt:        record.CreatedAt.Format(time.RFC3339),
		})
	}

	return dto.HistoryResponse{Rounds: rounds}
}
