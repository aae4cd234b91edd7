package engine

import (
	"context"
	"log"

	"slot_client/internal/model"
)

// Initialize устанавливает сессию с RGS и готовит состояние к первому спину.
// Отказ аутентификации фатален для сессии: ошибка сохраняется в состоянии
// раунда и пробрасывается вызывающему, чтобы хост мог показать retry
func (s *serv) Initialize(ctx context.Context) error {
	log.Printf("[engine] initializing")

	auth, err := s.rgsClient.Authenticate(ctx)
	if err != nil {
		log.Printf("[engine] initialization failed: %v", err)
		s.rounds.SetError(err.Error())
		s.audit.LogError(ctx, model.ErrorRecord{
			SessionID: s.sessionID,
			Kind:      "INITIALIZATION_ERROR",
			Message:   err.Error(),
		})
		return err
	}

	s.rounds.SetBalance(auth.Balance, auth.Currency)
	if len(auth.BetLevels) > 0 {
		s.rounds.SetBetLevels(auth.BetLevels, s.rounds.Snapshot().BetLevelIndex)
	}
	s.rounds.SetAuthenticated(true)

	s.audit.SaveSession(ctx, model.SessionRecord{
		SessionID: s.sessionID,
		Balance:   auth.Balance,
		Currency:  auth.Currency,
	})

	// Сервер мог вернуть недоигранный раунд с прошлой сессии — тогда
	// сразу закрываем его, чтобы не блокировать ворота спина
	if auth.Resumed != nil {
		log.Printf("[engine] unfinished round %s resumed, closing", auth.Resumed.RoundID)
		s.EndRound(ctx)
	}

	log.Printf("[engine] initialization complete")
	return nil
}
