package engine

import (
	"context"
	"log"

	"slot_client/internal/model"
)

// Spin — один проход машины состояний раунда: ворота, ставка, интерпретация
// книги, закрытие раунда. Любой отказ после размещения ставки не выходит
// за границу Spin: раунд безопасно бросается, флаги сбрасываются, баланс
// остается последним подтвержденным
func (s *serv) Spin(ctx context.Context, betAmount float64, mode string) {
	if s.book.IsProcessing() {
		log.Printf("[engine] already processing a book, spin ignored")
		return
	}

	// Проверка условий и захват раунда — один атомарный шаг: иначе два
	// конкурентных вызова прошли бы ворота и поставили бы дважды.
	// Ставка дальше идет именно та, по которой прошла проверка баланса
	betAmount, ok := s.rounds.TryBeginRound(betAmount)
	if !ok {
		log.Printf("[engine] cannot spin, conditions not met")
		return
	}

	if mode == "" {
		mode = "BASE"
	}
	log.Printf("[engine] starting spin, bet %.2f, mode %s", betAmount, mode)

	s.games.SetSpinning(true)

	s.em.Broadcast(model.EmitterEvent{Type: model.EmitterBoardSpin})
	s.em.Broadcast(model.EmitterEvent{Type: model.EmitterSoundOnce, Sound: model.SoundSpin})

	if err := s.playRound(ctx, betAmount, mode); err != nil {
		log.Printf("[engine] spin failed: %v", err)
		s.rounds.SetError(err.Error())
		s.audit.LogError(ctx, model.ErrorRecord{
			SessionID: s.sessionID,
			Kind:      "SPIN_ERROR",
			Message:   err.Error(),
			Context:   map[string]any{"betAmount": betAmount, "mode": mode},
		})

		s.rounds.SetLoading(false)
		s.games.SetSpinning(false)
		s.rounds.SetRoundActive(false)
		return
	}

	s.rounds.SetLoading(false)
	s.games.SetSpinning(false)

	s.EndRound(ctx)
}

func (s *serv) playRound(ctx context.Context, betAmount float64, mode string) error {
	resp, err := s.rgsClient.Play(ctx, betAmount, mode)
	if err != nil {
		return err
	}

	s.rounds.SetBalance(resp.Balance, resp.Currency)

	if resp.Book == nil || len(resp.Book.Events) == 0 {
		return nil
	}

	if err := s.book.Process(ctx, resp.Book.Events, betAmount); err != nil {
		return err
	}

	// Раунд и снимок баланса пишутся одной записью аудита
	s.audit.SaveRound(ctx,
		model.RoundRecord{
			SessionID:        s.sessionID,
			RoundID:          resp.RoundID,
			BetAmount:        betAmount,
			WinAmount:        resp.Payout,
			PayoutMultiplier: resp.Book.PayoutMultiplier,
			Symbols:          s.games.Snapshot().Board,
			Events:           resp.Book.Events,
			Mode:             mode,
		},
		model.SessionRecord{
			SessionID: s.sessionID,
			Balance:   resp.Balance,
			Currency:  resp.Currency,
		})

	return nil
}

// EndRound уведомляет сервер о закрытии раунда. Сетевой отказ здесь только
// логируется: флаг активного раунда сбрасывается в любом случае, иначе
// ворота спина остались бы закрытыми навсегда
func (s *serv) EndRound(ctx context.Context) {
	if err := s.rgsClient.EndRound(ctx); err != nil {
		log.Printf("[engine] failed to end round: %v", err)
	}

	s.rounds.SetRoundActive(false)
}
