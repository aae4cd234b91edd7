package book

import (
	"context"
	"log"

	"slot_client/internal/model"
)

// Process — строгая последовательная свертка списка событий: без
// переупорядочивания и без пропусков известных типов. Ошибка обработчика
// одного события логируется и не прерывает остальные; ошибка самого цикла
// (например, отмена контекста) уходит оркестратору как жесткий отказ раунда
func (s *serv) Process(ctx context.Context, events []model.BookEvent, betAmount float64) error {
	s.mu.Lock()
	if s.processing {
		s.mu.Unlock()
		return ErrAlreadyProcessing
	}
	s.processing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.processing = false
		s.mu.Unlock()
	}()

	log.Printf("[book] processing %d events", len(events))

	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.processEvent(ctx, event, betAmount); err != nil {
			// Мягкий отказ: состояние по этому событию не применяется,
			// книга продолжается
			log.Printf("[book] event %d (%s) failed: %v", event.Index, event.Type, err)
		}
	}

	log.Printf("[book] processing complete")
	return nil
}

func (s *serv) processEvent(ctx context.Context, event model.BookEvent, betAmount float64) error {
	switch event.Type {
	case model.BookEventReveal:
		return s.reveal(ctx, event)
	case model.BookEventWinInfo:
		return s.winInfo(ctx, event)
	case model.BookEventSetWin:
		s.em.Broadcast(model.EmitterEvent{Type: model.EmitterWinAmountUpdate, Amount: event.Amount})
		s.games.SetCurrentWin(event.Amount)
		return nil
	case model.BookEventSetTotalWin:
		s.em.Broadcast(model.EmitterEvent{Type: model.EmitterWinAmountUpdate, Amount: event.Amount})
		s.games.SetTotalWin(event.Amount)
		return nil
	case model.BookEventFinalWin:
		return s.finalWin(ctx, event, betAmount)
	case model.BookEventStartFreeSpin:
		return s.startFreeSpin(ctx, event)
	case model.BookEventUpdateFreeSpin:
		// Amount здесь — номер текущего фриспина, не деньги
		s.em.Broadcast(model.EmitterEvent{
			Type:    model.EmitterFreeSpinCounterUpdate,
			Current: int(event.Amount),
			Total:   event.Total,
		})
		s.games.SetFreeSpins(int(event.Amount), event.Total)
		return nil
	case model.BookEventEndFreeSpin:
		return s.endFreeSpin(ctx)
	default:
		// Неизвестный тип не прерывает книгу
		log.Printf("[book] no handler for event type %q, skipping", event.Type)
		return nil
	}
}

func (s *serv) reveal(ctx context.Context, event model.BookEvent) error {
	s.em.Broadcast(model.EmitterEvent{Type: model.EmitterBoardShow})

	if err := s.em.BroadcastAsync(ctx, model.EmitterEvent{
		Type:             model.EmitterBoardReveal,
		Board:            event.Board,
		PaddingPositions: event.PaddingPositions,
		Anticipation:     event.Anticipation,
	}); err != nil {
		return err
	}

	if err := s.em.BroadcastAsync(ctx, model.EmitterEvent{
		Type:  model.EmitterBoardSettle,
		Board: event.Board,
	}); err != nil {
		return err
	}

	s.games.SetBoard(event.Board)
	s.games.SetGameType(event.GameType)
	return nil
}

func (s *serv) winInfo(ctx context.Context, event model.BookEvent) error {
	if len(event.Wins) == 0 {
		return nil
	}
	return s.em.BroadcastAsync(ctx, model.EmitterEvent{
		Type: model.EmitterWinShow,
		Wins: event.Wins,
	})
}

func (s *serv) finalWin(ctx context.Context, event model.BookEvent, betAmount float64) error {
	s.em.Broadcast(model.EmitterEvent{Type: model.EmitterWinAmountUpdate, Amount: event.Amount})
	s.games.SetCurrentWin(event.Amount)

	if event.Amount > 0 {
		s.em.Broadcast(model.EmitterEvent{
			Type:  model.EmitterSoundOnce,
			Sound: WinSound(event.Amount, betAmount),
		})
	}

	// Держим паузу, чтобы итоговая сумма была видна
	s.delay(ctx, finalWinSettleDelay)
	return nil
}

func (s *serv) startFreeSpin(ctx context.Context, event model.BookEvent) error {
	if err := s.em.BroadcastAsync(ctx, model.EmitterEvent{
		Type:  model.EmitterFreeSpinIntroShow,
		Total: event.TotalFS,
	}); err != nil {
		return err
	}

	s.em.Broadcast(model.EmitterEvent{Type: model.EmitterFreeSpinCounterShow})
	s.em.Broadcast(model.EmitterEvent{
		Type:    model.EmitterFreeSpinCounterUpdate,
		Current: 0,
		Total:   event.TotalFS,
	})

	s.games.SetFreeSpins(0, event.TotalFS)
	s.games.SetGameType(model.GameTypeFree)

	s.em.Broadcast(model.EmitterEvent{
		Type:   model.EmitterSoundMusic,
		Sound:  model.SoundMusicFree,
		FadeMS: musicFadeMS,
	})
	return nil
}

func (s *serv) endFreeSpin(ctx context.Context) error {
	s.em.Broadcast(model.EmitterEvent{Type: model.EmitterFreeSpinCounterHide})

	s.delay(ctx, freeSpinOutroDelay)

	s.games.SetGameType(model.GameTypeBase)
	s.em.Broadcast(model.EmitterEvent{
		Type:   model.EmitterSoundMusic,
		Sound:  model.SoundMusicMain,
		FadeMS: musicFadeMS,
	})
	return nil
}

// WinSound выбирает звуковой сигнал по кратности выигрыша к ставке.
// Нижние границы уровней включительные: ровно 5x — medium, 25x — big,
// 100x — max
func WinSound(amount, betAmount float64) string {
	if betAmount <= 0 {
		return model.SoundWinSmall
	}

	multiplier := amount / betAmount
	switch {
	case multiplier >= 100:
		return model.SoundWinMax
	case multiplier >= 25:
		return model.SoundWinBig
	case multiplier >= 5:
		return model.SoundWinMedium
	default:
		return model.SoundWinSmall
	}
}
