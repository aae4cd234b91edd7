package book

import (
	"context"
	"errors"
	"sync"
	"time"

	"slot_client/internal/emitter"
	"slot_client/internal/service"
	"slot_client/internal/state"
)

// ErrAlreadyProcessing — попытка начать новую книгу, пока предыдущая
// еще обрабатывается. Состояние при этом не меняется
var ErrAlreadyProcessing = errors.New("book is already being processed")

const (
	// Пауза после finalWin, чтобы итоговый выигрыш успел показаться
	// до следующего перехода UI
	finalWinSettleDelay = 1000 * time.Millisecond
	// Пауза после скрытия счетчика фриспинов
	freeSpinOutroDelay = 500 * time.Millisecond
	// Длительность фейда при смене музыки
	musicFadeMS = 1000
)

type serv struct {
	em    *emitter.Emitter
	games *state.GameStore
	// delay подменяется в тестах, чтобы не ждать настоящие таймауты
	delay func(ctx context.Context, d time.Duration)

	mu         sync.Mutex
	processing bool
}

func NewBookService(em *emitter.Emitter, games *state.GameStore) service.BookService {
	return &serv{
		em:    em,
		games: games,
		delay: waitDelay,
	}
}

func (s *serv) IsProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

func waitDelay(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
