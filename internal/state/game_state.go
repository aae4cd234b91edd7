package state

import (
	"sync"

	"slot_client/internal/model"
)

// GameSnapshot — срез игрового состояния: текущая доска и выигрыши
type GameSnapshot struct {
	Board           [][]model.Symbol
	GameType        model.GameType
	CurrentWin      float64
	TotalWin        float64
	FreeSpinCurrent int
	FreeSpinTotal   int
	IsSpinning      bool
}

// GameStore — единственный авторитетный экземпляр игрового состояния.
// Мутирует его только интерпретатор книги; остальные читают снимки
// и подписываются на уведомления
type GameStore struct {
	mu            sync.Mutex
	reels         int
	rows          int
	defaultSymbol string
	snap          GameSnapshot
	observers     map[int]func(GameSnapshot)
	nextID        int
}

func NewGameStore(reels, rows int, defaultSymbol string) *GameStore {
	s := &GameStore{
		reels:         reels,
		rows:          rows,
		defaultSymbol: defaultSymbol,
		observers:     make(map[int]func(GameSnapshot)),
	}
	s.snap = GameSnapshot{
		Board:    s.defaultBoard(),
		GameType: model.GameTypeBase,
	}
	return s
}

// Subscribe регистрирует наблюдателя; уведомление приходит синхронно
// после каждой мутации. Возвращает функцию отписки
func (s *GameStore) Subscribe(observer func(GameSnapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = observer
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *GameStore) Snapshot() GameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySnap()
}

func (s *GameStore) SetBoard(board [][]model.Symbol) {
	s.mutate(func() {
		s.snap.Board = copyBoard(board)
	})
}

func (s *GameStore) SetGameType(gameType model.GameType) {
	s.mutate(func() {
		s.snap.GameType = gameType
	})
}

func (s *GameStore) SetCurrentWin(amount float64) {
	s.mutate(func() {
		s.snap.CurrentWin = amount
	})
}

func (s *GameStore) SetTotalWin(amount float64) {
	s.mutate(func() {
		s.snap.TotalWin = amount
	})
}

func (s *GameStore) SetFreeSpins(current, total int) {
	s.mutate(func() {
		s.snap.FreeSpinCurrent = current
		s.snap.FreeSpinTotal = total
	})
}

func (s *GameStore) SetSpinning(spinning bool) {
	s.mutate(func() {
		s.snap.IsSpinning = spinning
	})
}

// ResetBoard возвращает доску к заполнению символом по умолчанию
func (s *GameStore) ResetBoard() {
	s.mutate(func() {
		s.snap.Board = s.defaultBoard()
	})
}

// Reset сбрасывает все состояние между раундами
func (s *GameStore) Reset() {
	s.mutate(func() {
		s.snap = GameSnapshot{
			Board:    s.defaultBoard(),
			GameType: model.GameTypeBase,
		}
	})
}

// mutate выполняет мутацию под замком и синхронно уведомляет наблюдателей
// уже без замка, чтобы наблюдатель мог читать снимки
func (s *GameStore) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.copySnap()
	observers := make([]func(GameSnapshot), 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
}

func (s *GameStore) copySnap() GameSnapshot {
	snap := s.snap
	snap.Board = copyBoard(s.snap.Board)
	return snap
}

func (s *GameStore) defaultBoard() [][]model.Symbol {
	board := make([][]model.Symbol, s.reels)
	for reel := range board {
		board[reel] = make([]model.Symbol, s.rows)
		for row := range board[reel] {
			board[reel][row] = model.Symbol{Name: s.defaultSymbol}
		}
	}
	return board
}

func copyBoard(board [][]model.Symbol) [][]model.Symbol {
	if board == nil {
		return nil
	}
	out := make([][]model.Symbol, len(board))
	for i, reel := range board {
		out[i] = make([]model.Symbol, len(reel))
		copy(out[i], reel)
	}
	return out
}
