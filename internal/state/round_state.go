package state

import "sync"

// RoundSnapshot — срез состояния раунда и баланса. CanSpin всегда
// вычисляется заново при снятии снимка и нигде не хранится
type RoundSnapshot struct {
	Balance          float64
	Currency         string
	IsAuthenticated  bool
	IsRoundActive    bool
	IsLoading        bool
	Err              string
	CurrentBetAmount float64
	BetLevels        []float64
	BetLevelIndex    int
	CanSpin          bool
}

// RoundStore — единственный авторитетный экземпляр состояния раунда.
// В установившемся режиме его мутирует оркестратор; асинхронные уведомления
// о балансе от протокольного слоя перезаписывают значения целиком
// (last-write-wins)
type RoundStore struct {
	mu        sync.Mutex
	snap      RoundSnapshot
	betLevels []float64
	observers map[int]func(RoundSnapshot)
	nextID    int
}

func NewRoundStore(betLevels []float64, defaultIndex int, currency string) *RoundStore {
	if len(betLevels) == 0 {
		betLevels = []float64{1}
	}
	if defaultIndex < 0 || defaultIndex >= len(betLevels) {
		defaultIndex = 0
	}
	s := &RoundStore{
		betLevels: betLevels,
		observers: make(map[int]func(RoundSnapshot)),
	}
	s.snap = RoundSnapshot{
		Currency:         currency,
		CurrentBetAmount: betLevels[defaultIndex],
		BetLevelIndex:    defaultIndex,
	}
	return s
}

// Subscribe регистрирует наблюдателя; уведомление приходит синхронно
// после каждой мутации. Возвращает функцию отписки
func (s *RoundStore) Subscribe(observer func(RoundSnapshot)) func() {
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

func (s *RoundStore) Snapshot() RoundSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySnap()
}

// CanSpin — ворота спина: аутентифицирован, раунд не активен, загрузки нет
// и баланса хватает на текущую ставку
func (s *RoundStore) CanSpin() bool {
	return s.Snapshot().CanSpin
}

// TryBeginRound — атомарные ворота спина: проверка условий и захват
// раунда происходят под одним замком, поэтому из конкурентных вызовов
// проходит ровно один. Ставка betAmount проверяется против баланса;
// ноль означает текущую ставку лестницы. При успехе выставляются
// IsRoundActive и IsLoading, ошибка прошлого раунда сбрасывается.
// Возвращает ставку, по которой прошла проверка
func (s *RoundStore) TryBeginRound(betAmount float64) (float64, bool) {
	s.mu.Lock()
	if betAmount <= 0 {
		betAmount = s.snap.CurrentBetAmount
	}
	ok := s.snap.IsAuthenticated &&
		!s.snap.IsRoundActive &&
		!s.snap.IsLoading &&
		s.snap.Balance >= betAmount
	if !ok {
		s.mu.Unlock()
		return 0, false
	}

	s.snap.CurrentBetAmount = betAmount
	s.snap.IsRoundActive = true
	s.snap.IsLoading = true
	s.snap.Err = ""

	snap := s.copySnap()
	observers := make([]func(RoundSnapshot), 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
	return betAmount, true
}

func (s *RoundStore) SetBalance(amount float64, currency string) {
	s.mutate(func() {
		s.snap.Balance = amount
		if currency != "" {
			s.snap.Currency = currency
		}
	})
}

func (s *RoundStore) SetAuthenticated(authenticated bool) {
	s.mutate(func() {
		s.snap.IsAuthenticated = authenticated
	})
}

func (s *RoundStore) SetRoundActive(active bool) {
	s.mutate(func() {
		s.snap.IsRoundActive = active
	})
}

func (s *RoundStore) SetLoading(loading bool) {
	s.mutate(func() {
		s.snap.IsLoading = loading
	})
}

func (s *RoundStore) SetError(message string) {
	s.mutate(func() {
		s.snap.Err = message
	})
}

// SetBetLevels заменяет лестницу ставок значениями из конфигурации RGS.
// Текущая ставка прижимается к ближайшему допустимому уровню
func (s *RoundStore) SetBetLevels(levels []float64, defaultIndex int) {
	if len(levels) == 0 {
		return
	}
	if defaultIndex < 0 || defaultIndex >= len(levels) {
		defaultIndex = 0
	}
	s.mutate(func() {
		s.betLevels = levels
		s.snap.BetLevelIndex = defaultIndex
		s.snap.CurrentBetAmount = levels[defaultIndex]
	})
}

// SetBetAmount задает произвольную ставку вне лестницы уровней
func (s *RoundStore) SetBetAmount(amount float64) {
	if amount <= 0 {
		return
	}
	s.mutate(func() {
		s.snap.CurrentBetAmount = amount
	})
}

// IncreaseBet поднимает ставку на следующий уровень лестницы
func (s *RoundStore) IncreaseBet() {
	s.mutate(func() {
		if s.snap.BetLevelIndex < len(s.betLevels)-1 {
			s.snap.BetLevelIndex++
			s.snap.CurrentBetAmount = s.betLevels[s.snap.BetLevelIndex]
		}
	})
}

// DecreaseBet опускает ставку на предыдущий уровень лестницы
func (s *RoundStore) DecreaseBet() {
	s.mutate(func() {
		if s.snap.BetLevelIndex > 0 {
			s.snap.BetLevelIndex--
			s.snap.CurrentBetAmount = s.betLevels[s.snap.BetLevelIndex]
		}
	})
}

func (s *RoundStore) CanIncreaseBet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.BetLevelIndex < len(s.betLevels)-1
}

func (s *RoundStore) CanDecreaseBet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.BetLevelIndex > 0
}

func (s *RoundStore) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.copySnap()
	observers := make([]func(RoundSnapshot), 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
}

func (s *RoundStore) copySnap() RoundSnapshot {
	snap := s.snap
	snap.BetLevels = make([]float64, len(s.betLevels))
	copy(snap.BetLevels, s.betLevels)
	snap.CanSpin = snap.IsAuthenticated &&
		!snap.IsRoundActive &&
		!snap.IsLoading &&
		snap.Balance >= snap.CurrentBetAmount
	return snap
}
