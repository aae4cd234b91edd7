package book

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"slot_client/internal/emitter"
	"slot_client/internal/model"
	"slot_client/internal/state"
)

// testHarness собирает интерпретатор с подмененной задержкой и записью
// всех исходящих событий шины
type testHarness struct {
	serv   *serv
	em     *emitter.Emitter
	games  *state.GameStore
	mu     sync.Mutex
	events []model.EmitterEvent
	delays []time.Duration
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	h := &testHarness{
		em:    emitter.New(),
		games: state.NewGameStore(5, 3, "TEN"),
	}
	h.serv = &serv{
		em:    h.em,
		games: h.games,
		delay: func(_ context.Context, d time.Duration) {
			h.mu.Lock()
			h.delays = append(h.delays, d)
			h.mu.Unlock()
		},
	}

	record := func(_ context.Context, event model.EmitterEvent) error {
		h.mu.Lock()
		h.events = append(h.events, event)
		h.mu.Unlock()
		return nil
	}
	for _, eventType := range []model.EmitterEventType{
		model.EmitterBoardShow,
		model.EmitterBoardReveal,
		model.EmitterBoardSettle,
		model.EmitterWinShow,
		model.EmitterWinAmountUpdate,
		model.EmitterFreeSpinCounterShow,
		model.EmitterFreeSpinCounterHide,
		model.EmitterFreeSpinCounterUpdate,
		model.EmitterFreeSpinIntroShow,
		model.EmitterSoundOnce,
		model.EmitterSoundMusic,
	} {
		h.em.Subscribe(eventType, record)
	}
	return h
}

func (h *testHarness) eventTypes() []model.EmitterEventType {
	h.mu.Lock()
	defer h.mu.Unlock()
	types := make([]model.EmitterEventType, len(h.events))
	for i, e := range h.events {
		types[i] = e.Type
	}
	return types
}

func (h *testHarness) findEvent(eventType model.EmitterEventType) (model.EmitterEvent, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.events {
		if e.Type == eventType {
			return e, true
		}
	}
	return model.EmitterEvent{}, false
}

func testBoard() [][]model.Symbol {
	board := make([][]model.Symbol, 5)
	for reel := range board {
		board[reel] = make([]model.Symbol, 3)
		for row := range board[reel] {
			board[reel][row] = model.Symbol{Name: "KING"}
		}
	}
	board[0][0] = model.Symbol{Name: "WILD"}
	return board
}

func TestProcessAppliesEventsInOrder(t *testing.T) {
	h := newTestHarness(t)

	events := []model.BookEvent{
		{Index: 0, Type: model.BookEventReveal, Board: testBoard(), GameType: model.GameTypeBase},
		{Index: 1, Type: model.BookEventSetTotalWin, Amount: 5},
		{Index: 2, Type: model.BookEventFinalWin, Amount: 5},
	}

	if err := h.serv.Process(context.Background(), events, 1); err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []model.EmitterEventType{
		model.EmitterBoardShow,
		model.EmitterBoardReveal,
		model.EmitterBoardSettle,
		model.EmitterWinAmountUpdate, // setTotalWin
		model.EmitterWinAmountUpdate, // finalWin
		model.EmitterSoundOnce,
	}
	got := h.eventTypes()
	if len(got) != len(want) {
		t.Fatalf("event sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event[%d] = %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}

	snap := h.games.Snapshot()
	if snap.TotalWin != 5 || snap.CurrentWin != 5 {
		t.Errorf("wins = total %v / current %v, want 5/5", snap.TotalWin, snap.CurrentWin)
	}
	if snap.Board[0][0].Name != "WILD" {
		t.Errorf("board not applied: %q", snap.Board[0][0].Name)
	}
}

func TestProcessRejectsReentry(t *testing.T) {
	h := newTestHarness(t)

	h.serv.mu.Lock()
	h.serv.processing = true
	h.serv.mu.Unlock()

	err := h.serv.Process(context.Background(), []model.BookEvent{{Type: model.BookEventSetWin, Amount: 1}}, 1)
	if !errors.Is(err, ErrAlreadyProcessing) {
		t.Fatalf("err = %v, want ErrAlreadyProcessing", err)
	}
	if got := h.games.Snapshot().CurrentWin; got != 0 {
		t.Errorf("state mutated on rejected book: CurrentWin = %v", got)
	}
}

func TestProcessClearsProcessingFlag(t *testing.T) {
	h := newTestHarness(t)

	if err := h.serv.Process(context.Background(), nil, 1); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if h.serv.IsProcessing() {
		t.Error("IsProcessing = true after Process returned")
	}
}

func TestProcessSkipsUnknownEventType(t *testing.T) {
	h := newTestHarness(t)

	events := []model.BookEvent{
		{Index: 0, Type: "somethingNew"},
		{Index: 1, Type: model.BookEventSetWin, Amount: 3},
	}

	if err := h.serv.Process(context.Background(), events, 1); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := h.games.Snapshot().CurrentWin; got != 3 {
		t.Errorf("event after unknown type not applied: CurrentWin = %v", got)
	}
}

func TestProcessSoftFailsOnHandlerError(t *testing.T) {
	h := newTestHarness(t)

	h.em.Subscribe(model.EmitterBoardReveal, func(_ context.Context, _ model.EmitterEvent) error {
		return errors.New("presentation is broken")
	})

	events := []model.BookEvent{
		{Index: 0, Type: model.BookEventReveal, Board: testBoard()},
		{Index: 1, Type: model.BookEventSetWin, Amount: 2},
	}

	if err := h.serv.Process(context.Background(), events, 1); err != nil {
		t.Fatalf("Process must not propagate handler errors: %v", err)
	}

	snap := h.games.Snapshot()
	if snap.Board[0][0].Name == "WILD" {
		t.Error("board applied despite failed reveal")
	}
	if snap.CurrentWin != 2 {
		t.Errorf("book did not continue after failed event: CurrentWin = %v", snap.CurrentWin)
	}
}

func TestProcessStopsOnCancelledContext(t *testing.T) {
	h := newTestHarness(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.serv.Process(ctx, []model.BookEvent{{Type: model.BookEventSetWin, Amount: 1}}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got := h.games.Snapshot().CurrentWin; got != 0 {
		t.Errorf("state mutated after cancellation: CurrentWin = %v", got)
	}
}

func TestFinalWinHoldsSettleDelay(t *testing.T) {
	h := newTestHarness(t)

	events := []model.BookEvent{{Type: model.BookEventFinalWin, Amount: 5}}
	if err := h.serv.Process(context.Background(), events, 1); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(h.delays) != 1 || h.delays[0] != 1000*time.Millisecond {
		t.Errorf("delays = %v, want [1s]", h.delays)
	}
}

func TestFinalWinZeroAmountSkipsSound(t *testing.T) {
	h := newTestHarness(t)

	events := []model.BookEvent{{Type: model.BookEventFinalWin, Amount: 0}}
	if err := h.serv.Process(context.Background(), events, 1); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if _, ok := h.findEvent(model.EmitterSoundOnce); ok {
		t.Error("sound cue emitted for zero win")
	}
}

func TestFreeSpinLifecycle(t *testing.T) {
	h := newTestHarness(t)

	events := []model.BookEvent{
		{Type: model.BookEventStartFreeSpin, TotalFS: 8},
		{Type: model.BookEventUpdateFreeSpin, Amount: 3, Total: 8},
		{Type: model.BookEventEndFreeSpin},
	}

	if err := h.serv.Process(context.Background(), events, 1); err != nil {
		t.Fatalf("Process: %v", err)
	}

	snap := h.games.Snapshot()
	if snap.GameType != model.GameTypeBase {
		t.Errorf("GameType = %q after endFreeSpin, want base", snap.GameType)
	}
	if snap.FreeSpinCurrent != 3 || snap.FreeSpinTotal != 8 {
		t.Errorf("free spins = %d/%d, want 3/8", snap.FreeSpinCurrent, snap.FreeSpinTotal)
	}

	// музыка: фриспиновая при входе, основная при выходе, обе с фейдом
	var music []model.EmitterEvent
	h.mu.Lock()
	for _, e := range h.events {
		if e.Type == model.EmitterSoundMusic {
			music = append(music, e)
		}
	}
	h.mu.Unlock()
	if len(music) != 2 {
		t.Fatalf("music events = %d, want 2", len(music))
	}
	if music[0].Sound != model.SoundMusicFree || music[1].Sound != model.SoundMusicMain {
		t.Errorf("music order = %q, %q", music[0].Sound, music[1].Sound)
	}
	if music[0].FadeMS != 1000 || music[1].FadeMS != 1000 {
		t.Errorf("fade = %d, %d, want 1000", music[0].FadeMS, music[1].FadeMS)
	}

	if len(h.delays) != 1 || h.delays[0] != 500*time.Millisecond {
		t.Errorf("delays = %v, want [500ms]", h.delays)
	}
}

func TestWinInfoEmptyWinsIsNoop(t *testing.T) {
	h := newTestHarness(t)

	events := []model.BookEvent{{Type: model.BookEventWinInfo}}
	if err := h.serv.Process(context.Background(), events, 1); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if _, ok := h.findEvent(model.EmitterWinShow); ok {
		t.Error("winShow emitted for empty wins")
	}
}

func TestWinSound(t *testing.T) {
	tests := []struct {
		amount float64
		bet    float64
		want   string
	}{
		{0.5, 1, model.SoundWinSmall},
		{4.99, 1, model.SoundWinSmall},
		{5, 1, model.SoundWinMedium},
		{24.99, 1, model.SoundWinMedium},
		{25, 1, model.SoundWinBig},
		{99.99, 1, model.SoundWinBig},
		{100, 1, model.SoundWinMax},
		{1000, 1, model.SoundWinMax},
		{0.5, 0.1, model.SoundWinMedium}, // 5x от ставки 0.1
		{5, 0, model.SoundWinSmall},      // нулевая ставка не делит
	}

	for _, tt := range tests {
		if got := WinSound(tt.amount, tt.bet); got != tt.want {
			t.Errorf("WinSound(%v, %v) = %q, want %q", tt.amount, tt.bet, got, tt.want)
		}
	}
}
