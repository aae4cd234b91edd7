package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"slot_client/internal/model"
)

type fakeTxManager struct {
	calls int
	err   error
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

func (m *fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type fakeSessionRepo struct {
	upserts []model.SessionRecord
	err     error
}

func (r *fakeSessionRepo) Upsert(_ context.Context, record model.SessionRecord) error {
	if r.err != nil {
		return r.err
	}
	r.upserts = append(r.upserts, record)
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, _ string) (*model.SessionRecord, error) {
	return nil, nil
}

type fakeRoundRepo struct {
	creates []model.RoundRecord
	rounds  []model.RoundRecord
	err     error
}

func (r *fakeRoundRepo) Create(_ context.Context, record model.RoundRecord) error {
	if r.err != nil {
		return r.err
	}
	r.creates = append(r.creates, record)
	return nil
}

func (r *fakeRoundRepo) ListBySession(_ context.Context, _ string, limit int) ([]model.RoundRecord, error) {
	if limit < len(r.rounds) {
		return r.rounds[:limit], nil
	}
	return r.rounds, nil
}

type fakeErrorRepo struct {
	creates []model.ErrorRecord
	err     error
}

func (r *fakeErrorRepo) Create(_ context.Context, record model.ErrorRecord) error {
	if r.err != nil {
		return r.err
	}
	r.creates = append(r.creates, record)
	return nil
}

type auditFixture struct {
	serv     *serv
	tx       *fakeTxManager
	sessions *fakeSessionRepo
	rounds   *fakeRoundRepo
	errs     *fakeErrorRepo
}

func newAuditFixture() *auditFixture {
	f := &auditFixture{
		tx:       &fakeTxManager{},
		sessions: &fakeSessionRepo{},
		rounds:   &fakeRoundRepo{},
		errs:     &fakeErrorRepo{},
	}
	f.serv = &serv{
		txManager:   f.tx,
		sessionRepo: f.sessions,
		roundRepo:   f.rounds,
		errorRepo:   f.errs,
	}
	return f
}

func TestSaveRoundWritesBothRecordsInTransaction(t *testing.T) {
	f := newAuditFixture()

	f.serv.SaveRound(context.Background(),
		model.RoundRecord{SessionID: "s", RoundID: "7", BetAmount: 1, WinAmount: 5},
		model.SessionRecord{SessionID: "s", Balance: 14, Currency: "USD"})

	if f.tx.calls != 1 {
		t.Errorf("tx calls = %d, want 1", f.tx.calls)
	}
	if len(f.rounds.creates) != 1 || len(f.sessions.upserts) != 1 {
		t.Fatalf("rounds = %d, sessions = %d", len(f.rounds.creates), len(f.sessions.upserts))
	}
	if f.rounds.creates[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
	if !f.sessions.upserts[0].UpdatedAt.Equal(f.rounds.creates[0].CreatedAt) {
		t.Error("session snapshot not stamped with round time")
	}
}

func TestSaveRoundFailureIsSwallowed(t *testing.T) {
	f := newAuditFixture()
	f.rounds.err = errors.New("db down")

	// отказ хранилища не должен паниковать и не должен выходить наружу
	f.serv.SaveRound(context.Background(),
		model.RoundRecord{SessionID: "s", RoundID: "7"},
		model.SessionRecord{SessionID: "s"})

	if len(f.sessions.upserts) != 0 {
		t.Error("session written despite failed round insert")
	}
}

func TestSaveSessionStampsTime(t *testing.T) {
	f := newAuditFixture()

	f.serv.SaveSession(context.Background(), model.SessionRecord{SessionID: "s", Balance: 10})

	if len(f.sessions.upserts) != 1 || f.sessions.upserts[0].UpdatedAt.IsZero() {
		t.Errorf("upserts = %+v", f.sessions.upserts)
	}
}

func TestLogErrorStampsTime(t *testing.T) {
	f := newAuditFixture()

	f.serv.LogError(context.Background(), model.ErrorRecord{SessionID: "s", Kind: "SPIN_ERROR"})

	if len(f.errs.creates) != 1 || f.errs.creates[0].CreatedAt.IsZero() {
		t.Errorf("creates = %+v", f.errs.creates)
	}
}

func TestRoundHistoryDefaultsLimit(t *testing.T) {
	f := newAuditFixture()
	for i := 0; i < 15; i++ {
		f.rounds.rounds = append(f.rounds.rounds, model.RoundRecord{RoundID: "r"})
	}

	records, err := f.serv.RoundHistory(context.Background(), "s", 0)
	if err != nil {
		t.Fatalf("RoundHistory: %v", err)
	}
	if len(records) != 10 {
		t.Errorf("records = %d, want default limit 10", len(records))
	}
}
