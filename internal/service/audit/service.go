package audit

import (
	"context"
	"log"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"slot_client/internal/model"
	"slot_client/internal/repository"
	"slot_client/internal/service"
)

// Аудит — fire-and-forget: любой отказ хранилища логируется и не
// поднимается к игровому потоку
type serv struct {
	txManager   trm.Manager
	sessionRepo repository.SessionRepository
	roundRepo   repository.RoundRepository
	errorRepo   repository.ErrorLogRepository
}

func NewAuditService(
	txManager trm.Manager,
	sessionRepo repository.SessionRepository,
	roundRepo repository.RoundRepository,
	errorRepo repository.ErrorLogRepository,
) service.AuditService {
	return &serv{
		txManager:   txManager,
		sessionRepo: sessionRepo,
		roundRepo:   roundRepo,
		errorRepo:   errorRepo,
	}
}

func (s *serv) SaveSession(ctx context.Context, record model.SessionRecord) {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}
	if err := s.sessionRepo.Upsert(ctx, record); err != nil {
		log.Printf("[audit] save session %s: %v", record.SessionID, err)
	}
}

// SaveRound пишет запись раунда и свежий снимок баланса сессии одной
// транзакцией: история раундов не должна расходиться с балансом
func (s *serv) SaveRound(ctx context.Context, round model.RoundRecord, session model.SessionRecord) {
	if round.CreatedAt.IsZero() {
		round.CreatedAt = time.Now().UTC()
	}
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = round.CreatedAt
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.roundRepo.Create(ctx, round); err != nil {
			return err
		}
		return s.sessionRepo.Upsert(ctx, session)
	})
	if err != nil {
		log.Printf("[audit] save round %s: %v", round.RoundID, err)
	}
}

func (s *serv) LogError(ctx context.Context, record model.ErrorRecord) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if err := s.errorRepo.Create(ctx, record); err != nil {
		log.Printf("[audit] log error (%s): %v", record.Kind, err)
	}
}

func (s *serv) RoundHistory(ctx context.Context, sessionID string, limit int) ([]model.RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.roundRepo.ListBySession(ctx, sessionID, limit)
}
