package service

import (
	"context"

	"slot_client/internal/model"
)

// BookService — интерпретатор книги: применяет события раунда к игровому
// состоянию и публикует события презентации строго в исходном порядке
type BookService interface {
	Process(ctx context.Context, events []model.BookEvent, betAmount float64) error
	IsProcessing() bool
}

// GameEngineService — оркестратор одного спина: ворота, ставка,
// интерпретация книги, закрытие раунда
type GameEngineService interface {
	Initialize(ctx context.Context) error
	Spin(ctx context.Context, betAmount float64, mode string)
	EndRound(ctx context.Context)
	IsProcessing() bool
}

// AuditService — fire-and-forget запись аудита. Ошибки записи логируются
// и никогда не блокируют игровой поток
type AuditService interface {
	SaveSession(ctx context.Context, record model.SessionRecord)
	SaveRound(ctx context.Context, round model.RoundRecord, session model.SessionRecord)
	LogError(ctx context.Context, record model.ErrorRecord)
	RoundHistory(ctx context.Context, sessionID string, limit int) ([]model.RoundRecord, error)
}

// AuthService — логин оператора шлюза
type AuthService interface {
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
}
