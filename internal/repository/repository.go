package repository

import (
	"context"

	"slot_client/internal/model"
)

type SessionRepository interface {
	Upsert(ctx context.Context, record model.SessionRecord) error
	Get(ctx context.Context, sessionID string) (*model.SessionRecord, error)
}

type RoundRepository interface {
	Create(ctx context.Context, record model.RoundRecord) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.RoundRecord, error)
}

type ErrorLogRepository interface {
	Create(ctx context.Context, record model.ErrorRecord) error
}
