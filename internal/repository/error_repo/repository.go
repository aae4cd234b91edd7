package error_repo

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_client/internal/model"
	"slot_client/internal/repository"
)

const (
	table        = "error_logs"
	colSessionID = "session_id"
	colKind      = "error_type"
	colMessage   = "error_message"
	colStack     = "stack_trace"
	colContext   = "context"
	colCreatedAt = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewErrorLogRepository(dbc *pgxpool.Pool) repository.ErrorLogRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - пишет запись об ошибке клиента
func (r *repo) Create(ctx context.Context, record model.ErrorRecord) error {
	var contextJSON []byte
	if record.Context != nil {
		data, err := json.Marshal(record.Context)
		if err != nil {
			return err
		}
		contextJSON = data
	}

	// Формируем запрос
	query := psql.Insert(table).
		Columns(colSessionID, colKind, colMessage, colStack, colContext, colCreatedAt).
		Values(record.SessionID, record.Kind, record.Message, record.Stack, contextJSON, record.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
