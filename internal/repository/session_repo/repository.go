package session_repo

import (
	"context"
	"errors"
	"math"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_client/internal/model"
	"slot_client/internal/repository"
)

const (
	table        = "game_sessions"
	colSessionID = "session_id"
	colBalance   = "balance"
	colCurrency  = "currency"
	colUpdatedAt = "updated_at"
)

// Балансы лежат в БД целыми числами в микроединицах валюты,
// как и в протоколе RGS
const minorUnits = 1_000_000

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Upsert - создает запись сессии или обновляет баланс существующей
func (r *repo) Upsert(ctx context.Context, record model.SessionRecord) error {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colSessionID, colBalance, colCurrency, colUpdatedAt).
		Values(record.SessionID, toMinor(record.Balance), record.Currency, record.UpdatedAt).
		Suffix("ON CONFLICT (" + colSessionID + ") DO UPDATE SET " +
			colBalance + " = EXCLUDED." + colBalance + ", " +
			colCurrency + " = EXCLUDED." + colCurrency + ", " +
			colUpdatedAt + " = EXCLUDED." + colUpdatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// Get - возвращает запись сессии по ее ID, nil если записи нет
func (r *repo) Get(ctx context.Context, sessionID string) (*model.SessionRecord, error) {
	// Формируем запрос
	query := psql.Select(colSessionID, colBalance, colCurrency, colUpdatedAt).
		From(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var record model.SessionRecord
	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&record.SessionID, &balance, &record.Currency, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	record.Balance = fromMinor(balance)
	return &record, nil
}

func toMinor(amount float64) int64 {
	return int64(math.Round(amount * minorUnits))
}

func fromMinor(amount int64) float64 {
	return float64(amount) / minorUnits
}
