package round_repo

import (
	"context"
	"encoding/json"
	"math"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"slot_client/internal/model"
	"slot_client/internal/repository"
)

const (
	table               = "game_rounds"
	colSessionID        = "session_id"
	colRoundID          = "round_id"
	colBetAmount        = "bet_amount"
	colWinAmount        = "win_amount"
	colPayoutMultiplier = "payout_multiplier"
	colSymbols          = "symbols"
	colEvents           = "book_events"
	colMode             = "mode"
	colCreatedAt        = "created_at"
)

const minorUnits = 1_000_000

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - пишет запись завершенного раунда. Доска и события книги
// сохраняются как jsonb
func (r *repo) Create(ctx context.Context, record model.RoundRecord) error {
	symbols, err := json.Marshal(record.Symbols)
	if err != nil {
		return err
	}
	events, err := json.Marshal(record.Events)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := psql.Insert(table).
		Columns(colSessionID, colRoundID, colBetAmount, colWinAmount,
			colPayoutMultiplier, colSymbols, colEvents, colMode, colCreatedAt).
		Values(record.SessionID, record.RoundID, toMinor(record.BetAmount), toMinor(record.WinAmount),
			record.PayoutMultiplier, symbols, events, record.Mode, record.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListBySession - возвращает последние раунды сессии, свежие первыми
func (r *repo) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.RoundRecord, error) {
	// Формируем запрос
	query := psql.Select(colSessionID, colRoundID, colBetAmount, colWinAmount,
		colPayoutMultiplier, colSymbols, colEvents, colMode, colCreatedAt).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.RoundRecord
	for rows.Next() {
		var record model.RoundRecord
		var bet, win int64
		var symbols, events []byte
		err = rows.Scan(&record.SessionID, &record.RoundID, &bet, &win,
			&record.PayoutMultiplier, &symbols, &events, &record.Mode, &record.CreatedAt)
		if err != nil {
			return nil, err
		}

		record.BetAmount = fromMinor(bet)
		record.WinAmount = fromMinor(win)
		if err = json.Unmarshal(symbols, &record.Symbols); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(events, &record.Events); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func toMinor(amount float64) int64 {
	return int64(math.Round(amount * minorUnits))
}

func fromMinor(amount int64) float64 {
	return float64(amount) / minorUnits
}
