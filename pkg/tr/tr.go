// Package tr передаёт открытую транзакцию репозиториям через контекст.
package tr

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier — общий интерфейс выполнения запросов, который реализуют
// и pgx.Tx, и pgxpool.Pool.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxFromCtx возвращает pgx.Tx, положенную в контекст usecase-слоем.
// Вызов вне транзакции — ошибка программирования, а не среды.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value("tx").(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}

	return tx, nil
}

// QuerierFromCtx возвращает транзакцию из контекста, если она открыта,
// иначе fallback. Чтения, попадающие и в транзакционные, и в обычные
// пути, обязаны идти через этот выбор, чтобы не читать мимо транзакции.
func QuerierFromCtx(ctx context.Context, fallback Querier) Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}

	return fallback
}
