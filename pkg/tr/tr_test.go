package tr

import (
	"context"
	"testing"

	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct {
	pgx.Tx
}

type stubPool struct{}

func (stubPool) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (stubPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (stubPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func TestTxFromCtx(t *testing.T) {
	tx := stubTx{}
	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

	got, err := TxFromCtx(ctx)
	require.NoError(t, err)
	assert.Equal(t, pgx.Tx(tx), got)
}

func TestTxFromCtxMissing(t *testing.T) {
	_, err := TxFromCtx(context.Background())
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestQuerierFromCtxPrefersTx(t *testing.T) {
	tx := stubTx{}
	pool := stubPool{}
	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

	assert.Equal(t, Querier(tx), QuerierFromCtx(ctx, pool))
}

func TestQuerierFromCtxFallsBackToPool(t *testing.T) {
	pool := stubPool{}

	assert.Equal(t, Querier(pool), QuerierFromCtx(context.Background(), pool))
}
