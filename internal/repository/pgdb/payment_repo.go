package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// PaymentRepo реализует репозиторий платежей поверх PostgreSQL. Все методы
// работают через транзакцию из контекста, когда она открыта: подтверждение
// оплаты пишет платёж и статус заказа атомарно.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

func (p *PaymentRepo) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (order_id, method, status, transaction_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	result := *payment
	if err := tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, query,
		payment.OrderID, payment.Method, payment.Status, payment.TransactionID,
	).Scan(&result.ID); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: %w", whereami.WhereAmI(), e.ErrPaymentExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &result, nil
}

func (p *PaymentRepo) GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	query := `
		SELECT id, order_id, method, status, transaction_id, paid_at
		FROM payments
		WHERE order_id = $1;
	`

	result := &domain.Payment{}
	if err := tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, query, orderID).Scan(
		&result.ID, &result.OrderID, &result.Method, &result.Status,
		&result.TransactionID, &result.PaidAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// MarkPaid переводит платёж в оплаченное состояние ровно один раз.
func (p *PaymentRepo) MarkPaid(ctx context.Context, orderID int64, transactionID string) error {
	query := `
		UPDATE payments
		SET status = 'paid', transaction_id = $2, paid_at = NOW()
		WHERE order_id = $1 AND status <> 'paid';
	`

	result, err := tr.QuerierFromCtx(ctx, p.pool).Exec(ctx, query, orderID, transactionID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrPaymentExists)
	}

	return nil
}
