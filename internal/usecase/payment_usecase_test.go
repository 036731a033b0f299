package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txRecorder считает коммиты и откаты, чтобы тесты видели судьбу транзакции.
type txRecorder struct {
	pgx.Tx
	commits   *int
	rollbacks *int
}

func (r txRecorder) Commit(ctx context.Context) error   { *r.commits++; return nil }
func (r txRecorder) Rollback(ctx context.Context) error { *r.rollbacks++; return nil }

type recordingPool struct {
	commits   int
	rollbacks int
}

func (p *recordingPool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return txRecorder{commits: &p.commits, rollbacks: &p.rollbacks}, nil
}

type fakePaymentRepo struct {
	nextID   int64
	byOrder  map[int64]*domain.Payment
	markPaid int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byOrder: map[int64]*domain.Payment{}}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if _, ok := f.byOrder[payment.OrderID]; ok {
		return nil, e.ErrPaymentExists
	}
	f.nextID++
	payment.ID = f.nextID
	f.byOrder[payment.OrderID] = payment
	return payment, nil
}

func (f *fakePaymentRepo) GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	payment, ok := f.byOrder[orderID]
	if !ok {
		return nil, e.ErrNotFound
	}
	copied := *payment
	return &copied, nil
}

func (f *fakePaymentRepo) MarkPaid(ctx context.Context, orderID int64, transactionID string) error {
	payment, ok := f.byOrder[orderID]
	if !ok || payment.Status == domain.PaymentPaid {
		return e.ErrPaymentExists
	}
	payment.Status = domain.PaymentPaid
	payment.TransactionID = transactionID
	f.markPaid++
	return nil
}

// fakeOrderStatusUC подменяет машину статусов заказа.
type fakeOrderStatusUC struct {
	orders map[int64]*domain.Order
	sawTx  bool
}

func (f *fakeOrderStatusUC) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderStatusUC) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderStatusUC) UpdateStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error) {
	if _, ok := ctx.Value("tx").(pgx.Tx); ok {
		f.sawTx = true
	}

	order, ok := f.orders[req.OrderID]
	if !ok {
		return nil, e.ErrNotFound
	}
	if !order.Status.CanTransitionTo(req.Status) {
		return nil, e.ErrInvalidTransition
	}
	order.Status = req.Status
	return order, nil
}

func newPaymentFixture() (*PaymentUseCase, *fakePaymentRepo, *fakeOrderStatusUC) {
	repo := newFakePaymentRepo()
	orders := &fakeOrderStatusUC{orders: map[int64]*domain.Order{
		1: {ID: 1, Status: domain.OrderPending, TotalAmount: 2500},
	}}
	return NewPaymentUC(repo, orders, &recordingPool{}, logger.NewSlogLogger()), repo, orders
}

// failingPaymentRepo имитирует сбой хранилища на записи платежа.
type failingPaymentRepo struct {
	*fakePaymentRepo
}

func (failingPaymentRepo) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	return nil, e.ErrStoreUnavailable
}

func TestConfirmPaymentMovesOrderToPaid(t *testing.T) {
	uc, repo, orders := newPaymentFixture()

	payment, err := uc.Confirm(context.Background(), NewConfirmPaymentReq(1, domain.PaymentKhalti, "txn-1"))
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentPaid, payment.Status)
	assert.Equal(t, "txn-1", payment.TransactionID)
	assert.Equal(t, domain.OrderPaid, orders.orders[1].Status)
	assert.Equal(t, 1, repo.markPaid)
}

func TestConfirmPaymentRollsBackOnStoreFailure(t *testing.T) {
	pool := &recordingPool{}
	orders := &fakeOrderStatusUC{orders: map[int64]*domain.Order{
		1: {ID: 1, Status: domain.OrderPending, TotalAmount: 2500},
	}}
	uc := NewPaymentUC(failingPaymentRepo{newFakePaymentRepo()}, orders, pool, logger.NewSlogLogger())

	_, err := uc.Confirm(context.Background(), NewConfirmPaymentReq(1, domain.PaymentKhalti, "txn-1"))
	assert.ErrorIs(t, err, e.ErrStoreUnavailable)

	// Переход статуса шёл в той же транзакции, и она откатилась целиком:
	// заказ не может остаться PAI без записи платежа
	assert.True(t, orders.sawTx)
	assert.Equal(t, 0, pool.commits)
	assert.Equal(t, 1, pool.rollbacks)
}

func TestConfirmPaymentTwice(t *testing.T) {
	uc, _, _ := newPaymentFixture()

	_, err := uc.Confirm(context.Background(), NewConfirmPaymentReq(1, domain.PaymentKhalti, "txn-1"))
	require.NoError(t, err)

	_, err = uc.Confirm(context.Background(), NewConfirmPaymentReq(1, domain.PaymentKhalti, "txn-2"))
	assert.ErrorIs(t, err, e.ErrPaymentExists)
}

func TestConfirmPaymentUnknownOrder(t *testing.T) {
	uc, _, _ := newPaymentFixture()

	_, err := uc.Confirm(context.Background(), NewConfirmPaymentReq(77, domain.PaymentCashOnDelivery, "txn-9"))
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestConfirmPaymentCancelledOrder(t *testing.T) {
	uc, _, orders := newPaymentFixture()
	orders.orders[1].Status = domain.OrderCancelled

	_, err := uc.Confirm(context.Background(), NewConfirmPaymentReq(1, domain.PaymentKhalti, "txn-1"))
	assert.ErrorIs(t, err, e.ErrInvalidTransition)
}
