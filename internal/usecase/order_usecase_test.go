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

// fakeTx подменяет pgx.Tx; используется только Commit/Rollback.
type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type fakePool struct {
	begins int
}

func (f *fakePool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	f.begins++
	return fakeTx{}, nil
}

type fakeVariantRepo struct {
	variants map[int64]*domain.Variant
}

func (f *fakeVariantRepo) Create(ctx context.Context, v *domain.Variant) (*domain.Variant, error) {
	f.variants[v.ID] = v
	return v, nil
}

func (f *fakeVariantRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Variant, error) {
	v, ok := f.variants[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (f *fakeVariantRepo) DecrementStock(ctx context.Context, id, quantity int64) error {
	f.variants[id].StockQuantity -= quantity
	return nil
}

func (f *fakeVariantRepo) IncrementStock(ctx context.Context, id, quantity int64) error {
	f.variants[id].StockQuantity += quantity
	return nil
}

func (f *fakeVariantRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Variant, error) {
	return nil, nil
}

type fakeAddressRepo struct {
	addresses map[int64]*domain.Address
}

func (f *fakeAddressRepo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	a, ok := f.addresses[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return a, nil
}

type fakeOrderRepo struct {
	nextID      int64
	orders      map[int64]*domain.Order
	lockedReads int
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	f.nextID++
	order.ID = f.nextID
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepo) CreateItems(ctx context.Context, orderID int64, items []domain.OrderItem) ([]domain.OrderItem, error) {
	for i := range items {
		items[i].OrderID = orderID
		items[i].ID = int64(i + 1)
	}
	f.orders[orderID].Items = items
	return items, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	if _, ok := ctx.Value("tx").(pgx.Tx); !ok {
		return nil, e.ErrTransactionNotFound
	}
	f.lockedReads++
	return f.GetByID(ctx, id)
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	f.orders[id].Status = status
	return nil
}

type fakeOutboxRepo struct {
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error { return nil }

func newOrderFixture() (*OrderUseCase, *fakeVariantRepo, *fakeOrderRepo, *fakeOutboxRepo) {
	userID := int64(7)
	variants := &fakeVariantRepo{variants: map[int64]*domain.Variant{
		1: {ID: 1, ProductID: 1, Label: "2kg pack", Price: 1000, StockQuantity: 3},
		2: {ID: 2, ProductID: 1, Label: "5kg pack", Price: 500, StockQuantity: 10},
	}}
	addresses := &fakeAddressRepo{addresses: map[int64]*domain.Address{
		100: {ID: 100, UserID: userID, Type: domain.AddressShipping, Line1: "Main st 1"},
		200: {ID: 200, UserID: 999, Type: domain.AddressShipping, Line1: "Other st 2"},
	}}
	orders := &fakeOrderRepo{orders: map[int64]*domain.Order{}}
	outbox := &fakeOutboxRepo{}

	uc := NewOrderUC(orders, variants, addresses, outbox, &fakePool{}, logger.NewSlogLogger())
	return uc, variants, orders, outbox
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, nil))
	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestPlaceOrderInvalidQuantity(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, []OrderLine{{VariantID: 1, Quantity: 0}}))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestPlaceOrderDuplicateVariant(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, []OrderLine{
		{VariantID: 1, Quantity: 1},
		{VariantID: 1, Quantity: 2},
	}))
	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestPlaceOrderForeignAddress(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 200, []OrderLine{{VariantID: 1, Quantity: 1}}))
	assert.ErrorIs(t, err, e.ErrInvalidAddress)
}

func TestPlaceOrderUnknownVariant(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, []OrderLine{{VariantID: 42, Quantity: 1}}))
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	uc, variants, orders, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, []OrderLine{{VariantID: 1, Quantity: 5}}))
	assert.ErrorIs(t, err, e.ErrInsufficientStock)

	// Остаток не изменился, заказ не сохранён
	assert.Equal(t, int64(3), variants.variants[1].StockQuantity)
	assert.Empty(t, orders.orders)
}

func TestPlaceOrderSnapshotsPrices(t *testing.T) {
	uc, variants, _, outbox := newOrderFixture()

	order, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, []OrderLine{
		{VariantID: 1, Quantity: 2},
		{VariantID: 2, Quantity: 1},
	}))
	require.NoError(t, err)

	// 10.00 * 2 + 5.00 * 1 = 25.00
	assert.Equal(t, int64(2500), order.TotalAmount)
	assert.Equal(t, domain.OrderPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(1000), order.Items[0].UnitPrice)
	assert.Equal(t, int64(500), order.Items[1].UnitPrice)

	// Остатки списаны
	assert.Equal(t, int64(1), variants.variants[1].StockQuantity)
	assert.Equal(t, int64(9), variants.variants[2].StockQuantity)

	// Последующее изменение цены каталога не трогает снимок
	variants.variants[1].Price = 1200
	assert.Equal(t, int64(1000), order.Items[0].UnitPrice)
	assert.Equal(t, int64(2500), order.TotalAmount)

	// Событие order_placed поставлено в outbox
	require.Len(t, outbox.events, 1)
	assert.Equal(t, OrderPlacedEvent, outbox.events[0].EventType)
	assert.Equal(t, order.ID, outbox.events[0].OrderID)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	uc, _, orders, _ := newOrderFixture()

	userID := int64(7)
	orders.orders[1] = &domain.Order{ID: 1, UserID: &userID, Status: domain.OrderDelivered}
	orders.nextID = 1

	_, err := uc.UpdateStatus(context.Background(), NewUpdateOrderStatusReq(1, domain.OrderShipped))
	assert.ErrorIs(t, err, e.ErrInvalidTransition)
	assert.Equal(t, domain.OrderDelivered, orders.orders[1].Status)
}

func TestUpdateStatusPendingToPaid(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	order, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, []OrderLine{{VariantID: 2, Quantity: 1}}))
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), NewUpdateOrderStatusReq(order.ID, domain.OrderPaid))
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, updated.Status)
}

func TestUpdateStatusCancelRestoresStock(t *testing.T) {
	uc, variants, _, _ := newOrderFixture()

	order, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, []OrderLine{{VariantID: 1, Quantity: 2}}))
	require.NoError(t, err)
	require.Equal(t, int64(1), variants.variants[1].StockQuantity)

	_, err = uc.UpdateStatus(context.Background(), NewUpdateOrderStatusReq(order.ID, domain.OrderCancelled))
	require.NoError(t, err)
	assert.Equal(t, int64(3), variants.variants[1].StockQuantity)
}

func TestUpdateStatusReadsOrderUnderLock(t *testing.T) {
	uc, _, orders, _ := newOrderFixture()

	order, err := uc.PlaceOrder(context.Background(), NewPlaceOrderReq(7, 100, []OrderLine{{VariantID: 1, Quantity: 1}}))
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), NewUpdateOrderStatusReq(order.ID, domain.OrderPaid))
	require.NoError(t, err)

	// Переход читает заказ блокирующим чтением, а не обычным GetByID
	assert.Equal(t, 1, orders.lockedReads)
}

func TestUpdateStatusJoinsOpenTransaction(t *testing.T) {
	userID := int64(7)
	pool := &fakePool{}
	orders := &fakeOrderRepo{orders: map[int64]*domain.Order{
		1: {ID: 1, UserID: &userID, Status: domain.OrderPending},
	}}
	variants := &fakeVariantRepo{variants: map[int64]*domain.Variant{}}
	uc := NewOrderUC(orders, variants, &fakeAddressRepo{}, &fakeOutboxRepo{}, pool, logger.NewSlogLogger())

	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(fakeTx{}))
	updated, err := uc.UpdateStatus(ctx, NewUpdateOrderStatusReq(1, domain.OrderPaid))
	require.NoError(t, err)

	// Открытая транзакция переиспользуется, вторая не начинается
	assert.Equal(t, domain.OrderPaid, updated.Status)
	assert.Equal(t, 0, pool.begins)
	assert.Equal(t, 1, orders.lockedReads)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), NewUpdateOrderStatusReq(1, domain.OrderStatus("XXX")))
	assert.ErrorIs(t, err, e.ErrInvalidTransition)
}
