package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	"github.com/DRSN-tech/petstore-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует оформление заказа и управление его статусом.
type OrderUseCase struct {
	orderRepo   OrderRepository
	variantRepo VariantRepository
	addressRepo AddressRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	variantRepo VariantRepository,
	addressRepo AddressRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		variantRepo: variantRepo,
		addressRepo: addressRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// orderPlacedPayload — тело события order_placed для downstream-обработки платежей.
type orderPlacedPayload struct {
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	TotalAmount int64     `json:"total_amount"`
	PlacedAt    time.Time `json:"placed_at"`
}

// PlaceOrder атомарно оформляет заказ: проверяет адрес и остатки, фиксирует
// сумму заказа и снимки цен позиций, списывает остатки и кладёт событие
// order_placed в outbox. При любой ошибке ни одна строка не сохраняется.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.PlaceOrder"

	var err error
	if err = o.validateOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Адрес должен существовать и принадлежать покупателю
	if err = o.checkAddress(ctx, req.UserID, req.AddressID); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Блокировка вариантов и проверка остатков; цена каждого варианта
	// снимается здесь и больше не перечитывается.
	items, total, err := o.reserveItems(ctx, req.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order, err := o.orderRepo.Create(ctx, domain.NewOrder(req.UserID, req.AddressID, total))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order.Items, err = o.orderRepo.CreateItems(ctx, order.ID, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.enqueueOrderPlaced(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// GetOrder возвращает заказ с позициями.
func (o *OrderUseCase) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// UpdateStatus переводит заказ в новый статус, отклоняя недопустимые переходы.
// Отмена заказа из PEN/PAI возвращает списанные остатки вариантам. Если в
// контексте уже открыта транзакция, переход выполняется в ней без отдельного
// коммита; иначе открывается собственная.
func (o *OrderUseCase) UpdateStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateStatus"

	var err error
	if !req.Status.IsValid() {
		return nil, e.Wrap(op, e.ErrInvalidTransition)
	}

	if _, txErr := tr.TxFromCtx(ctx); txErr == nil {
		order, err := o.applyStatus(ctx, req)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		return order, nil
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	order, err := o.applyStatus(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// applyStatus выполняет сам переход в рамках транзакции из ctx. Заказ
// читается с блокировкой строки, поэтому конкурентный переход того же
// заказа дождётся коммита и увидит уже новый статус.
func (o *OrderUseCase) applyStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error) {
	order, err := o.orderRepo.GetForUpdate(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(req.Status) {
		return nil, e.ErrInvalidTransition
	}

	if err := o.orderRepo.UpdateStatus(ctx, order.ID, req.Status); err != nil {
		return nil, err
	}

	if req.Status == domain.OrderCancelled {
		if err := o.restock(ctx, order.Items); err != nil {
			return nil, err
		}
	}

	order.Status = req.Status
	return order, nil
}

// reserveItems блокирует варианты, проверяет остатки и возвращает позиции
// заказа со снимками цен вместе с итоговой суммой.
func (o *OrderUseCase) reserveItems(ctx context.Context, lines []OrderLine) ([]domain.OrderItem, int64, error) {
	items := make([]domain.OrderItem, 0, len(lines))

	var total int64
	for _, line := range lines {
		variant, err := o.variantRepo.GetForUpdate(ctx, line.VariantID)
		if err != nil {
			return nil, 0, err
		}

		if variant.StockQuantity < line.Quantity {
			return nil, 0, e.ErrInsufficientStock
		}

		if err := o.variantRepo.DecrementStock(ctx, variant.ID, line.Quantity); err != nil {
			return nil, 0, err
		}

		total += variant.Price * line.Quantity
		items = append(items, *domain.NewOrderItem(variant.ID, line.Quantity, variant.Price))
	}

	return items, total, nil
}

// restock возвращает количество отменённых позиций на остатки вариантов.
func (o *OrderUseCase) restock(ctx context.Context, items []domain.OrderItem) error {
	for _, item := range items {
		if err := o.variantRepo.IncrementStock(ctx, item.VariantID, item.Quantity); err != nil {
			return err
		}
	}

	return nil
}

// checkAddress проверяет, что адрес существует и принадлежит пользователю.
func (o *OrderUseCase) checkAddress(ctx context.Context, userID, addressID int64) error {
	address, err := o.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return err
	}

	if address.UserID != userID {
		return e.ErrInvalidAddress
	}

	return nil
}

// enqueueOrderPlaced кладёт событие order_placed в outbox в рамках текущей транзакции.
func (o *OrderUseCase) enqueueOrderPlaced(ctx context.Context, order *domain.Order) error {
	var userID int64
	if order.UserID != nil {
		userID = *order.UserID
	}

	payload, err := json.Marshal(orderPlacedPayload{
		OrderID:     order.ID,
		UserID:      userID,
		TotalAmount: order.TotalAmount,
		PlacedAt:    order.PlacedAt,
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderPlacedEvent, order.ID, payload))
	return err
}

// validateOrder проверяет корректность входных данных запроса на оформление заказа.
// Вариант может встречаться в заказе только один раз.
func (o *OrderUseCase) validateOrder(req *PlaceOrderReq) error {
	if len(req.Items) == 0 {
		return e.ErrEmptyCart
	}

	seen := make(map[int64]struct{}, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return e.ErrInvalidQuantity
		}
		if _, dup := seen[line.VariantID]; dup {
			return e.ErrStatusBadRequest
		}
		seen[line.VariantID] = struct{}{}
	}

	return nil
}
