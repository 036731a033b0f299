package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// PaymentUseCase обрабатывает колбэки платёжного провайдера.
// Запись платежа живёт отдельно от заказа: создаётся после заказа,
// подтверждение переводит заказ PEN -> PAI через общую машину статусов.
type PaymentUseCase struct {
	paymentRepo PaymentRepository
	orderUC     OrderUC
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewPaymentUC(paymentRepo PaymentRepository, orderUC OrderUC, dbPool transaction.Transactional, logger logger.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		orderUC:     orderUC,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Confirm фиксирует оплату заказа и переводит заказ в статус PAI.
// Переход статуса и запись платежа выполняются в одной транзакции: сбой
// на любом шаге откатывает оба, заказ не может стать PAI без платежа.
func (p *PaymentUseCase) Confirm(ctx context.Context, req *ConfirmPaymentReq) (*domain.Payment, error) {
	const op = "PaymentUseCase.Confirm"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	existing, err := p.paymentRepo.GetByOrderID(ctx, req.OrderID)
	if err != nil && !errors.Is(err, e.ErrNotFound) {
		return nil, e.Wrap(op, err)
	}
	if existing != nil && existing.Status == domain.PaymentPaid {
		err = e.ErrPaymentExists
		return nil, e.Wrap(op, err)
	}

	// Переход статуса проверяет, что заказ ещё ожидает оплату
	if _, err = p.orderUC.UpdateStatus(ctx, NewUpdateOrderStatusReq(req.OrderID, domain.OrderPaid)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if existing == nil {
		existing, err = p.paymentRepo.Create(ctx, domain.NewPayment(req.OrderID, req.Method, req.TransactionID))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	if err = p.paymentRepo.MarkPaid(ctx, req.OrderID, req.TransactionID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	existing.Status = domain.PaymentPaid
	existing.TransactionID = req.TransactionID
	return existing, nil
}
