package domain

import "time"

// PaymentMethod задаёт способ оплаты
type PaymentMethod string

const (
	PaymentKhalti         PaymentMethod = "KHA"
	PaymentCashOnDelivery PaymentMethod = "COD"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Payment описывает платёж по заказу, связь с заказом один-к-одному.
// Жизненный цикл платежа независим: запись создаётся после заказа и
// обновляется колбэком платёжного провайдера.
type Payment struct {
	ID            int64
	OrderID       int64
	Method        PaymentMethod
	Status        string
	TransactionID string
	PaidAt        *time.Time
}

func NewPayment(orderID int64, method PaymentMethod, transactionID string) *Payment {
	return &Payment{
		OrderID:       orderID,
		Method:        method,
		Status:        PaymentUnpaid,
		TransactionID: transactionID,
	}
}
