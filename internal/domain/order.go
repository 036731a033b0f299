package domain

import "time"

// OrderStatus — статус заказа, коды совпадают с кодами в БД
type OrderStatus string

const (
	OrderPending   OrderStatus = "PEN"
	OrderPaid      OrderStatus = "PAI"
	OrderShipped   OrderStatus = "SHP"
	OrderDelivered OrderStatus = "DEL"
	OrderCancelled OrderStatus = "CAN"
)

// transitions описывает допустимые переходы статусов заказа:
// PEN -> PAI -> SHP -> DEL, отмена возможна только из PEN и PAI.
var transitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderPaid, OrderCancelled},
	OrderPaid:    {OrderShipped, OrderCancelled},
	OrderShipped: {OrderDelivered},
}

// IsValid сообщает, известен ли статус
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo сообщает, допустим ли переход из текущего статуса в next
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order описывает заказ. UserID может быть nil: заказ переживает удаление
// пользователя. TotalAmount фиксируется при создании и не пересчитывается.
type Order struct {
	ID             int64
	UserID         *int64
	Status         OrderStatus
	PlacedAt       time.Time
	ShippingAddrID int64
	TotalAmount    int64 // Сумма хранится в копейках
	Items          []OrderItem
}

func NewOrder(userID int64, shippingAddrID, totalAmount int64) *Order {
	return &Order{
		UserID:         &userID,
		Status:         OrderPending,
		ShippingAddrID: shippingAddrID,
		TotalAmount:    totalAmount,
	}
}

// OrderItem — позиция заказа. UnitPrice — снимок цены варианта на момент
// оформления, последующие изменения каталога его не затрагивают.
type OrderItem struct {
	ID        int64
	OrderID   int64
	VariantID int64
	Quantity  int64
	UnitPrice int64 // Цена хранится в копейках
}

func NewOrderItem(variantID, quantity, unitPrice int64) *OrderItem {
	return &OrderItem{
		VariantID: variantID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
}
