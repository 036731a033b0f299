package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to paid", OrderPending, OrderPaid, true},
		{"pending to cancelled", OrderPending, OrderCancelled, true},
		{"paid to shipped", OrderPaid, OrderShipped, true},
		{"paid to cancelled", OrderPaid, OrderCancelled, true},
		{"shipped to delivered", OrderShipped, OrderDelivered, true},
		{"pending to shipped", OrderPending, OrderShipped, false},
		{"pending to delivered", OrderPending, OrderDelivered, false},
		{"shipped to cancelled", OrderShipped, OrderCancelled, false},
		{"delivered to pending", OrderDelivered, OrderPending, false},
		{"delivered to shipped", OrderDelivered, OrderShipped, false},
		{"cancelled to paid", OrderCancelled, OrderPaid, false},
		{"paid to pending", OrderPaid, OrderPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, OrderStatus("XXX").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
