package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderInProgress, false},
		{OrderPending, OrderCompleted, false},
		{OrderConfirmed, OrderInProgress, true},
		{OrderConfirmed, OrderCancelled, true},
		{OrderConfirmed, OrderCompleted, false},
		{OrderConfirmed, OrderPending, false},
		{OrderInProgress, OrderCompleted, true},
		{OrderInProgress, OrderCancelled, true},
		{OrderInProgress, OrderConfirmed, false},
		{OrderCompleted, OrderCancelled, false},
		{OrderCompleted, OrderPending, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderConfirmed, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, OrderCompleted.IsTerminal())
	assert.True(t, OrderCancelled.IsTerminal())
	assert.False(t, OrderPending.IsTerminal())
	assert.False(t, OrderConfirmed.IsTerminal())
	assert.False(t, OrderInProgress.IsTerminal())
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderPending.IsValid())
	assert.False(t, OrderStatus("SHIPPED").IsValid())
}

func TestPaymentStatusIsValid(t *testing.T) {
	assert.True(t, PaymentPaid.IsValid())
	assert.True(t, PaymentRefunded.IsValid())
	assert.False(t, PaymentStatus("PARTIAL").IsValid())
}
