package shopifydomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderIsPaid(t *testing.T) {
	cancelledAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		order    Order
		expected bool
	}{
		{
			name:     "Pedido pago conta como receita",
			order:    Order{FinancialStatus: "paid"},
			expected: true,
		},
		{
			name:     "Pedido parcialmente reembolsado conta como receita",
			order:    Order{FinancialStatus: "partially_refunded"},
			expected: true,
		},
		{
			name:     "Pedido pendente não conta",
			order:    Order{FinancialStatus: "pending"},
			expected: false,
		},
		{
			name:     "Pedido reembolsado não conta",
			order:    Order{FinancialStatus: "refunded"},
			expected: false,
		},
		{
			name:     "Pedido pago porém cancelado não conta",
			order:    Order{FinancialStatus: "paid", CancelledAt: &cancelledAt},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.order.IsPaid())
		})
	}
}

func TestOrderTotalPriceValue(t *testing.T) {
	assert.InDelta(t, 149.9, Order{TotalPrice: "149.90"}.TotalPriceValue(), 0.001)
	assert.Zero(t, Order{TotalPrice: ""}.TotalPriceValue())
	assert.Zero(t, Order{TotalPrice: "abc"}.TotalPriceValue())
}

func TestSumPaidRevenue(t *testing.T) {
	cancelledAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	orders := []Order{
		{FinancialStatus: "paid", TotalPrice: "100.50"},
		{FinancialStatus: "partially_refunded", TotalPrice: "49.50"},
		{FinancialStatus: "pending", TotalPrice: "999.99"},
		{FinancialStatus: "paid", TotalPrice: "10.00", CancelledAt: &cancelledAt},
	}

	total, count := SumPaidRevenue(orders)

	assert.InDelta(t, 150.0, total, 0.001)
	assert.Equal(t, 2, count)
}

func TestSumPaidRevenueEmpty(t *testing.T) {
	total, count := SumPaidRevenue(nil)

	assert.Zero(t, total)
	assert.Zero(t, count)
}
