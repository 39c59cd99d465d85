package shopifydomain

import (
	"strconv"
	"time"
)

// Status financeiros do Shopify que contam como receita realizada
var paidStatuses = map[string]bool{
	"paid":               true,
	"partially_refunded": true,
}

// Order representa um pedido da Admin API do Shopify. Valores monetários
// chegam como strings decimais
type Order struct {
	ID              int64      `json:"id,omitempty"`
	Name            string     `json:"name,omitempty"`
	CreatedAt       time.Time  `json:"created_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	TotalPrice      string     `json:"total_price,omitempty"`
	SubtotalPrice   string     `json:"subtotal_price,omitempty"`
	TotalDiscounts  string     `json:"total_discounts,omitempty"`
	FinancialStatus string     `json:"financial_status,omitempty"`
	SourceName      string     `json:"source_name,omitempty"`
}

type GetOrdersParams struct {
	ShopDomain string
}

// IsPaid indica se o pedido conta como receita (pago e não cancelado)
func (o Order) IsPaid() bool {
	return o.CancelledAt == nil && paidStatuses[o.FinancialStatus]
}

// TotalPriceValue converte o valor total do pedido para float64.
// Valores ilegíveis contam como zero
func (o Order) TotalPriceValue() float64 {
	value, err := strconv.ParseFloat(o.TotalPrice, 64)
	if err != nil {
		return 0
	}
	return value
}

// SumPaidRevenue soma a receita dos pedidos pagos e retorna também a
// quantidade de pedidos considerados
func SumPaidRevenue(orders []Order) (float64, int) {
	var total float64
	var count int

	for _, order := range orders {
		if order.IsPaid() {
			total += order.TotalPriceValue()
			count++
		}
	}

	return total, count
}
