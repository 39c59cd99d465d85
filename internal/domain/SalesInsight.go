package domain

import (
	"time"
)

// SalesInsightEntry representa um dia de vendas do Shopify armazenado no banco
type SalesInsightEntry struct {
	ID        int64         `json:"id"`
	AccountID string        `json:"account_id"`
	Date      time.Time     `json:"date"`
	Sales     *SalesMetrics `json:"sales"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
