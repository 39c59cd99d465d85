package domain

import (
	"time"
)

// AdInsightEntry representa um dia de métricas de anúncios armazenado no banco
type AdInsightEntry struct {
	ID         int64          `json:"id"`
	AccountID  string         `json:"account_id"`
	CustomerID string         `json:"customer_id"`
	Date       time.Time      `json:"date"`
	Records    []MetricRecord `json:"records"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
