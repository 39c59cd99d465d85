package domain

import (
	"time"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SalesMetrics resume as vendas do Shopify no período consultado
type SalesMetrics struct {
	TotalRevenue float64 `json:"total_revenue"`
	OrdersCount  int     `json:"orders_count"`
}

// RoasReport é a resposta completa do endpoint de insights: registros por
// campanha, totais, métricas derivadas e a recomendação de orçamento
type RoasReport struct {
	AccountID      string          `json:"account_id"`
	AccountName    string          `json:"account_name"`
	Records        []MetricRecord  `json:"records"`
	Totals         AggregateTotals `json:"totals"`
	Metrics        DerivedMetrics  `json:"metrics"`
	Sales          *SalesMetrics   `json:"sales,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Filters        *InsightFilters `json:"filters,omitempty"`
}

// BuildRoasReport monta o relatório a partir dos registros normalizados e,
// quando disponíveis, das vendas do Shopify. A receita do Shopify substitui a
// receita de conversões reportada pelo Google Ads no cálculo do ROAS/ROI.
func BuildRoasReport(records []MetricRecord, sales *SalesMetrics, filters *InsightFilters) *RoasReport {
	totals := AggregateRecords(records)

	if sales != nil {
		totals.TotalRevenue = sales.TotalRevenue
	}

	metrics := CalculateDerivedMetrics(totals)
	recommendation := RecommendFromROI(metrics.ROI)

	return &RoasReport{
		Records:        records,
		Totals:         totals,
		Metrics:        metrics,
		Sales:          sales,
		Recommendation: &recommendation,
		Filters:        filters,
	}
}
