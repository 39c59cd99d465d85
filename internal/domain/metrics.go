package domain

import (
	"github.com/vfg2006/roas-manager-api/pkg/utils"
)

// MetricRecord representa as métricas normalizadas de uma entidade (campanha)
// em um período. Imutável depois de produzido pelo normalizador.
type MetricRecord struct {
	EntityID    string  `json:"entity_id"`
	EntityName  string  `json:"entity_name"`
	Cost        float64 `json:"cost"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// AggregateTotals acumula os totais de uma sequência de MetricRecord
type AggregateTotals struct {
	TotalCost        float64 `json:"total_cost"`
	TotalClicks      int64   `json:"total_clicks"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalConversions float64 `json:"total_conversions"`
	TotalRevenue     float64 `json:"total_revenue"`
}

// DerivedMetrics contém as métricas derivadas dos totais agregados.
// Denominador zero resulta em valor zero, nunca em erro.
type DerivedMetrics struct {
	ROAS           float64 `json:"roas"`
	ROI            float64 `json:"roi"`
	AvgCPC         float64 `json:"avg_cpc"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgCTR         float64 `json:"avg_ctr"`
}

// AggregateRecords soma cada campo de forma independente. Sequência vazia
// resulta em totais zerados. A ordem dos registros não altera o resultado.
func AggregateRecords(records []MetricRecord) AggregateTotals {
	totals := AggregateTotals{}

	for _, record := range records {
		totals.TotalCost += record.Cost
		totals.TotalClicks += record.Clicks
		totals.TotalImpressions += record.Impressions
		totals.TotalConversions += record.Conversions
		totals.TotalRevenue += record.Revenue
	}

	return totals
}

// CalculateDerivedMetrics calcula ROAS, ROI, CPC médio, taxa de conversão e
// CTR médio a partir dos totais agregados, arredondados para duas casas
func CalculateDerivedMetrics(totals AggregateTotals) DerivedMetrics {
	metrics := DerivedMetrics{}

	if totals.TotalCost > 0 {
		metrics.ROAS = utils.RoundWithTwoDecimalPlace(totals.TotalRevenue / totals.TotalCost)
		metrics.ROI = utils.RoundWithTwoDecimalPlace(((totals.TotalRevenue - totals.TotalCost) / totals.TotalCost) * 100)
	}

	if totals.TotalClicks > 0 {
		metrics.AvgCPC = utils.RoundWithTwoDecimalPlace(totals.TotalCost / float64(totals.TotalClicks))
		metrics.ConversionRate = utils.RoundWithTwoDecimalPlace((totals.TotalConversions / float64(totals.TotalClicks)) * 100)
	}

	if totals.TotalImpressions > 0 {
		metrics.AvgCTR = utils.RoundWithTwoDecimalPlace((float64(totals.TotalClicks) / float64(totals.TotalImpressions)) * 100)
	}

	return metrics
}
