package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateRecords(t *testing.T) {
	records := []MetricRecord{
		{
			EntityID:    "111",
			EntityName:  "Campanha Verão",
			Cost:        145.67,
			Clicks:      1000,
			Impressions: 40000,
			Conversions: 60,
			Revenue:     1000.89,
		},
		{
			EntityID:    "222",
			EntityName:  "Campanha Inverno",
			Cost:        100.00,
			Clicks:      234,
			Impressions: 5678,
			Conversions: 29,
			Revenue:     567.00,
		},
	}

	tests := []struct {
		name     string
		records  []MetricRecord
		expected AggregateTotals
	}{
		{
			name:    "Soma cada campo de forma independente",
			records: records,
			expected: AggregateTotals{
				TotalCost:        245.67,
				TotalClicks:      1234,
				TotalImpressions: 45678,
				TotalConversions: 89,
				TotalRevenue:     1567.89,
			},
		},
		{
			name:    "Ordem dos registros não altera o resultado",
			records: []MetricRecord{records[1], records[0]},
			expected: AggregateTotals{
				TotalCost:        245.67,
				TotalClicks:      1234,
				TotalImpressions: 45678,
				TotalConversions: 89,
				TotalRevenue:     1567.89,
			},
		},
		{
			name:     "Sequência vazia resulta em totais zerados",
			records:  []MetricRecord{},
			expected: AggregateTotals{},
		},
		{
			name:     "Sequência nula resulta em totais zerados",
			records:  nil,
			expected: AggregateTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := AggregateRecords(tt.records)

			assert.InDelta(t, tt.expected.TotalCost, totals.TotalCost, 0.001)
			assert.Equal(t, tt.expected.TotalClicks, totals.TotalClicks)
			assert.Equal(t, tt.expected.TotalImpressions, totals.TotalImpressions)
			assert.InDelta(t, tt.expected.TotalConversions, totals.TotalConversions, 0.001)
			assert.InDelta(t, tt.expected.TotalRevenue, totals.TotalRevenue, 0.001)
		})
	}
}

func TestCalculateDerivedMetrics(t *testing.T) {
	tests := []struct {
		name     string
		totals   AggregateTotals
		expected DerivedMetrics
	}{
		{
			name: "Calcula todas as métricas derivadas com arredondamento",
			totals: AggregateTotals{
				TotalCost:        245.67,
				TotalClicks:      1234,
				TotalImpressions: 45678,
				TotalConversions: 89,
				TotalRevenue:     1567.89,
			},
			expected: DerivedMetrics{
				ROAS:           6.38,
				ROI:            538.21,
				AvgCPC:         0.2,
				ConversionRate: 7.21,
				AvgCTR:         2.7,
			},
		},
		{
			name:     "Totais zerados resultam em métricas zeradas",
			totals:   AggregateTotals{},
			expected: DerivedMetrics{},
		},
		{
			name: "Custo zero zera ROAS e ROI mesmo com receita",
			totals: AggregateTotals{
				TotalClicks:      100,
				TotalImpressions: 1000,
				TotalConversions: 10,
				TotalRevenue:     500,
			},
			expected: DerivedMetrics{
				ROAS:           0,
				ROI:            0,
				AvgCPC:         0,
				ConversionRate: 10,
				AvgCTR:         10,
			},
		},
		{
			name: "Cliques zero zeram CPC médio e taxa de conversão",
			totals: AggregateTotals{
				TotalCost:        100,
				TotalImpressions: 1000,
				TotalRevenue:     50,
			},
			expected: DerivedMetrics{
				ROAS:           0.5,
				ROI:            -50,
				AvgCPC:         0,
				ConversionRate: 0,
				AvgCTR:         0,
			},
		},
		{
			name: "Impressões zero zeram CTR médio",
			totals: AggregateTotals{
				TotalCost:    100,
				TotalClicks:  50,
				TotalRevenue: 300,
			},
			expected: DerivedMetrics{
				ROAS:   3,
				ROI:    200,
				AvgCPC: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := CalculateDerivedMetrics(tt.totals)

			assert.InDelta(t, tt.expected.ROAS, metrics.ROAS, 0.001)
			assert.InDelta(t, tt.expected.ROI, metrics.ROI, 0.001)
			assert.InDelta(t, tt.expected.AvgCPC, metrics.AvgCPC, 0.001)
			assert.InDelta(t, tt.expected.ConversionRate, metrics.ConversionRate, 0.001)
			assert.InDelta(t, tt.expected.AvgCTR, metrics.AvgCTR, 0.001)
		})
	}
}

func TestBuildRoasReport(t *testing.T) {
	records := []MetricRecord{
		{
			EntityID:    "111",
			EntityName:  "Campanha Verão",
			Cost:        100,
			Clicks:      200,
			Impressions: 4000,
			Conversions: 10,
			Revenue:     150,
		},
	}

	t.Run("Receita do Shopify substitui a receita de conversões", func(t *testing.T) {
		sales := &SalesMetrics{TotalRevenue: 300, OrdersCount: 5}

		report := BuildRoasReport(records, sales, nil)

		assert.InDelta(t, 300.0, report.Totals.TotalRevenue, 0.001)
		assert.InDelta(t, 3.0, report.Metrics.ROAS, 0.001)
		assert.InDelta(t, 200.0, report.Metrics.ROI, 0.001)
		assert.NotNil(t, report.Recommendation)
		assert.Equal(t, ActionIncreaseBudget, report.Recommendation.Action)
	})

	t.Run("Sem vendas o relatório usa a receita de conversões", func(t *testing.T) {
		report := BuildRoasReport(records, nil, nil)

		assert.Nil(t, report.Sales)
		assert.InDelta(t, 150.0, report.Totals.TotalRevenue, 0.001)
		assert.InDelta(t, 1.5, report.Metrics.ROAS, 0.001)
		assert.InDelta(t, 50.0, report.Metrics.ROI, 0.001)
		assert.Equal(t, ActionMaintainBudget, report.Recommendation.Action)
	})
}
