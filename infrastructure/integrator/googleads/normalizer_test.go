package googleads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gadsdomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/domain"
)

func stringPtr(s string) *string {
	return &s
}

func TestNormalizeRow(t *testing.T) {
	t.Run("Converte o custo de micro-unidades e copia os demais campos", func(t *testing.T) {
		row := gadsdomain.SearchRow{
			Campaign: &gadsdomain.Campaign{
				ID:   "111",
				Name: "Campanha Verão",
			},
			Metrics: &gadsdomain.Metrics{
				CostMicros:       stringPtr("245670000"),
				Clicks:           stringPtr("1234"),
				Impressions:      stringPtr("45678"),
				Conversions:      89,
				ConversionsValue: 1567.89,
			},
		}

		record, err := NormalizeRow(row)
		require.NoError(t, err)

		assert.Equal(t, "111", record.EntityID)
		assert.Equal(t, "Campanha Verão", record.EntityName)
		assert.InDelta(t, 245.67, record.Cost, 0.001)
		assert.Equal(t, int64(1234), record.Clicks)
		assert.Equal(t, int64(45678), record.Impressions)
		assert.InDelta(t, 89.0, record.Conversions, 0.001)
		assert.InDelta(t, 1567.89, record.Revenue, 0.001)
	})

	t.Run("Métricas numéricas omitidas valem zero", func(t *testing.T) {
		row := gadsdomain.SearchRow{
			Campaign: &gadsdomain.Campaign{
				ID:   "222",
				Name: "Campanha Inverno",
			},
			Metrics: &gadsdomain.Metrics{
				CostMicros: stringPtr("1000000"),
			},
		}

		record, err := NormalizeRow(row)
		require.NoError(t, err)

		assert.InDelta(t, 1.0, record.Cost, 0.001)
		assert.Equal(t, int64(0), record.Clicks)
		assert.Equal(t, int64(0), record.Impressions)
		assert.Zero(t, record.Conversions)
		assert.Zero(t, record.Revenue)
	})

	tests := []struct {
		name          string
		row           gadsdomain.SearchRow
		expectedField string
	}{
		{
			name:          "Linha sem campanha",
			row:           gadsdomain.SearchRow{Metrics: &gadsdomain.Metrics{CostMicros: stringPtr("1")}},
			expectedField: "campaign",
		},
		{
			name: "Campanha sem ID",
			row: gadsdomain.SearchRow{
				Campaign: &gadsdomain.Campaign{Name: "Sem ID"},
				Metrics:  &gadsdomain.Metrics{CostMicros: stringPtr("1")},
			},
			expectedField: "campaign.id",
		},
		{
			name: "Campanha sem nome",
			row: gadsdomain.SearchRow{
				Campaign: &gadsdomain.Campaign{ID: "333"},
				Metrics:  &gadsdomain.Metrics{CostMicros: stringPtr("1")},
			},
			expectedField: "campaign.name",
		},
		{
			name: "Linha sem métricas",
			row: gadsdomain.SearchRow{
				Campaign: &gadsdomain.Campaign{ID: "333", Name: "Sem métricas"},
			},
			expectedField: "metrics",
		},
		{
			name: "Métricas sem custo",
			row: gadsdomain.SearchRow{
				Campaign: &gadsdomain.Campaign{ID: "333", Name: "Sem custo"},
				Metrics:  &gadsdomain.Metrics{},
			},
			expectedField: "metrics.cost_micros",
		},
		{
			name: "Custo com valor não numérico",
			row: gadsdomain.SearchRow{
				Campaign: &gadsdomain.Campaign{ID: "333", Name: "Custo inválido"},
				Metrics:  &gadsdomain.Metrics{CostMicros: stringPtr("abc")},
			},
			expectedField: "metrics.cost_micros",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeRow(tt.row)
			require.Error(t, err)

			var malformedErr *gadsdomain.MalformedRowError
			require.ErrorAs(t, err, &malformedErr)
			assert.Equal(t, tt.expectedField, malformedErr.Field)
		})
	}
}

func TestNormalizeRows(t *testing.T) {
	validRow := gadsdomain.SearchRow{
		Campaign: &gadsdomain.Campaign{ID: "111", Name: "Campanha Verão"},
		Metrics:  &gadsdomain.Metrics{CostMicros: stringPtr("5000000")},
	}

	t.Run("Normaliza todas as linhas válidas", func(t *testing.T) {
		records, err := NormalizeRows([]gadsdomain.SearchRow{validRow, validRow})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("Primeira linha malformada interrompe o processamento", func(t *testing.T) {
		malformed := gadsdomain.SearchRow{
			Campaign: &gadsdomain.Campaign{ID: "222"},
			Metrics:  &gadsdomain.Metrics{CostMicros: stringPtr("1")},
		}

		records, err := NormalizeRows([]gadsdomain.SearchRow{validRow, malformed, validRow})
		require.Error(t, err)
		assert.Nil(t, records)
	})

	t.Run("Lista vazia resulta em lista vazia sem erro", func(t *testing.T) {
		records, err := NormalizeRows(nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
