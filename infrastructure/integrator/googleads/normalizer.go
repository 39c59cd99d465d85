package googleads

import (
	"strconv"

	gadsdomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"github.com/vfg2006/roas-manager-api/pkg/utils"
)

// NormalizeRow converte uma linha bruta da API em um MetricRecord achatado,
// com o custo convertido de micro-unidades para unidades da moeda.
// Campos obrigatórios ausentes resultam em MalformedRowError, sem
// recuperação parcial. Métricas numéricas omitidas pela API valem zero.
func NormalizeRow(row gadsdomain.SearchRow) (domain.MetricRecord, error) {
	var record domain.MetricRecord

	if row.Campaign == nil {
		return record, gadsdomain.NewMalformedRowError("campaign")
	}

	if row.Campaign.ID == "" {
		return record, gadsdomain.NewMalformedRowError("campaign.id")
	}

	if row.Campaign.Name == "" {
		return record, gadsdomain.NewMalformedRowError("campaign.name")
	}

	if row.Metrics == nil {
		return record, gadsdomain.NewMalformedRowError("metrics")
	}

	if row.Metrics.CostMicros == nil {
		return record, gadsdomain.NewMalformedRowError("metrics.cost_micros")
	}

	costMicros, err := strconv.ParseInt(*row.Metrics.CostMicros, 10, 64)
	if err != nil {
		return record, gadsdomain.NewMalformedRowError("metrics.cost_micros")
	}

	clicks, err := parseOptionalInt(row.Metrics.Clicks)
	if err != nil {
		return record, gadsdomain.NewMalformedRowError("metrics.clicks")
	}

	impressions, err := parseOptionalInt(row.Metrics.Impressions)
	if err != nil {
		return record, gadsdomain.NewMalformedRowError("metrics.impressions")
	}

	return domain.MetricRecord{
		EntityID:    row.Campaign.ID,
		EntityName:  row.Campaign.Name,
		Cost:        utils.MicrosToUnits(costMicros),
		Clicks:      clicks,
		Impressions: impressions,
		Conversions: row.Metrics.Conversions,
		Revenue:     row.Metrics.ConversionsValue,
	}, nil
}

// NormalizeRows normaliza todas as linhas; a primeira linha malformada
// interrompe o processamento e o erro é propagado ao chamador
func NormalizeRows(rows []gadsdomain.SearchRow) ([]domain.MetricRecord, error) {
	records := make([]domain.MetricRecord, 0, len(rows))

	for _, row := range rows {
		record, err := NormalizeRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func parseOptionalInt(value *string) (int64, error) {
	if value == nil || *value == "" {
		return 0, nil
	}
	return strconv.ParseInt(*value, 10, 64)
}
