package gadsdomain

// SearchResponse é um bloco de resultados retornado pelo endpoint searchStream
type SearchResponse struct {
	Results []SearchRow `json:"results"`
}

// SearchRow é uma linha bruta da API do Google Ads. Valores inteiros de
// métricas chegam como strings na API REST e custos em micro-unidades
type SearchRow struct {
	Campaign *Campaign `json:"campaign,omitempty"`
	Metrics  *Metrics  `json:"metrics,omitempty"`
}

type Campaign struct {
	ResourceName string `json:"resourceName,omitempty"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Status       string `json:"status,omitempty"`
}

type Metrics struct {
	CostMicros       *string `json:"costMicros,omitempty"`
	Clicks           *string `json:"clicks,omitempty"`
	Impressions      *string `json:"impressions,omitempty"`
	Conversions      float64 `json:"conversions,omitempty"`
	ConversionsValue float64 `json:"conversionsValue,omitempty"`
}

// CustomerClient representa uma conta acessível abaixo da conta gerenciadora
type CustomerClient struct {
	ID              string `json:"id,omitempty"`
	DescriptiveName string `json:"descriptiveName,omitempty"`
	Status          string `json:"status,omitempty"`
}
