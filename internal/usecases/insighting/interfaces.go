package insighting

import (
	"github.com/vfg2006/roas-manager-api/internal/domain"
)

// AdsInsighter obtém métricas de campanhas do Google Ads para uma conta,
// usando o cache diário quando habilitado
type AdsInsighter interface {
	GetCampaignRecords(account *domain.AdAccount, filters *domain.InsightFilters) ([]domain.MetricRecord, error)
}

// SalesInsighter obtém métricas de vendas do Shopify para uma conta,
// usando o cache diário quando habilitado
type SalesInsighter interface {
	GetSalesMetrics(account *domain.AdAccount, filters *domain.InsightFilters) (*domain.SalesMetrics, error)
}

// RoasInsighter combina anúncios e vendas no relatório de ROAS
type RoasInsighter interface {
	AdsInsighter
	SalesInsighter

	// GetRoasReport monta o relatório completo (registros, totais, métricas
	// derivadas e recomendação) de uma conta no período
	GetRoasReport(customerID string, filters *domain.InsightFilters) (*domain.RoasReport, error)

	// GetAccountTotals retorna apenas os totais agregados e métricas
	// derivadas, sem vendas e sem recomendação
	GetAccountTotals(customerID string, filters *domain.InsightFilters) (*domain.RoasReport, error)
}
