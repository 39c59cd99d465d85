package googleads

import (
	gadsdomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
)

type AdsIntegrator interface {
	// GetCampaignMetrics retorna as métricas normalizadas por campanha de uma
	// conta no período informado
	GetCampaignMetrics(customerID string, filters *domain.InsightFilters) ([]domain.MetricRecord, error)

	// ListAccounts lista as contas acessíveis abaixo da conta gerenciadora
	ListAccounts() ([]gadsdomain.CustomerClient, error)
}

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client gadsclient.Client
}

func New(cfg *config.Config, client gadsclient.Client) AdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (g *GoogleAdsIntegrator) GetCampaignMetrics(customerID string, filters *domain.InsightFilters) ([]domain.MetricRecord, error) {
	rows, err := g.Client.SearchCampaignMetrics(customerID, filters)
	if err != nil {
		return nil, err
	}

	return NormalizeRows(rows)
}

func (g *GoogleAdsIntegrator) ListAccounts() ([]gadsdomain.CustomerClient, error) {
	return g.Client.ListCustomerClients(g.cfg.GoogleAds.LoginCustomerID)
}
