package gadsclient

import (
	"net/http"
	"time"

	gadsdomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
)

type Client interface {
	SearchCampaignMetrics(customerID string, filters *domain.InsightFilters) ([]gadsdomain.SearchRow, error)
	ListCustomerClients(customerID string) ([]gadsdomain.CustomerClient, error)
	RefreshToken() error
	EnsureValidToken() error
}

type GoogleAdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GoogleAdsClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

func (c *GoogleAdsClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}
