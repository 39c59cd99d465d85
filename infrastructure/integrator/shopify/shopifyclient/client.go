package shopifyclient

import (
	"net/http"
	"time"

	shopifydomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/roas-manager-api/internal/config"
)

type OrdersConsultationParams struct {
	ShopDomain string
	Token      string
	StartDate  string
	EndDate    string
}

type Client interface {
	GetOrders(params OrdersConsultationParams) ([]shopifydomain.Order, error)
}

type ShopifyClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}
