package shopify

import (
	"fmt"
	"time"

	shopifydomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"github.com/vfg2006/roas-manager-api/pkg/utils"
)

type ShopifyIntegrator interface {
	GetOrdersByShop(params shopifydomain.GetOrdersParams, filters *domain.InsightFilters) ([]shopifydomain.Order, error)
	GetSalesMetrics(shopDomain string, filters *domain.InsightFilters) (*domain.SalesMetrics, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ShopifyService) GetOrdersByShop(params shopifydomain.GetOrdersParams, filters *domain.InsightFilters) ([]shopifydomain.Order, error) {
	token, ok := s.cfg.ShopifyTokens[params.ShopDomain]
	if !ok {
		return nil, fmt.Errorf("nenhum token configurado para a loja: %s", params.ShopDomain)
	}

	paramsClient := shopifyclient.OrdersConsultationParams{
		ShopDomain: params.ShopDomain,
		Token:      token,
		StartDate:  filters.StartDate.Format(time.DateOnly),
		EndDate:    filters.EndDate.Format(time.DateOnly),
	}

	return s.Client.GetOrders(paramsClient)
}

// GetSalesMetrics resume a receita paga da loja no período
func (s *ShopifyService) GetSalesMetrics(shopDomain string, filters *domain.InsightFilters) (*domain.SalesMetrics, error) {
	orders, err := s.GetOrdersByShop(shopifydomain.GetOrdersParams{ShopDomain: shopDomain}, filters)
	if err != nil {
		return nil, err
	}

	revenue, count := shopifydomain.SumPaidRevenue(orders)

	return &domain.SalesMetrics{
		TotalRevenue: utils.RoundWithTwoDecimalPlace(revenue),
		OrdersCount:  count,
	}, nil
}
