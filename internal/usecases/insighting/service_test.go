package insighting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gadsmocks "github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/mocks"
	shopifymocks "github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify/mocks"
	"github.com/vfg2006/roas-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func testAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:         "ACC001",
		CustomerID: "1234567890",
		Name:       "Loja Exemplo",
		ShopDomain: stringPtr("loja-exemplo.myshopify.com"),
		Status:     domain.AdAccountActive,
	}
}

func testFilters() *domain.InsightFilters {
	return &domain.InsightFilters{
		StartDate: timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:   timePtr(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)),
	}
}

func TestGetRoasReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	mockShopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)

	service := NewService(&config.Config{}, mockAdsService, mockShopifyService, mockAccountRepo)

	account := testAccount()
	filters := testFilters()

	records := []domain.MetricRecord{
		{
			EntityID:    "111",
			EntityName:  "Campanha Verão",
			Cost:        100,
			Clicks:      500,
			Impressions: 10000,
			Conversions: 20,
			Revenue:     150,
		},
	}

	mockAccountRepo.EXPECT().
		GetAccountByCustomerID(account.CustomerID).
		Return(account, nil)

	mockAdsService.EXPECT().
		GetCampaignMetrics(account.CustomerID, filters).
		Return(records, nil)

	mockShopifyService.EXPECT().
		GetSalesMetrics(*account.ShopDomain, filters).
		Return(&domain.SalesMetrics{TotalRevenue: 500, OrdersCount: 8}, nil)

	report, err := service.GetRoasReport(account.CustomerID, filters)
	require.NoError(t, err)

	assert.Equal(t, account.ID, report.AccountID)
	assert.Equal(t, account.Name, report.AccountName)
	assert.Len(t, report.Records, 1)

	// A receita do Shopify substitui a receita de conversões do Google Ads
	assert.InDelta(t, 500.0, report.Totals.TotalRevenue, 0.001)
	assert.InDelta(t, 5.0, report.Metrics.ROAS, 0.001)
	assert.InDelta(t, 400.0, report.Metrics.ROI, 0.001)

	require.NotNil(t, report.Recommendation)
	assert.Equal(t, domain.ActionIncreaseBudget, report.Recommendation.Action)
	assert.InDelta(t, 0.25, report.Recommendation.SuggestedBudgetChangeFraction, 0.001)
}

func TestGetRoasReportShopifyUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	mockShopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)

	service := NewService(&config.Config{}, mockAdsService, mockShopifyService, mockAccountRepo)

	account := testAccount()
	filters := testFilters()

	records := []domain.MetricRecord{
		{EntityID: "111", EntityName: "Campanha Verão", Cost: 100, Revenue: 150},
	}

	mockAccountRepo.EXPECT().
		GetAccountByCustomerID(account.CustomerID).
		Return(account, nil)

	mockAdsService.EXPECT().
		GetCampaignMetrics(account.CustomerID, filters).
		Return(records, nil)

	mockShopifyService.EXPECT().
		GetSalesMetrics(*account.ShopDomain, filters).
		Return(nil, fmt.Errorf("shopify indisponível"))

	report, err := service.GetRoasReport(account.CustomerID, filters)
	require.NoError(t, err)

	// Sem vendas o ROAS cai para a receita de conversões do Google Ads
	assert.Nil(t, report.Sales)
	assert.InDelta(t, 150.0, report.Totals.TotalRevenue, 0.001)
	assert.InDelta(t, 1.5, report.Metrics.ROAS, 0.001)
}

func TestGetRoasReportAdsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	mockShopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)

	service := NewService(&config.Config{}, mockAdsService, mockShopifyService, mockAccountRepo)

	account := testAccount()
	filters := testFilters()

	mockAccountRepo.EXPECT().
		GetAccountByCustomerID(account.CustomerID).
		Return(account, nil)

	mockAdsService.EXPECT().
		GetCampaignMetrics(account.CustomerID, filters).
		Return(nil, fmt.Errorf("google ads indisponível"))

	mockShopifyService.EXPECT().
		GetSalesMetrics(*account.ShopDomain, filters).
		Return(&domain.SalesMetrics{TotalRevenue: 500}, nil)

	report, err := service.GetRoasReport(account.CustomerID, filters)
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestGetRoasReportValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	mockShopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)

	service := NewService(&config.Config{}, mockAdsService, mockShopifyService, mockAccountRepo)

	t.Run("Filtros sem datas são rejeitados", func(t *testing.T) {
		_, err := service.GetRoasReport("1234567890", &domain.InsightFilters{})
		require.Error(t, err)
	})

	t.Run("Datas zero não passam pela validação de período", func(t *testing.T) {
		// Equivalente a uma requisição sem start_date/end_date na query string:
		// não pode chegar na API do Google Ads com a data 0001-01-01
		filters := &domain.InsightFilters{
			StartDate: timePtr(time.Time{}),
			EndDate:   timePtr(time.Time{}),
		}

		_, err := service.GetRoasReport("1234567890", filters)
		require.Error(t, err)
	})

	t.Run("Data de início posterior à data de fim é rejeitada", func(t *testing.T) {
		filters := &domain.InsightFilters{
			StartDate: timePtr(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
			EndDate:   timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		}

		_, err := service.GetRoasReport("1234567890", filters)
		require.Error(t, err)
	})

	t.Run("Conta inexistente resulta em erro", func(t *testing.T) {
		mockAccountRepo.EXPECT().
			GetAccountByCustomerID("0000000000").
			Return(nil, nil)

		_, err := service.GetRoasReport("0000000000", testFilters())
		require.Error(t, err)
	})
}

func TestGetAccountTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	mockShopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)

	service := NewService(&config.Config{}, mockAdsService, mockShopifyService, mockAccountRepo)

	account := testAccount()
	filters := testFilters()

	records := []domain.MetricRecord{
		{EntityID: "111", Cost: 100, Clicks: 200, Impressions: 4000, Conversions: 10, Revenue: 300},
	}

	mockAccountRepo.EXPECT().
		GetAccountByCustomerID(account.CustomerID).
		Return(account, nil)

	mockAdsService.EXPECT().
		GetCampaignMetrics(account.CustomerID, filters).
		Return(records, nil)

	report, err := service.GetAccountTotals(account.CustomerID, filters)
	require.NoError(t, err)

	// Totais e métricas sem vendas e sem recomendação
	assert.Nil(t, report.Sales)
	assert.Nil(t, report.Recommendation)
	assert.InDelta(t, 100.0, report.Totals.TotalCost, 0.001)
	assert.InDelta(t, 3.0, report.Metrics.ROAS, 0.001)
	assert.InDelta(t, 200.0, report.Metrics.ROI, 0.001)
}

func TestGetCampaignRecordsWithCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	mockShopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)
	mockAdInsightRepo := mocks.NewMockAdInsightRepository(ctrl)
	mockSalesInsightRepo := mocks.NewMockSalesInsightRepository(ctrl)

	service := NewService(&config.Config{}, mockAdsService, mockShopifyService, mockAccountRepo).
		WithCache(mockAdInsightRepo, mockSalesInsightRepo)

	account := testAccount()
	filters := testFilters()

	t.Run("Período totalmente em cache não consulta a API", func(t *testing.T) {
		cached := []*domain.AdInsightEntry{
			{
				AccountID: account.ID,
				Date:      *filters.StartDate,
				Records: []domain.MetricRecord{
					{EntityID: "111", EntityName: "Campanha Verão", Cost: 40, Clicks: 10, Revenue: 100},
				},
			},
			{
				AccountID: account.ID,
				Date:      *filters.EndDate,
				Records: []domain.MetricRecord{
					{EntityID: "111", EntityName: "Campanha Verão", Cost: 60, Clicks: 20, Revenue: 200},
				},
			},
		}

		mockAdInsightRepo.EXPECT().
			GetByDateRange(account.ID, *filters.StartDate, *filters.EndDate).
			Return(cached, nil)

		records, err := service.GetCampaignRecords(account, filters)
		require.NoError(t, err)

		// Os dias são combinados em um registro por campanha
		require.Len(t, records, 1)
		assert.Equal(t, "111", records[0].EntityID)
		assert.InDelta(t, 100.0, records[0].Cost, 0.001)
		assert.Equal(t, int64(30), records[0].Clicks)
		assert.InDelta(t, 300.0, records[0].Revenue, 0.001)
	})

	t.Run("Datas faltantes são buscadas na API e salvas", func(t *testing.T) {
		cached := []*domain.AdInsightEntry{
			{
				AccountID: account.ID,
				Date:      *filters.StartDate,
				Records: []domain.MetricRecord{
					{EntityID: "111", EntityName: "Campanha Verão", Cost: 40, Revenue: 100},
				},
			},
		}

		fetched := []domain.MetricRecord{
			{EntityID: "111", EntityName: "Campanha Verão", Cost: 60, Revenue: 200},
		}

		mockAdInsightRepo.EXPECT().
			GetByDateRange(account.ID, *filters.StartDate, *filters.EndDate).
			Return(cached, nil)

		mockAdsService.EXPECT().
			GetCampaignMetrics(account.CustomerID, gomock.Any()).
			Return(fetched, nil)

		mockAdInsightRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		records, err := service.GetCampaignRecords(account, filters)
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.InDelta(t, 100.0, records[0].Cost, 0.001)
		assert.InDelta(t, 300.0, records[0].Revenue, 0.001)
	})
}

func TestGetSalesMetricsWithCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)
	mockShopifyService := shopifymocks.NewMockShopifyIntegrator(ctrl)
	mockAdInsightRepo := mocks.NewMockAdInsightRepository(ctrl)
	mockSalesInsightRepo := mocks.NewMockSalesInsightRepository(ctrl)

	service := NewService(&config.Config{}, mockAdsService, mockShopifyService, mockAccountRepo).
		WithCache(mockAdInsightRepo, mockSalesInsightRepo)

	account := testAccount()
	filters := testFilters()

	t.Run("Conta sem loja Shopify resulta em erro", func(t *testing.T) {
		noShop := testAccount()
		noShop.ShopDomain = nil

		_, err := service.GetSalesMetrics(noShop, filters)
		require.Error(t, err)
	})

	t.Run("Soma a receita dos dias em cache", func(t *testing.T) {
		cached := []*domain.SalesInsightEntry{
			{
				AccountID: account.ID,
				Date:      *filters.StartDate,
				Sales:     &domain.SalesMetrics{TotalRevenue: 120.50, OrdersCount: 3},
			},
			{
				AccountID: account.ID,
				Date:      *filters.EndDate,
				Sales:     &domain.SalesMetrics{TotalRevenue: 79.50, OrdersCount: 2},
			},
		}

		mockSalesInsightRepo.EXPECT().
			GetByDateRange(account.ID, *filters.StartDate, *filters.EndDate).
			Return(cached, nil)

		sales, err := service.GetSalesMetrics(account, filters)
		require.NoError(t, err)

		assert.InDelta(t, 200.0, sales.TotalRevenue, 0.001)
		assert.Equal(t, 5, sales.OrdersCount)
	})
}
