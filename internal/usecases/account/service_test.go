package account

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gadsdomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/domain"
	gadsmocks "github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/roas-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestSyncAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)

	service := NewService(mockAccountRepo, mockAdsService, &config.Config{})

	clients := []gadsdomain.CustomerClient{
		{ID: "1234567890", DescriptiveName: "Loja Exemplo", Status: "ENABLED"},
		{ID: "9876543210", DescriptiveName: "Loja Pausada", Status: "SUSPENDED"},
	}

	mockAdsService.EXPECT().ListAccounts().Return(clients, nil)
	mockAccountRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(accounts []*domain.AdAccount) error {
			require.Len(t, accounts, 2)
			assert.Equal(t, "1234567890", accounts[0].CustomerID)
			assert.Equal(t, domain.AdAccountActive, accounts[0].Status)
			assert.Equal(t, domain.AdAccountPaused, accounts[1].Status)
			return nil
		})

	total, err := service.SyncAccounts()
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestSyncAccountsIntegratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)

	service := NewService(mockAccountRepo, mockAdsService, &config.Config{})

	mockAdsService.EXPECT().ListAccounts().Return(nil, fmt.Errorf("api indisponível"))

	total, err := service.SyncAccounts()
	require.Error(t, err)
	assert.Equal(t, 0, total)
}

func TestUpdateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)

	cfg := &config.Config{
		ShopifyTokens: map[string]string{
			"loja-exemplo.myshopify.com": "shpat_token",
		},
	}

	service := NewService(mockAccountRepo, mockAdsService, cfg)

	request := &domain.UpdateAdAccountRequest{
		ID:         "ACC001",
		Nickname:   stringPtr("Loja Principal"),
		ShopDomain: stringPtr("loja-exemplo.myshopify.com"),
	}

	mockAccountRepo.EXPECT().GetAccountByID("ACC001").Return(&domain.AdAccount{ID: "ACC001"}, nil)
	mockAccountRepo.EXPECT().UpdateAccount(request).Return(nil)

	err := service.UpdateAccount(request)
	require.NoError(t, err)
}

func TestUpdateAccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)

	service := NewService(mockAccountRepo, mockAdsService, &config.Config{})

	mockAccountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)

	err := service.UpdateAccount(&domain.UpdateAdAccountRequest{ID: "ACC404"})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestUpdateAccountShopTokenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdsService := gadsmocks.NewMockAdsIntegrator(ctrl)

	service := NewService(mockAccountRepo, mockAdsService, &config.Config{ShopifyTokens: map[string]string{}})

	mockAccountRepo.EXPECT().GetAccountByID("ACC001").Return(&domain.AdAccount{ID: "ACC001"}, nil)

	err := service.UpdateAccount(&domain.UpdateAdAccountRequest{
		ID:         "ACC001",
		ShopDomain: stringPtr("loja-sem-token.myshopify.com"),
	})
	assert.ErrorIs(t, err, ErrShopTokenMissing)
}
