package account

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/roas-manager-api/infrastructure/repository"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
)

type AccountService interface {
	ListAccounts() ([]*domain.AdAccount, error)
	SyncAccounts() (int, error)
	UpdateAccount(request *domain.UpdateAdAccountRequest) error
}

type Service struct {
	accountRepo repository.AccountRepository
	adsService  googleads.AdsIntegrator
	cfg         *config.Config
}

func NewService(
	accountRepo repository.AccountRepository,
	adsService googleads.AdsIntegrator,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepo: accountRepo,
		adsService:  adsService,
		cfg:         cfg,
	}
}

func (s *Service) ListAccounts() ([]*domain.AdAccount, error) {
	return s.accountRepo.ListAccounts(nil)
}

// SyncAccounts descobre as contas acessíveis abaixo da conta gerenciadora do
// Google Ads e registra as novas. Retorna a quantidade de contas processadas
func (s *Service) SyncAccounts() (int, error) {
	clients, err := s.adsService.ListAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas do Google Ads")
		return 0, err
	}

	accounts := make([]*domain.AdAccount, 0, len(clients))
	for _, client := range clients {
		status := domain.AdAccountPaused
		if client.Status == "ENABLED" {
			status = domain.AdAccountActive
		}

		accounts = append(accounts, &domain.AdAccount{
			CustomerID: client.ID,
			Name:       client.DescriptiveName,
			Status:     status,
		})
	}

	if err := s.accountRepo.SaveOrUpdate(accounts); err != nil {
		logrus.WithError(err).Error("Erro ao salvar contas sincronizadas")
		return 0, err
	}

	logrus.WithField("accounts", len(accounts)).Info("Sincronização de contas concluída")

	return len(accounts), nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) error {
	existing, err := s.accountRepo.GetAccountByID(request.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		return ErrAccountNotFound
	}

	// Vincular uma loja exige token configurado para ela
	if request.ShopDomain != nil && *request.ShopDomain != "" {
		if _, ok := s.cfg.ShopifyTokens[*request.ShopDomain]; !ok {
			return ErrShopTokenMissing
		}
	}

	return s.accountRepo.UpdateAccount(request)
}
