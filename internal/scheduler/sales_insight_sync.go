package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/roas-manager-api/infrastructure/repository"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
)

// SalesInsightSyncConfig representa a configuração do agendador de vendas do Shopify
type SalesInsightSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SalesInsightSyncService gerencia o agendamento e execução da sincronização
// diária de vendas do Shopify
type SalesInsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesInsightSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	salesInsightRepo    repository.SalesInsightRepository
	shopifyService      shopify.ShopifyIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSalesInsightSyncService cria uma nova instância do serviço de sincronização de vendas
func NewSalesInsightSyncService(
	accountRepo repository.AccountRepository,
	salesInsightRepo repository.SalesInsightRepository,
	shopifyService shopify.ShopifyIntegrator,
	appConfig *config.Config,
) *SalesInsightSyncService {
	insightConfig := SalesInsightSyncConfig{
		CronSchedule:        appConfig.SalesInsightSync.CronSchedule,
		LookbackDays:        appConfig.SalesInsightSync.LookbackDays,
		RequestDelaySeconds: appConfig.SalesInsightSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SalesInsightSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.SalesInsightSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         insightConfig.CronSchedule,
		"lookback_days":         insightConfig.LookbackDays,
		"request_delay_seconds": insightConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   insightConfig.MaxConcurrentJobs,
		"sync_enabled":          insightConfig.SyncEnabled,
	}).Info("Configuração do agendador de vendas do Shopify carregada")

	return &SalesInsightSyncService{
		scheduler:        scheduler,
		config:           insightConfig,
		appConfig:        appConfig,
		accountRepo:      accountRepo,
		salesInsightRepo: salesInsightRepo,
		shopifyService:   shopifyService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *SalesInsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de vendas do Shopify desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de vendas do Shopify")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSalesInsights()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vendas do Shopify: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de vendas do Shopify")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSalesInsights sincroniza as vendas do Shopify de todas as contas ativas com loja
func (s *SalesInsightSyncService) syncAllSalesInsights() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas do Shopify já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de vendas do Shopify para todas as contas ativas")

	accounts, err := s.getAccountsWithShop()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de vendas do Shopify")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta com loja Shopify encontrada para sincronização de vendas")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização de vendas do Shopify")

	s.processSalesInsightsForDates(accounts, dates)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(accounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de vendas do Shopify concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getAccountsWithShop busca contas ativas que possuem loja Shopify vinculada
func (s *SalesInsightSyncService) getAccountsWithShop() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountActive})
	if err != nil {
		return nil, err
	}

	withShop := make([]*domain.AdAccount, 0, len(activeAccounts))
	for _, account := range activeAccounts {
		if account.HasShopify() {
			withShop = append(withShop, account)
		}
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
		"with_shop":       len(withShop),
	}).Info("Contas encontradas para sincronização de vendas do Shopify")

	return withShop, nil
}

// getDatesToProcess cria um conjunto de datas para processar
func (s *SalesInsightSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Começar de ontem e ir para trás
	}
	return dates
}

// processSalesInsightsForDates processa vendas para cada conta e todas as suas datas
func (s *SalesInsightSyncService) processSalesInsightsForDates(accounts []*domain.AdAccount, dates []time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"shop_domain":  *acc.ShopDomain,
				"account_name": acc.Name,
				"total_dates":  len(dates),
			}).Info("Processando vendas do Shopify para conta")

			s.processAccountForAllDates(acc, dates)
		}(account)
	}

	wg.Wait()
}

// processAccountForAllDates processa as vendas de uma conta em todas as datas
func (s *SalesInsightSyncService) processAccountForAllDates(acc *domain.AdAccount, dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	for _, date := range dates {
		s.processAccountSalesInsights(acc, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processAccountSalesInsights processa as vendas de uma conta e data específicas
func (s *SalesInsightSyncService) processAccountSalesInsights(acc *domain.AdAccount, date time.Time) {
	filters := &domain.InsightFilters{
		StartDate: &date,
		EndDate:   &date,
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  acc.ID,
		"shop_domain": *acc.ShopDomain,
		"date":        date.Format(time.DateOnly),
	}).Info("Obtendo vendas do Shopify para conta e data")

	sales, err := s.shopifyService.GetSalesMetrics(*acc.ShopDomain, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"shop_domain": *acc.ShopDomain,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao obter vendas do Shopify para conta e data")
		return
	}

	if sales == nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"shop_domain": *acc.ShopDomain,
			"date":        date.Format(time.DateOnly),
		}).Warn("Nenhuma venda do Shopify obtida para conta e data")
		return
	}

	salesInsightEntry := &domain.SalesInsightEntry{
		AccountID: acc.ID,
		Date:      date,
		Sales:     sales,
	}

	err = s.salesInsightRepo.SaveOrUpdate(salesInsightEntry)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"shop_domain": *acc.ShopDomain,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao salvar vendas do Shopify no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  acc.ID,
		"shop_domain": *acc.ShopDomain,
		"date":        date.Format(time.DateOnly),
	}).Info("Vendas do Shopify salvas com sucesso para conta e data")
}

// TriggerManualSync inicia manualmente uma sincronização de vendas do Shopify
func (s *SalesInsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas do Shopify já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de vendas do Shopify")
	go s.syncAllSalesInsights()
}

// GetStatus retorna o status atual do agendador
func (s *SalesInsightSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_policy":       "dados mantidos permanentemente",
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
