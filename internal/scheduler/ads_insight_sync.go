package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/roas-manager-api/infrastructure/repository"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
)

// AdsInsightSyncConfig representa a configuração do agendador de insights do Google Ads
type AdsInsightSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AdsInsightSyncService gerencia o agendamento e execução da sincronização
// diária de métricas de campanhas do Google Ads
type AdsInsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdsInsightSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	adInsightRepo       repository.AdInsightRepository
	adsService          googleads.AdsIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAdsInsightSyncService cria uma nova instância do serviço de sincronização
func NewAdsInsightSyncService(
	accountRepo repository.AccountRepository,
	adInsightRepo repository.AdInsightRepository,
	adsService googleads.AdsIntegrator,
	appConfig *config.Config,
) *AdsInsightSyncService {
	insightConfig := AdsInsightSyncConfig{
		CronSchedule:        appConfig.AdsInsightSync.CronSchedule,
		LookbackDays:        appConfig.AdsInsightSync.LookbackDays,
		RequestDelaySeconds: appConfig.AdsInsightSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AdsInsightSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AdsInsightSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         insightConfig.CronSchedule,
		"lookback_days":         insightConfig.LookbackDays,
		"request_delay_seconds": insightConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   insightConfig.MaxConcurrentJobs,
		"sync_enabled":          insightConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights do Google Ads carregada")

	return &AdsInsightSyncService{
		scheduler:     scheduler,
		config:        insightConfig,
		appConfig:     appConfig,
		accountRepo:   accountRepo,
		adInsightRepo: adInsightRepo,
		adsService:    adsService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *AdsInsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights do Google Ads desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de insights do Google Ads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAdsInsights()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights do Google Ads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de insights do Google Ads")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAdsInsights sincroniza as métricas do Google Ads de todas as contas ativas
func (s *AdsInsightSyncService) syncAllAdsInsights() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights do Google Ads já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de insights do Google Ads para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de insights do Google Ads")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de insights do Google Ads")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização de insights do Google Ads")

	s.processAdsInsightsForDates(activeAccounts, dates)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de insights do Google Ads concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveAccounts busca e filtra contas ativas
func (s *AdsInsightSyncService) getActiveAccounts() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de insights do Google Ads")
		return []*domain.AdAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de insights do Google Ads")

	return activeAccounts, nil
}

// getDatesToProcess cria um conjunto de datas para processar
func (s *AdsInsightSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Começar de ontem e ir para trás
	}
	return dates
}

// processAdsInsightsForDates processa métricas para cada conta e todas as suas datas
func (s *AdsInsightSyncService) processAdsInsightsForDates(accounts []*domain.AdAccount, dates []time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.CustomerID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem customer_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"customer_id":  acc.CustomerID,
				"account_name": acc.Name,
				"total_dates":  len(dates),
			}).Info("Processando insights do Google Ads para conta")

			s.processAccountForAllDates(acc, dates)
		}(account)
	}

	wg.Wait()
}

// processAccountForAllDates processa as métricas de uma conta em todas as datas
func (s *AdsInsightSyncService) processAccountForAllDates(acc *domain.AdAccount, dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	for _, date := range dates {
		s.processAccountAdsInsights(acc, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processAccountAdsInsights processa as métricas de uma conta e data específicas
func (s *AdsInsightSyncService) processAccountAdsInsights(acc *domain.AdAccount, date time.Time) {
	filters := &domain.InsightFilters{
		StartDate: &date,
		EndDate:   &date,
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   acc.ID,
		"customer_id":  acc.CustomerID,
		"account_name": acc.Name,
		"date":         date.Format(time.DateOnly),
	}).Info("Obtendo métricas do Google Ads para conta e data")

	records, err := s.adsService.GetCampaignMetrics(acc.CustomerID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"customer_id": acc.CustomerID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao obter métricas do Google Ads para conta e data")
		return
	}

	if records == nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"customer_id": acc.CustomerID,
			"date":        date.Format(time.DateOnly),
		}).Warn("Nenhuma métrica do Google Ads obtida para conta e data")
		return
	}

	adInsightEntry := &domain.AdInsightEntry{
		AccountID:  acc.ID,
		CustomerID: acc.CustomerID,
		Date:       date,
		Records:    records,
	}

	err = s.adInsightRepo.SaveOrUpdate(adInsightEntry)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"customer_id": acc.CustomerID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao salvar métricas do Google Ads no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  acc.ID,
		"customer_id": acc.CustomerID,
		"date":        date.Format(time.DateOnly),
	}).Info("Métricas do Google Ads salvas com sucesso para conta e data")
}

// TriggerManualSync inicia manualmente uma sincronização de insights do Google Ads
func (s *AdsInsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights do Google Ads já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de insights do Google Ads")
	go s.syncAllAdsInsights()
}

// GetStatus retorna o status atual do agendador
func (s *AdsInsightSyncService) GetStatus() map[string]any {
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
