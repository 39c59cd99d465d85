package insighting

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/roas-manager-api/infrastructure/repository"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"github.com/vfg2006/roas-manager-api/pkg/utils"
)

// Número máximo de chamadas simultâneas às APIs ao preencher datas faltantes
const maxConcurrentFetches = 5

// Service implementa RoasInsighter combinando Google Ads, Shopify e o cache
// diário em Postgres
type Service struct {
	cfg                    *config.Config
	adsService             googleads.AdsIntegrator
	shopifyService         shopify.ShopifyIntegrator
	accountRepository      repository.AccountRepository
	adInsightRepository    repository.AdInsightRepository
	salesInsightRepository repository.SalesInsightRepository
	useCache               bool
}

// NewService cria o serviço de insights sem cache habilitado
func NewService(
	cfg *config.Config,
	adsService googleads.AdsIntegrator,
	shopifyService shopify.ShopifyIntegrator,
	accountRepo repository.AccountRepository,
) *Service {
	return &Service{
		cfg:               cfg,
		adsService:        adsService,
		shopifyService:    shopifyService,
		accountRepository: accountRepo,
	}
}

// WithCache habilita o cache diário de insights
func (s *Service) WithCache(
	adInsightRepo repository.AdInsightRepository,
	salesInsightRepo repository.SalesInsightRepository,
) *Service {
	s.adInsightRepository = adInsightRepo
	s.salesInsightRepository = salesInsightRepo
	s.useCache = (adInsightRepo != nil && salesInsightRepo != nil)
	return s
}

func (s *Service) GetRoasReport(customerID string, filters *domain.InsightFilters) (*domain.RoasReport, error) {
	account, err := s.loadAccount(customerID, filters)
	if err != nil {
		return nil, err
	}

	var (
		records    []domain.MetricRecord
		sales      *domain.SalesMetrics
		adsError   error
		salesError error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		records, adsError = s.GetCampaignRecords(account, filters)
	}()

	go func() {
		defer wg.Done()
		if account.HasShopify() {
			sales, salesError = s.GetSalesMetrics(account, filters)
		}
	}()

	wg.Wait()

	if adsError != nil {
		return nil, adsError
	}

	// Vendas indisponíveis não invalidam o relatório: o ROAS cai para a
	// receita de conversões do próprio Google Ads
	if salesError != nil {
		logrus.WithError(salesError).WithField("account_id", account.ID).
			Warn("Erro ao obter vendas do Shopify, usando receita de conversões do Google Ads")
		sales = nil
	}

	report := domain.BuildRoasReport(records, sales, filters)
	report.AccountID = account.ID
	report.AccountName = account.Name

	return report, nil
}

func (s *Service) GetAccountTotals(customerID string, filters *domain.InsightFilters) (*domain.RoasReport, error) {
	account, err := s.loadAccount(customerID, filters)
	if err != nil {
		return nil, err
	}

	records, err := s.GetCampaignRecords(account, filters)
	if err != nil {
		return nil, err
	}

	totals := domain.AggregateRecords(records)

	return &domain.RoasReport{
		AccountID:   account.ID,
		AccountName: account.Name,
		Records:     records,
		Totals:      totals,
		Metrics:     domain.CalculateDerivedMetrics(totals),
		Filters:     filters,
	}, nil
}

// GetCampaignRecords obtém os registros de campanha do período, combinando os
// dias já presentes no cache com os buscados da API
func (s *Service) GetCampaignRecords(account *domain.AdAccount, filters *domain.InsightFilters) ([]domain.MetricRecord, error) {
	if !s.useCache {
		return s.adsService.GetCampaignMetrics(account.CustomerID, filters)
	}

	allDates := utils.DateRange(filters.StartDate, filters.EndDate)
	if len(allDates) == 0 {
		return nil, fmt.Errorf("período de datas inválido")
	}

	entries, err := s.getAdEntriesWithCache(account, filters, allDates)
	if err != nil {
		return nil, err
	}

	return mergeRecords(entries), nil
}

// GetSalesMetrics obtém as vendas do período, combinando os dias já presentes
// no cache com os buscados da API
func (s *Service) GetSalesMetrics(account *domain.AdAccount, filters *domain.InsightFilters) (*domain.SalesMetrics, error) {
	if !account.HasShopify() {
		return nil, fmt.Errorf("conta sem loja Shopify vinculada: %s", account.ID)
	}

	if !s.useCache {
		return s.shopifyService.GetSalesMetrics(*account.ShopDomain, filters)
	}

	allDates := utils.DateRange(filters.StartDate, filters.EndDate)
	if len(allDates) == 0 {
		return nil, fmt.Errorf("período de datas inválido")
	}

	entries, err := s.getSalesEntriesWithCache(account, filters, allDates)
	if err != nil {
		return nil, err
	}

	return mergeSales(entries), nil
}

func (s *Service) loadAccount(customerID string, filters *domain.InsightFilters) (*domain.AdAccount, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil ||
		filters.StartDate.IsZero() || filters.EndDate.IsZero() {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	account, err := s.accountRepository.GetAccountByCustomerID(customerID)
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).
			Error("Erro ao buscar conta pelo customer ID no repositório")
		return nil, err
	}

	if account == nil {
		return nil, fmt.Errorf("conta não encontrada: %s", customerID)
	}

	return account, nil
}

// getAdEntriesWithCache busca os dias do período no banco e preenche as datas
// faltantes pela API do Google Ads
func (s *Service) getAdEntriesWithCache(
	account *domain.AdAccount,
	filters *domain.InsightFilters,
	allDates []time.Time,
) ([]*domain.AdInsightEntry, error) {
	existingDates := make(map[string]bool)
	entries := make([]*domain.AdInsightEntry, 0)

	periodEntries, err := s.adInsightRepository.GetByDateRange(account.ID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": account.ID,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Warn("Erro ao buscar insights de anúncios do banco de dados para o período")
	} else {
		for _, entry := range periodEntries {
			entries = append(entries, entry)
			existingDates[entry.Date.Format(time.DateOnly)] = true
		}
	}

	var missingDates []time.Time
	for _, date := range allDates {
		if !existingDates[date.Format(time.DateOnly)] {
			missingDates = append(missingDates, date)
		}
	}

	if len(missingDates) == 0 {
		return entries, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"customer_id":   account.CustomerID,
		"missing_dates": len(missingDates),
		"total_dates":   len(allDates),
	}).Info("Buscando insights de anúncios da API para datas faltantes")

	semaphore := make(chan struct{}, maxConcurrentFetches)
	var fetchWg sync.WaitGroup
	var mutex sync.Mutex

	for _, date := range missingDates {
		fetchWg.Add(1)

		go func(date time.Time) {
			defer fetchWg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			dailyFilter := &domain.InsightFilters{
				StartDate: &date,
				EndDate:   &date,
			}

			records, err := s.adsService.GetCampaignMetrics(account.CustomerID, dailyFilter)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id":  account.ID,
					"customer_id": account.CustomerID,
					"date":        date.Format(time.DateOnly),
				}).Warn("Erro ao obter insights de anúncios do Google Ads")
				return
			}

			entry := &domain.AdInsightEntry{
				AccountID:  account.ID,
				CustomerID: account.CustomerID,
				Date:       date,
				Records:    records,
			}

			// O dia corrente ainda está em andamento e não vai para o cache
			if date.Format(time.DateOnly) != time.Now().Format(time.DateOnly) {
				if err := s.adInsightRepository.SaveOrUpdate(entry); err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"account_id": account.ID,
						"date":       date.Format(time.DateOnly),
					}).Warn("Erro ao salvar insights de anúncios no banco de dados")
				}
			}

			mutex.Lock()
			entries = append(entries, entry)
			mutex.Unlock()
		}(date)
	}

	fetchWg.Wait()

	return entries, nil
}

// getSalesEntriesWithCache busca os dias de vendas no banco e preenche as
// datas faltantes pela API do Shopify
func (s *Service) getSalesEntriesWithCache(
	account *domain.AdAccount,
	filters *domain.InsightFilters,
	allDates []time.Time,
) ([]*domain.SalesInsightEntry, error) {
	existingDates := make(map[string]bool)
	entries := make([]*domain.SalesInsightEntry, 0)

	periodEntries, err := s.salesInsightRepository.GetByDateRange(account.ID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": account.ID,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Warn("Erro ao buscar insights de vendas do banco de dados para o período")
	} else {
		for _, entry := range periodEntries {
			entries = append(entries, entry)
			existingDates[entry.Date.Format(time.DateOnly)] = true
		}
	}

	var missingDates []time.Time
	for _, date := range allDates {
		if !existingDates[date.Format(time.DateOnly)] {
			missingDates = append(missingDates, date)
		}
	}

	if len(missingDates) == 0 {
		return entries, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"shop_domain":   *account.ShopDomain,
		"missing_dates": len(missingDates),
		"total_dates":   len(allDates),
	}).Info("Buscando insights de vendas da API para datas faltantes")

	semaphore := make(chan struct{}, maxConcurrentFetches)
	var fetchWg sync.WaitGroup
	var mutex sync.Mutex

	for _, date := range missingDates {
		fetchWg.Add(1)

		go func(date time.Time) {
			defer fetchWg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			dailyFilter := &domain.InsightFilters{
				StartDate: &date,
				EndDate:   &date,
			}

			sales, err := s.shopifyService.GetSalesMetrics(*account.ShopDomain, dailyFilter)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id":  account.ID,
					"shop_domain": *account.ShopDomain,
					"date":        date.Format(time.DateOnly),
				}).Warn("Erro ao obter vendas do Shopify")
				return
			}

			entry := &domain.SalesInsightEntry{
				AccountID: account.ID,
				Date:      date,
				Sales:     sales,
			}

			if date.Format(time.DateOnly) != time.Now().Format(time.DateOnly) {
				if err := s.salesInsightRepository.SaveOrUpdate(entry); err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"account_id": account.ID,
						"date":       date.Format(time.DateOnly),
					}).Warn("Erro ao salvar insights de vendas no banco de dados")
				}
			}

			mutex.Lock()
			entries = append(entries, entry)
			mutex.Unlock()
		}(date)
	}

	fetchWg.Wait()

	return entries, nil
}

// mergeRecords combina os registros diários em um registro por campanha,
// somando cada métrica. A saída é ordenada por custo decrescente apenas para
// exibição; a agregação em si não depende de ordem
func mergeRecords(entries []*domain.AdInsightEntry) []domain.MetricRecord {
	byEntity := make(map[string]*domain.MetricRecord)

	for _, entry := range entries {
		for _, record := range entry.Records {
			existing, ok := byEntity[record.EntityID]
			if !ok {
				recordCopy := record
				byEntity[record.EntityID] = &recordCopy
				continue
			}

			existing.Cost += record.Cost
			existing.Clicks += record.Clicks
			existing.Impressions += record.Impressions
			existing.Conversions += record.Conversions
			existing.Revenue += record.Revenue
		}
	}

	merged := make([]domain.MetricRecord, 0, len(byEntity))
	for _, record := range byEntity {
		record.Cost = utils.RoundWithTwoDecimalPlace(record.Cost)
		record.Revenue = utils.RoundWithTwoDecimalPlace(record.Revenue)
		merged = append(merged, *record)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Cost != merged[j].Cost {
			return merged[i].Cost > merged[j].Cost
		}
		return merged[i].EntityID < merged[j].EntityID
	})

	return merged
}

// mergeSales soma a receita e a quantidade de pedidos dos dias do período
func mergeSales(entries []*domain.SalesInsightEntry) *domain.SalesMetrics {
	merged := &domain.SalesMetrics{}

	for _, entry := range entries {
		if entry.Sales == nil {
			continue
		}
		merged.TotalRevenue += entry.Sales.TotalRevenue
		merged.OrdersCount += entry.Sales.OrdersCount
	}

	merged.TotalRevenue = utils.RoundWithTwoDecimalPlace(merged.TotalRevenue)

	return merged
}
