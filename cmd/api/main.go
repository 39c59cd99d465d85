package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/roas-manager-api/infrastructure/repository"
	"github.com/vfg2006/roas-manager-api/internal/api"
	"github.com/vfg2006/roas-manager-api/internal/config"
	"github.com/vfg2006/roas-manager-api/internal/scheduler"
	"github.com/vfg2006/roas-manager-api/internal/usecases/account"
	"github.com/vfg2006/roas-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/roas-manager-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	adInsightRepo := repository.NewAdInsightRepository(pgConn)
	salesInsightRepo := repository.NewSalesInsightRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := gadsclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	gadsClient := gadsclient.NewClient(cfg, tokenManager)
	adsIntegrator := googleads.New(cfg, gadsClient)

	shopClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopClient)

	accountService := account.NewService(accountRepo, adsIntegrator, cfg)

	// Inicializa o serviço de insights com suporte a cache diário
	insightService := insighting.NewService(cfg, adsIntegrator, shopifyIntegrator, accountRepo)
	cachedInsightService := insightService.WithCache(adInsightRepo, salesInsightRepo)

	// Agendadores de sincronização diária
	adsInsightSyncService := scheduler.NewAdsInsightSyncService(
		accountRepo,
		adInsightRepo,
		adsIntegrator,
		cfg,
	)

	salesInsightSyncService := scheduler.NewSalesInsightSyncService(
		accountRepo,
		salesInsightRepo,
		shopifyIntegrator,
		cfg,
	)

	if err := adsInsightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights do Google Ads")
	} else {
		logrus.Info("Agendador de sincronização de insights do Google Ads iniciado com sucesso")
	}

	if err := salesInsightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de vendas do Shopify")
	} else {
		logrus.Info("Agendador de sincronização de vendas do Shopify iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedInsightService,
		accountService,
		authenticator,
		adsInsightSyncService,
		salesInsightSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
