package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	GoogleAds        GoogleAds        `mapstructure:",squash"`
	Shopify          Shopify          `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	AdsInsightSync   AdsInsightSync   `mapstructure:",squash"`
	SalesInsightSync SalesInsightSync `mapstructure:",squash"`
	ShopifyTokens    map[string]string `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	URL             string `mapstructure:"-"`
	Version         string `mapstructure:"google_ads_version"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	ClientID        string `mapstructure:"google_ads_client_id"`
	ClientSecret    string `mapstructure:"google_ads_client_secret"`
	RefreshToken    string `mapstructure:"google_ads_refresh_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	OAuthTokenURL   string `mapstructure:"google_ads_oauth_token_url"`
}

type Shopify struct {
	APIVersion string `mapstructure:"shopify_api_version"`
	// ShopTokens mapeia lojas para tokens no formato "loja1:token1,loja2:token2"
	ShopTokens string `mapstructure:"shopify_shop_tokens"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type AdsInsightSync struct {
	CronSchedule        string `mapstructure:"ads_insight_sync_cron"`
	LookbackDays        int    `mapstructure:"ads_insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"ads_insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"ads_insight_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"ads_insight_sync_enabled"`
}

type SalesInsightSync struct {
	CronSchedule        string `mapstructure:"sales_insight_sync_cron"`
	LookbackDays        int    `mapstructure:"sales_insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"sales_insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"sales_insight_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"sales_insight_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/roas")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "your_refresh_token")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")

	viper.SetDefault("SHOPIFY_API_VERSION", "2024-07")
	viper.SetDefault("SHOPIFY_SHOP_TOKENS", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para sincronização diária de métricas de anúncios
	viper.SetDefault("ADS_INSIGHT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ADS_INSIGHT_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("ADS_INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("ADS_INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("ADS_INSIGHT_SYNC_ENABLED", false)

	// Defaults para sincronização diária de vendas do Shopify
	viper.SetDefault("SALES_INSIGHT_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("SALES_INSIGHT_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("SALES_INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("SALES_INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("SALES_INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)
	config.ShopifyTokens = parseShopTokens(config.Shopify.ShopTokens)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// parseShopTokens converte o valor "loja1:token1,loja2:token2" em um mapa
// de domínio da loja para token de acesso
func parseShopTokens(raw string) map[string]string {
	tokens := make(map[string]string)

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			logrus.Warnf("Entrada inválida em SHOPIFY_SHOP_TOKENS ignorada: %s", pair)
			continue
		}

		tokens[parts[0]] = parts[1]
	}

	return tokens
}

// loadEnvFile carrega o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
