package gadsclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-manager-api/internal/config"
)

// refreshSafetyMargin renova o token antes da expiração real para evitar
// requisições com token prestes a expirar
const refreshSafetyMargin = 5 * time.Minute

// TokenManager mantém o access token OAuth2 do Google Ads renovado a partir
// do refresh token configurado. A aquisição inicial do refresh token é feita
// fora da aplicação
type TokenManager struct {
	cfg *config.Config

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time

	stopCh chan struct{}
	once   sync.Once
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
}

// AccessToken retorna o token atual (pode estar vazio antes do primeiro refresh)
func (tm *TokenManager) AccessToken() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.accessToken
}

// EnsureValidToken renova o token se ele estiver ausente ou próximo de expirar
func (tm *TokenManager) EnsureValidToken() error {
	tm.mu.RLock()
	valid := tm.accessToken != "" && time.Now().Before(tm.expiresAt.Add(-refreshSafetyMargin))
	tm.mu.RUnlock()

	if valid {
		return nil
	}

	return tm.RefreshToken()
}

// RefreshToken troca o refresh token por um novo access token
func (tm *TokenManager) RefreshToken() error {
	form := url.Values{}
	form.Set("client_id", tm.cfg.GoogleAds.ClientID)
	form.Set("client_secret", tm.cfg.GoogleAds.ClientSecret)
	form.Set("refresh_token", tm.cfg.GoogleAds.RefreshToken)
	form.Set("grant_type", "refresh_token")

	resp, err := http.Post(
		tm.cfg.GoogleAds.OAuthTokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return errors.Wrap(err, "erro ao solicitar renovação do token do Google Ads")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler resposta de renovação do token")
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("renovação do token do Google Ads falhou com status %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return errors.Wrap(err, "erro ao decodificar resposta de renovação do token")
	}

	if token.AccessToken == "" {
		return errors.New("resposta de renovação do token sem access_token")
	}

	tm.mu.Lock()
	tm.accessToken = token.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	tm.mu.Unlock()

	logrus.WithField("expires_in", token.ExpiresIn).Debug("Token do Google Ads renovado com sucesso")

	return nil
}

// StartAutoRefresh renova o token periodicamente em background
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.RefreshToken(); err != nil {
		logrus.WithError(err).Warn("Falha na renovação inicial do token do Google Ads")
	}

	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := tm.EnsureValidToken(); err != nil {
				logrus.WithError(err).Error("Falha na renovação automática do token do Google Ads")
			}
		case <-tm.stopCh:
			logrus.Info("Renovação automática do token do Google Ads encerrada")
			return
		}
	}
}

// StopAutoRefresh encerra a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	tm.once.Do(func() {
		close(tm.stopCh)
	})
}
