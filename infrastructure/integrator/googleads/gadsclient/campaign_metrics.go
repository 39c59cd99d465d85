package gadsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/roas-manager-api/internal/domain"
)

const campaignMetricsQuery = `SELECT campaign.id, campaign.name, campaign.status, ` +
	`metrics.cost_micros, metrics.clicks, metrics.impressions, metrics.conversions, metrics.conversions_value ` +
	`FROM campaign WHERE segments.date BETWEEN '%s' AND '%s' AND campaign.status != 'REMOVED'`

const customerClientsQuery = `SELECT customer_client.id, customer_client.descriptive_name, customer_client.status ` +
	`FROM customer_client WHERE customer_client.level <= 1`

type searchRequest struct {
	Query string `json:"query"`
}

// SearchCampaignMetrics consulta o searchStream do Google Ads e retorna as
// linhas brutas de métricas por campanha no período informado
func (c *GoogleAdsClient) SearchCampaignMetrics(customerID string, filters *domain.InsightFilters) ([]gadsdomain.SearchRow, error) {
	query := fmt.Sprintf(
		campaignMetricsQuery,
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	chunks, err := c.searchStream(customerID, query)
	if err != nil {
		return nil, err
	}

	rows := make([]gadsdomain.SearchRow, 0)
	for _, chunk := range chunks {
		rows = append(rows, chunk.Results...)
	}

	return rows, nil
}

// ListCustomerClients lista as contas acessíveis abaixo da conta gerenciadora
func (c *GoogleAdsClient) ListCustomerClients(customerID string) ([]gadsdomain.CustomerClient, error) {
	type customerClientRow struct {
		CustomerClient *gadsdomain.CustomerClient `json:"customerClient,omitempty"`
	}
	type customerClientResponse struct {
		Results []customerClientRow `json:"results"`
	}

	body, err := c.doSearchStream(customerID, customerClientsQuery, true)
	if err != nil {
		return nil, err
	}

	var chunks []customerClientResponse
	if err := json.Unmarshal(body, &chunks); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta de customer_client")
	}

	clients := make([]gadsdomain.CustomerClient, 0)
	for _, chunk := range chunks {
		for _, row := range chunk.Results {
			if row.CustomerClient != nil {
				clients = append(clients, *row.CustomerClient)
			}
		}
	}

	return clients, nil
}

func (c *GoogleAdsClient) searchStream(customerID, query string) ([]gadsdomain.SearchResponse, error) {
	body, err := c.doSearchStream(customerID, query, true)
	if err != nil {
		return nil, err
	}

	// O searchStream responde um array JSON com um bloco de resultados por chunk
	var chunks []gadsdomain.SearchResponse
	if err := json.Unmarshal(body, &chunks); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do searchStream")
	}

	return chunks, nil
}

func (c *GoogleAdsClient) doSearchStream(customerID, query string, retryOnAuthError bool) ([]byte, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, errors.Wrap(err, "erro ao garantir token válido do Google Ads")
	}

	url := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.Cfg.GoogleAds.URL, customerID)

	payload, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para o Google Ads")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.TokenManager.AccessToken())
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para o Google Ads")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta do Google Ads")
	}

	// Token expirado: renovar uma vez e repetir a requisição
	if resp.StatusCode == http.StatusUnauthorized && retryOnAuthError {
		logrus.WithField("customer_id", customerID).Warn("Token do Google Ads expirado, renovando e repetindo a requisição")

		if err := c.RefreshToken(); err != nil {
			return nil, errors.Wrap(err, "erro ao renovar token do Google Ads após 401")
		}

		return c.doSearchStream(customerID, query, false)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao Google Ads falhou com status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
