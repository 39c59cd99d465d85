package shopifyclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/roas-manager-api/infrastructure/integrator/shopify/domain"
)

const ordersPageLimit = 250

var nextPageInfoPattern = regexp.MustCompile(`<[^>]*[?&]page_info=([^&>]+)[^>]*>;\s*rel="next"`)

type ordersResponse struct {
	Orders []shopifydomain.Order `json:"orders"`
}

// GetOrders busca os pedidos criados no período, seguindo a paginação por
// cursor (page_info) da Admin API
func (c *ShopifyClient) GetOrders(params OrdersConsultationParams) ([]shopifydomain.Order, error) {
	orders := make([]shopifydomain.Order, 0)
	pageInfo := ""

	for {
		pageOrders, nextPageInfo, err := c.getOrdersPage(params, pageInfo)
		if err != nil {
			return nil, err
		}

		orders = append(orders, pageOrders...)

		if nextPageInfo == "" {
			break
		}
		pageInfo = nextPageInfo
	}

	return orders, nil
}

func (c *ShopifyClient) getOrdersPage(params OrdersConsultationParams, pageInfo string) ([]shopifydomain.Order, string, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", ordersPageLimit))

	// A Admin API rejeita filtros combinados com page_info: somente a
	// primeira página leva o filtro de datas
	if pageInfo == "" {
		query.Set("status", "any")
		query.Set("created_at_min", params.StartDate+"T00:00:00Z")
		query.Set("created_at_max", params.EndDate+"T23:59:59Z")
	} else {
		query.Set("page_info", pageInfo)
	}

	endpoint := fmt.Sprintf(
		"https://%s/admin/api/%s/orders.json?%s",
		params.ShopDomain,
		c.Cfg.Shopify.APIVersion,
		query.Encode(),
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para o Shopify")
		return nil, "", err
	}

	req.Header.Set("X-Shopify-Access-Token", params.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para o Shopify")
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao ler resposta do Shopify")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("requisição ao Shopify falhou com status %d: %s", resp.StatusCode, string(body))
	}

	var response ordersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, "", errors.Wrap(err, "erro ao decodificar pedidos do Shopify")
	}

	return response.Orders, extractNextPageInfo(resp.Header.Get("Link")), nil
}

// extractNextPageInfo obtém o cursor da próxima página do header Link
func extractNextPageInfo(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	matches := nextPageInfoPattern.FindStringSubmatch(linkHeader)
	if len(matches) < 2 {
		return ""
	}

	return matches[1]
}
