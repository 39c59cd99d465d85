package domain

import "time"

type AdAccountStatus string

const (
	AdAccountActive   AdAccountStatus = "ACTIVE"
	AdAccountPaused   AdAccountStatus = "PAUSED"
	AdAccountDisabled AdAccountStatus = "DISABLED"
)

// AdAccount representa uma conta de anúncios do Google Ads registrada,
// opcionalmente vinculada a uma loja Shopify para cruzamento de receita
type AdAccount struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	ShopDomain *string         `json:"shop_domain"`
	Status     AdAccountStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type UpdateAdAccountRequest struct {
	ID         string           `json:"id"`
	Nickname   *string          `json:"nickname"`
	ShopDomain *string          `json:"shop_domain"`
	Status     *AdAccountStatus `json:"status"`
}

// HasShopify indica se a conta tem uma loja Shopify vinculada
func (a *AdAccount) HasShopify() bool {
	return a.ShopDomain != nil && *a.ShopDomain != ""
}
