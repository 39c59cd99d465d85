package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/roas-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"github.com/vfg2006/roas-manager-api/pkg/utils"
)

const (
	accountsTable = "ad_accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByCustomerID(customerID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	SaveOrUpdate(accounts []*domain.AdAccount) error
	UpdateAccount(account *domain.UpdateAdAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) GetAccountByCustomerID(customerID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.customer_id": customerID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("a.id, a.customer_id, a.name, a.nickname, a.shop_domain, a.status, a.created_at, a.updated_at").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := a.conn.QueryRow(query, args...)

	acc := &domain.AdAccount{}
	if err := row.Scan(
		&acc.ID,
		&acc.CustomerID,
		&acc.Name,
		&acc.Nickname,
		&acc.ShopDomain,
		&acc.Status,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.customer_id, a.name, a.nickname, a.shop_domain, a.status, a.created_at, a.updated_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc := &domain.AdAccount{}
		if err := rows.Scan(
			&acc.ID,
			&acc.CustomerID,
			&acc.Name,
			&acc.Nickname,
			&acc.ShopDomain,
			&acc.Status,
			&acc.CreatedAt,
			&acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// SaveOrUpdate insere novas contas descobertas na sincronização; contas já
// registradas têm apenas o nome atualizado
func (a *accountRepository) SaveOrUpdate(accounts []*domain.AdAccount) error {
	for _, account := range accounts {
		if account.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar ID da conta: %w", err)
			}
			account.ID = id
		}

		query, args, err := squirrel.StatementBuilder.
			Insert("ad_accounts").
			Columns("id", "customer_id", "name", "status").
			Values(account.ID, account.CustomerID, account.Name, account.Status).
			Suffix(`
				ON CONFLICT (customer_id) DO UPDATE SET
					name = EXCLUDED.name,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := a.conn.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao salvar conta %s: %w", account.CustomerID, err)
		}
	}

	return nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAdAccountRequest) error {
	queryBuilder := squirrel.StatementBuilder.
		Update("ad_accounts").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.ShopDomain != nil {
		queryBuilder = queryBuilder.Set("shop_domain", *account.ShopDomain)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := a.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar conta: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("conta não encontrada: %s", account.ID)
	}

	return nil
}
