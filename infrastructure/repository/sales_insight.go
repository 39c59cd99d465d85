package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/roas-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-manager-api/internal/domain"
)

const (
	salesInsightsTable = "sales_insights si"
)

type SalesInsightRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.SalesInsightEntry, error)
	GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.SalesInsightEntry, error)
	SaveOrUpdate(insight *domain.SalesInsightEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type salesInsightRepository struct {
	conn *postgres.Connection
}

func NewSalesInsightRepository(conn *postgres.Connection) SalesInsightRepository {
	return &salesInsightRepository{
		conn: conn,
	}
}

func (r *salesInsightRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.SalesInsightEntry, error) {
	query, args, err := squirrel.
		Select("si.id, si.account_id, si.date, si.sales, si.created_at, si.updated_at").
		From(salesInsightsTable).
		Where(squirrel.Eq{"si.account_id": accountID, "si.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	insight, err := scanSalesInsight(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight de vendas: %w", err)
	}

	return insight, nil
}

func (r *salesInsightRepository) GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.SalesInsightEntry, error) {
	query, args, err := squirrel.
		Select("si.id, si.account_id, si.date, si.sales, si.created_at, si.updated_at").
		From(salesInsightsTable).
		Where(squirrel.Eq{"si.account_id": accountID}).
		Where(squirrel.GtOrEq{"si.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"si.date": endDate.Format(time.DateOnly)}).
		OrderBy("si.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]*domain.SalesInsightEntry, 0)
	for rows.Next() {
		insight, err := scanSalesInsight(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insights de vendas: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *salesInsightRepository) SaveOrUpdate(insight *domain.SalesInsightEntry) error {
	var salesJSON []byte
	var err error

	if insight.Sales != nil {
		salesJSON, err = json.Marshal(insight.Sales)
		if err != nil {
			return fmt.Errorf("erro ao serializar vendas para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("sales_insights").
		Columns("account_id", "date", "sales").
		Values(
			insight.AccountID,
			insight.Date.Format(time.DateOnly),
			salesJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				sales = EXCLUDED.sales,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *salesInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("sales_insights").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return result.RowsAffected()
}

func scanSalesInsight(scan func(dest ...any) error) (*domain.SalesInsightEntry, error) {
	insight := &domain.SalesInsightEntry{}
	var salesJSON []byte

	err := scan(
		&insight.ID,
		&insight.AccountID,
		&insight.Date,
		&salesJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if salesJSON != nil {
		insight.Sales = &domain.SalesMetrics{}
		if err := json.Unmarshal(salesJSON, insight.Sales); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de sales: %w", err)
		}
	}

	return insight, nil
}
