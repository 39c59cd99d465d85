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
	adInsightsTable = "ad_insights ai"
)

type AdInsightRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.AdInsightEntry, error)
	GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.AdInsightEntry, error)
	SaveOrUpdate(insight *domain.AdInsightEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type adInsightRepository struct {
	conn *postgres.Connection
}

func NewAdInsightRepository(conn *postgres.Connection) AdInsightRepository {
	return &adInsightRepository{
		conn: conn,
	}
}

func (r *adInsightRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.AdInsightEntry, error) {
	query, args, err := squirrel.
		Select("ai.id, ai.account_id, ai.customer_id, ai.date, ai.records, ai.created_at, ai.updated_at").
		From(adInsightsTable).
		Where(squirrel.Eq{"ai.account_id": accountID, "ai.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	insight, err := scanAdInsight(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	return insight, nil
}

func (r *adInsightRepository) GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.AdInsightEntry, error) {
	query, args, err := squirrel.
		Select("ai.id, ai.account_id, ai.customer_id, ai.date, ai.records, ai.created_at, ai.updated_at").
		From(adInsightsTable).
		Where(squirrel.Eq{"ai.account_id": accountID}).
		Where(squirrel.GtOrEq{"ai.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ai.date": endDate.Format(time.DateOnly)}).
		OrderBy("ai.date ASC").
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

	insights := make([]*domain.AdInsightEntry, 0)
	for rows.Next() {
		insight, err := scanAdInsight(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ad insights: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func (r *adInsightRepository) SaveOrUpdate(insight *domain.AdInsightEntry) error {
	recordsJSON, err := json.Marshal(insight.Records)
	if err != nil {
		return fmt.Errorf("erro ao serializar registros para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ad_insights").
		Columns("account_id", "customer_id", "date", "records").
		Values(
			insight.AccountID,
			insight.CustomerID,
			insight.Date.Format(time.DateOnly),
			recordsJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				customer_id = EXCLUDED.customer_id,
				records = EXCLUDED.records,
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

func (r *adInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("ad_insights").
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

func scanAdInsight(scan func(dest ...any) error) (*domain.AdInsightEntry, error) {
	insight := &domain.AdInsightEntry{}
	var recordsJSON []byte

	err := scan(
		&insight.ID,
		&insight.AccountID,
		&insight.CustomerID,
		&insight.Date,
		&recordsJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if recordsJSON != nil {
		if err := json.Unmarshal(recordsJSON, &insight.Records); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de records: %w", err)
		}
	}

	return insight, nil
}
