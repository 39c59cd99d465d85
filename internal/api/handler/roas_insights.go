package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"github.com/vfg2006/roas-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/roas-manager-api/pkg/log"
	"github.com/vfg2006/roas-manager-api/pkg/utils"
)

// GetRoasReport retorna o relatório completo de ROAS de uma conta: registros
// por campanha, totais, métricas derivadas e recomendação de orçamento
func GetRoasReport(service insighting.RoasInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("customer_id", id).Info("insights: gerando relatório de ROAS para conta")

		filters, ok := parseInsightFilters(w, r, id)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"customer_id": id,
			"start_date":  filters.StartDate.Format(time.DateOnly),
			"end_date":    filters.EndDate.Format(time.DateOnly),
		}).Debug("insights: consultando relatório com filtros")

		report, err := service.GetRoasReport(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"start_date":  filters.StartDate.Format(time.DateOnly),
				"end_date":    filters.EndDate.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("insights: falha ao gerar relatório de ROAS")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id":  id,
			"account_name": report.AccountName,
			"records":      len(report.Records),
		}).Info("insights: relatório de ROAS gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("insights: falha ao codificar resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAccountTotals retorna apenas os totais agregados e as métricas derivadas
// da conta, sem vendas e sem recomendação
func GetAccountTotals(service insighting.RoasInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("customer_id", id).Info("insights: consultando totais agregados da conta")

		filters, ok := parseInsightFilters(w, r, id)
		if !ok {
			return
		}

		totals, err := service.GetAccountTotals(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"start_date":  filters.StartDate.Format(time.DateOnly),
				"end_date":    filters.EndDate.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("insights: falha ao consultar totais da conta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(totals); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("insights: falha ao codificar resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseInsightFilters extrai e valida start_date e end_date da query string.
// Em caso de erro a resposta já foi escrita e o retorno é false
func parseInsightFilters(w http.ResponseWriter, r *http.Request, id string) (*domain.InsightFilters, bool) {
	logger := log.ForContext(r.Context())

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"customer_id": id,
			"start_date":  r.URL.Query().Get("start_date"),
			"error":       err.Error(),
		}).Warn("insights: parâmetro start_date inválido")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"customer_id": id,
			"end_date":    r.URL.Query().Get("end_date"),
			"error":       err.Error(),
		}).Warn("insights: parâmetro end_date inválido")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, true
}
