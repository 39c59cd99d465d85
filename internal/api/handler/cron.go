package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-manager-api/internal/domain"
	"github.com/vfg2006/roas-manager-api/internal/scheduler"
	"github.com/vfg2006/roas-manager-api/pkg/apiErrors"
	"github.com/vfg2006/roas-manager-api/pkg/middleware"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeAds   = "ads"
	CronJobTypeSales = "sales"
	CronJobTypeAll   = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AdsInsightSyncService   *scheduler.AdsInsightSyncService
	SalesInsightSyncService *scheduler.SalesInsightSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAds:
			if services.AdsInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do Google Ads não disponível", nil)
				return
			}
			services.AdsInsightSyncService.TriggerManualSync()

		case CronJobTypeSales:
			if services.SalesInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de vendas não disponível", nil)
				return
			}
			services.SalesInsightSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.AdsInsightSyncService != nil {
				services.AdsInsightSyncService.TriggerManualSync()
			}
			if services.SalesInsightSyncService != nil {
				services.SalesInsightSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ads, sales, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"ads":   services.AdsInsightSyncService.GetStatus(),
			"sales": services.SalesInsightSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
