package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/internal/scheduler"
	"github.com/iqol/brand-pulse-api/pkg/apiErrors"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeDigest = "digest"
	CronJobTypeAll    = "all"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	BrandDigestSyncService *scheduler.BrandDigestSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDigest, CronJobTypeAll:
			if services.BrandDigestSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de digest de marcas não disponível", nil)
				return
			}
			services.BrandDigestSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: digest, all", nil)
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

		status := map[string]any{
			"digest": services.BrandDigestSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
