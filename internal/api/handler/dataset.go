package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-dashboard/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
	"github.com/vfg2006/ecommerce-dashboard/pkg/middleware"
)

// ReloadTrigger dispara e acompanha a recarga do dataset
type ReloadTrigger interface {
	TriggerManualReload(ctx context.Context) bool
	GetStatus() map[string]any
}

// GetDatasetInfo retorna os metadados do snapshot atual
func GetDatasetInfo(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := service.Info()
		if err != nil {
			writeReportError(w, r, err)
			return
		}
		log.Annotate(r.Context(), "dataset_id", info.ID)

		writeJSON(w, r, http.StatusOK, map[string]any{
			"dataset": info,
			"reports": service.Reports(),
		})
	}
}

// ReloadDataset inicia uma recarga completa do dataset em background
func ReloadDataset(trigger ReloadTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("subject", claims.Subject)
		}

		// A recarga continua depois que a requisição termina
		if !trigger.TriggerManualReload(context.WithoutCancel(r.Context())) {
			apiErrors.WriteError(w, apiErrors.ErrReloadRunning, "Recarga do dataset já em andamento", nil)
			return
		}

		logger.Info("Recarga manual do dataset solicitada")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Recarga do dataset iniciada",
		})
	}
}

// GetReloadStatus retorna o estado do agendador de recarga
func GetReloadStatus(trigger ReloadTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, trigger.GetStatus())
	}
}
