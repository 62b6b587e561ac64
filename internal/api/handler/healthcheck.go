package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
)

// HealthcheckHandler responde 200 enquanto o processo estiver de pé, com ou sem dataset carregado
func HealthcheckHandler(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := service.Info()

		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":         "ok",
			"time":           time.Now().UTC(),
			"dataset_loaded": err == nil,
		})
	})
}
