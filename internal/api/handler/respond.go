package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-dashboard/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeReportError traduz os erros do serviço de relatórios para a resposta da API
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, reporting.ErrDatasetNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, "Dataset ainda não foi carregado", nil)
	case errors.Is(err, reporting.ErrReportDisabled):
		apiErrors.WriteError(w, apiErrors.ErrReportDisabled, "Relatório não habilitado", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular relatório")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular relatório", nil)
	}
}
