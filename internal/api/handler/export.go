package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/vfg2006/ecommerce-dashboard/infrastructure/exporter"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-dashboard/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportXLSX baixa os relatórios habilitados em uma planilha, uma aba por relatório
func ExportXLSX(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := service.Summaries()
		if err != nil {
			writeReportError(w, r, err)
			return
		}
		log.Annotate(r.Context(), "dataset_id", summaries.DatasetID)

		var buf bytes.Buffer
		if err := exporter.WriteXLSX(&buf, summaries); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao gerar planilha", nil)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="dashboard-%s.xlsx"`, summaries.DatasetID))
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar planilha")
		}
	}
}
