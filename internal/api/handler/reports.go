package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-dashboard/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
	"github.com/vfg2006/ecommerce-dashboard/pkg/utils"
)

type reportResponse struct {
	Report    domain.ReportKind `json:"report"`
	Title     string            `json:"title"`
	DatasetID string            `json:"dataset_id"`
	Empty     bool              `json:"empty"`
	Rows      any               `json:"rows"`
}

type monthlyTrendRow struct {
	Month      time.Time `json:"month"`
	Period     string    `json:"period"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}

type geoResponse struct {
	reportResponse
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func newReportResponse(kind domain.ReportKind, datasetID string, rows any, size int) reportResponse {
	return reportResponse{
		Report:    kind,
		Title:     kind.Title(),
		DatasetID: datasetID,
		Empty:     size == 0,
		Rows:      rows,
	}
}

// summarize calcula um relatório e anota no log da requisição qual snapshot o atendeu
func summarize(r *http.Request, service reporting.Reporter, kind domain.ReportKind) (*domain.ReportSet, error) {
	log.Annotate(r.Context(), "report", kind)

	set, err := service.Summaries(kind)
	if err != nil {
		return nil, err
	}

	log.Annotate(r.Context(), "dataset_id", set.DatasetID)
	return set, nil
}

func toMonthlyTrendRows(trend []domain.MonthlyTrend) []monthlyTrendRow {
	rows := make([]monthlyTrendRow, 0, len(trend))
	for _, row := range trend {
		rows = append(rows, monthlyTrendRow{
			Month:      row.Month,
			Period:     row.Period(),
			OrderCount: row.OrderCount,
			Revenue:    utils.MoneyToFloat(row.Revenue),
		})
	}
	return rows
}

// GetPaymentMethods retorna a contagem de pagamentos por método
func GetPaymentMethods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set, err := summarize(r, service, domain.ReportPaymentMethods)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		summary := set.PaymentMethods
		writeJSON(w, r, http.StatusOK, newReportResponse(domain.ReportPaymentMethods, set.DatasetID, summary, len(summary)))
	}
}

// GetOrderStatus retorna a contagem de pedidos por status
func GetOrderStatus(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set, err := summarize(r, service, domain.ReportOrderStatus)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		summary := set.OrderStatus
		writeJSON(w, r, http.StatusOK, newReportResponse(domain.ReportOrderStatus, set.DatasetID, summary, len(summary)))
	}
}

// GetMonthlyTrend retorna pedidos e receita por mês
func GetMonthlyTrend(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set, err := summarize(r, service, domain.ReportMonthlyTrend)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		rows := toMonthlyTrendRows(set.MonthlyTrend)
		writeJSON(w, r, http.StatusOK, newReportResponse(domain.ReportMonthlyTrend, set.DatasetID, rows, len(rows)))
	}
}

// GetGeo retorna as cidades com mais compradores, limitadas por ?limit=
func GetGeo(service reporting.Reporter, cfg config.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r.URL.Query().Get("limit"), cfg)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", map[string]int{
				"min": 1,
				"max": cfg.GeoMaxLimit,
			})
			return
		}
		log.Annotate(r.Context(), "limit", limit)

		set, err := summarize(r, service, domain.ReportGeo)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		rows := capRows(set.Geo, limit)
		writeJSON(w, r, http.StatusOK, geoResponse{
			reportResponse: newReportResponse(domain.ReportGeo, set.DatasetID, rows, len(rows)),
			Limit:          limit,
			Total:          len(set.Geo),
		})
	}
}

// parseLimit usa o padrão quando vazio e reduz ao máximo configurado quando acima dele
func parseLimit(raw string, cfg config.Dashboard) (int, error) {
	if raw == "" {
		return cfg.GeoDefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	if limit < 1 {
		return 0, strconv.ErrRange
	}

	if limit > cfg.GeoMaxLimit {
		return cfg.GeoMaxLimit, nil
	}

	return limit, nil
}

func capRows(rows []domain.CityDensity, limit int) []domain.CityDensity {
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
