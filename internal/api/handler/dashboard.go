package handler

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-dashboard/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type dashboardPage struct {
	Title     string
	Subtitle  string
	NotLoaded bool
	DatasetID string
	LoadedAt  string
	Tabs      []dashboardTab
	Active    *dashboardTab
	Limit     int
	MaxLimit  int
}

type dashboardTab struct {
	Kind    domain.ReportKind
	Title   string
	Caption string
	Active  bool
	Empty   bool
	Total   int

	Categories []barRow
	Trend      []trendRow
	Geo        []geoRow
}

// barRow é uma linha das abas de categoria. Share só é preenchido na aba de status,
// onde a barra representa a fatia do total de pedidos.
type barRow struct {
	Label   string
	Count   int
	Percent int
	Share   string
}

type trendRow struct {
	Period     string
	OrderCount int
	Revenue    string
	Percent    int
}

type geoRow struct {
	City    string
	Count   int
	Lat     float64
	Lng     float64
	Percent int
}

// Dashboard renderiza a página com uma aba por relatório habilitado.
// Só a aba ativa (?tab=) é calculada, no mesmo snapshot do cabeçalho.
func Dashboard(service reporting.Reporter, cfg config.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := dashboardPage{
			Title:    cfg.Title,
			Subtitle: cfg.Subtitle,
			Limit:    cfg.GeoDefaultLimit,
			MaxLimit: cfg.GeoMaxLimit,
		}

		// Na página um limit inválido volta ao padrão
		if limit, err := parseLimit(r.URL.Query().Get("limit"), cfg); err == nil {
			page.Limit = limit
		}

		reports := service.Reports()
		active := activeReport(reports, domain.ReportKind(r.URL.Query().Get("tab")))
		for _, kind := range reports {
			page.Tabs = append(page.Tabs, dashboardTab{
				Kind:    kind,
				Title:   kind.Title(),
				Caption: kind.Caption(),
				Active:  kind == active,
			})
		}

		log.Annotate(r.Context(), "report", active)
		status := http.StatusOK

		var kinds []domain.ReportKind
		if active != "" {
			kinds = append(kinds, active)
		}

		set, err := service.Summaries(kinds...)
		switch {
		case errors.Is(err, reporting.ErrDatasetNotLoaded):
			page.NotLoaded = true
			status = http.StatusServiceUnavailable
		case err != nil:
			writeReportError(w, r, err)
			return
		default:
			log.Annotate(r.Context(), "dataset_id", set.DatasetID)
			page.DatasetID = set.DatasetID
			page.LoadedAt = set.LoadedAt.UTC().Format(time.RFC3339)

			for i := range page.Tabs {
				if page.Tabs[i].Active {
					fillTab(&page.Tabs[i], set, page.Limit)
					page.Active = &page.Tabs[i]
				}
			}
		}

		var buf bytes.Buffer
		if err := dashboardTemplate.Execute(&buf, page); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar dashboard")
		}
	}
}

// activeReport escolhe a aba pedida ou a primeira habilitada
func activeReport(reports []domain.ReportKind, requested domain.ReportKind) domain.ReportKind {
	for _, kind := range reports {
		if kind == requested {
			return kind
		}
	}

	if len(reports) == 0 {
		return ""
	}
	return reports[0]
}

func fillTab(tab *dashboardTab, set *domain.ReportSet, limit int) {
	switch tab.Kind {
	case domain.ReportPaymentMethods:
		tab.Categories = toBarRows(set.PaymentMethods)
		tab.Total = len(set.PaymentMethods)

	case domain.ReportOrderStatus:
		tab.Categories = toShareRows(set.OrderStatus)
		tab.Total = len(set.OrderStatus)

	case domain.ReportMonthlyTrend:
		peak := 0
		for _, row := range set.MonthlyTrend {
			peak = max(peak, row.OrderCount)
		}
		for _, row := range set.MonthlyTrend {
			tab.Trend = append(tab.Trend, trendRow{
				Period:     row.Period(),
				OrderCount: row.OrderCount,
				Revenue:    row.Revenue.StringFixed(2),
				Percent:    percent(row.OrderCount, peak),
			})
		}
		tab.Total = len(set.MonthlyTrend)

	case domain.ReportGeo:
		rows := capRows(set.Geo, limit)
		for _, row := range rows {
			tab.Geo = append(tab.Geo, geoRow{
				City:    row.City,
				Count:   row.Count,
				Lat:     row.Lat,
				Lng:     row.Lng,
				Percent: percent(row.Count, rows[0].Count),
			})
		}
		tab.Total = len(set.Geo)
	}

	tab.Empty = tab.Total == 0
}

// toBarRows assume a ordem decrescente do resumo: a primeira linha é a maior
func toBarRows(summary []domain.CategoryCount) []barRow {
	rows := make([]barRow, 0, len(summary))
	for _, row := range summary {
		rows = append(rows, barRow{
			Label:   row.Key,
			Count:   row.Count,
			Percent: percent(row.Count, summary[0].Count),
		})
	}
	return rows
}

// toShareRows calcula a fatia de cada categoria sobre a soma de todas as contagens
func toShareRows(summary []domain.CategoryCount) []barRow {
	total := 0
	for _, row := range summary {
		total += row.Count
	}

	rows := make([]barRow, 0, len(summary))
	for _, row := range summary {
		share := 0.0
		if total > 0 {
			share = float64(row.Count) * 100 / float64(total)
		}

		rows = append(rows, barRow{
			Label:   row.Key,
			Count:   row.Count,
			Percent: percent(row.Count, total),
			Share:   fmt.Sprintf("%.2f%%", share),
		})
	}
	return rows
}

func percent(value, peak int) int {
	if peak <= 0 {
		return 0
	}
	return value * 100 / peak
}
