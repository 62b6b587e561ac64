// Package metrics expõe as métricas do dashboard no formato do Prometheus
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados possíveis de uma recarga do dataset
const (
	ReloadSuccess = "success"
	ReloadFailure = "failure"
)

var (
	datasetReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "dataset_reloads_total",
		Help:      "Quantidade de recargas do dataset por resultado.",
	}, []string{"result"})

	datasetReloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Name:      "dataset_reload_duration_seconds",
		Help:      "Duração das recargas do dataset.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	datasetRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "dashboard",
		Name:      "dataset_rows",
		Help:      "Linhas por tabela no snapshot atual.",
	}, []string{"table"})

	ordersDropped = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dashboard",
		Name:      "dataset_orders_dropped",
		Help:      "Pedidos removidos pela limpeza no snapshot atual.",
	})

	reportRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "report_requests_total",
		Help:      "Resumos calculados por relatório e presença de dados.",
	}, []string{"report", "empty"})
)

// ObserveReload registra o resultado e a duração de uma recarga
func ObserveReload(result string, seconds float64) {
	datasetReloads.WithLabelValues(result).Inc()
	datasetReloadDuration.Observe(seconds)
}

// SetDatasetRows atualiza as linhas do snapshot atual
func SetDatasetRows(table string, rows int) {
	datasetRows.WithLabelValues(table).Set(float64(rows))
}

// SetOrdersDropped atualiza os pedidos removidos pela limpeza
func SetOrdersDropped(dropped int) {
	ordersDropped.Set(float64(dropped))
}

// ObserveReport conta um resumo calculado
func ObserveReport(report string, rows int) {
	empty := "false"
	if rows == 0 {
		empty = "true"
	}
	reportRequests.WithLabelValues(report, empty).Inc()
}

// Handler retorna o handler HTTP do endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
