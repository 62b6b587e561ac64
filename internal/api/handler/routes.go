package handler

import (
	"net/http"

	"github.com/vfg2006/ecommerce-dashboard/internal/api/handler/router"
	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-dashboard/pkg/metrics"
	"github.com/vfg2006/ecommerce-dashboard/pkg/middleware"
)

func Healthcheck(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Page(service reporting.Reporter, cfg config.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Dashboard(service, cfg),
		},
	}
}

func Reports(service reporting.Reporter, cfg config.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/payment-methods",
			Method:  http.MethodGet,
			Handler: GetPaymentMethods(service),
		},
		{
			Path:    "/v1/reports/order-status",
			Method:  http.MethodGet,
			Handler: GetOrderStatus(service),
		},
		{
			Path:    "/v1/reports/monthly-trend",
			Method:  http.MethodGet,
			Handler: GetMonthlyTrend(service),
		},
		{
			Path:    "/v1/reports/geo",
			Method:  http.MethodGet,
			Handler: GetGeo(service, cfg),
		},
		{
			Path:    "/v1/reports/export.xlsx",
			Method:  http.MethodGet,
			Handler: ExportXLSX(service),
		},
	}
}

// Dataset retorna as rotas do snapshot; recarga e status exigem token de administrador
func Dataset(service reporting.Reporter, trigger ReloadTrigger, validator middleware.TokenValidator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(validator),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(service),
		},
		{
			Path:        "/v1/dataset/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(trigger),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/dataset/reload/status",
			Method:      http.MethodGet,
			Handler:     GetReloadStatus(trigger),
			Middlewares: adminOnly,
		},
	}
}
