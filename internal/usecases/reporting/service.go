// Package reporting calcula os resumos exibidos no dashboard
package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/dataset"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/cleaning"
	"github.com/vfg2006/ecommerce-dashboard/pkg/metrics"
	"github.com/vfg2006/ecommerce-dashboard/pkg/utils"
)

// Service mantém o snapshot atual do dataset e calcula os resumos habilitados.
// O snapshot é imutável depois da limpeza; só o ponteiro é trocado na recarga.
type Service struct {
	loader  dataset.Loader
	reports []domain.ReportKind
	now     func() time.Time

	mu       sync.RWMutex
	snapshot *domain.Dataset
	info     *domain.DatasetInfo
}

var (
	_ Reporter = (*Service)(nil)
	_ Reloader = (*Service)(nil)
)

// NewService cria o serviço de relatórios com os relatórios habilitados
func NewService(loader dataset.Loader, reports []domain.ReportKind) *Service {
	return &Service{
		loader:  loader,
		reports: reports,
		now:     time.Now,
	}
}

// Reload carrega um novo snapshot, aplica a limpeza e substitui o atual.
// Em caso de erro o snapshot anterior continua valendo.
func (s *Service) Reload(ctx context.Context) (*domain.DatasetInfo, error) {
	startTime := s.now()

	info, err := s.reload(ctx)
	elapsed := s.now().Sub(startTime).Seconds()
	if err != nil {
		metrics.ObserveReload(metrics.ReloadFailure, elapsed)
		logrus.WithError(err).Error("Erro ao recarregar dataset, mantendo snapshot anterior")
		return nil, err
	}

	metrics.ObserveReload(metrics.ReloadSuccess, elapsed)
	return info, nil
}

func (s *Service) reload(ctx context.Context) (*domain.DatasetInfo, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar dataset: %w", err)
	}

	loaded := len(ds.Orders)
	if err := cleaning.Clean(&ds.Orders); err != nil {
		return nil, fmt.Errorf("erro na limpeza dos pedidos: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	ds.ID = id
	ds.LoadedAt = s.now()

	info := &domain.DatasetInfo{
		ID:                ds.ID,
		Source:            ds.Source,
		LoadedAt:          ds.LoadedAt,
		OrdersLoaded:      loaded,
		OrdersDropped:     loaded - len(ds.Orders),
		OrdersCount:       len(ds.Orders),
		PaymentsCount:     len(ds.Payments),
		CustomersCount:    len(ds.Customers),
		GeolocationsCount: len(ds.Geolocations),
	}

	s.mu.Lock()
	s.snapshot = ds
	s.info = info
	s.mu.Unlock()

	metrics.SetDatasetRows("orders", info.OrdersCount)
	metrics.SetDatasetRows("payments", info.PaymentsCount)
	metrics.SetDatasetRows("customers", info.CustomersCount)
	metrics.SetDatasetRows("geolocation", info.GeolocationsCount)
	metrics.SetOrdersDropped(info.OrdersDropped)

	logrus.WithFields(logrus.Fields{
		"dataset_id":     info.ID,
		"source":         info.Source,
		"orders_loaded":  info.OrdersLoaded,
		"orders_dropped": info.OrdersDropped,
		"payments":       info.PaymentsCount,
	}).Info("Snapshot do dataset atualizado")

	copied := *info
	return &copied, nil
}

// Reports retorna os relatórios habilitados
func (s *Service) Reports() []domain.ReportKind {
	return append([]domain.ReportKind(nil), s.reports...)
}

// Enabled indica se o relatório foi habilitado na configuração
func (s *Service) Enabled(kind domain.ReportKind) bool {
	for _, report := range s.reports {
		if report == kind {
			return true
		}
	}
	return false
}

func (s *Service) Info() (*domain.DatasetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.info == nil {
		return nil, ErrDatasetNotLoaded
	}

	copied := *s.info
	return &copied, nil
}

// Summaries calcula os relatórios pedidos a partir do mesmo snapshot. Sem argumentos
// calcula todos os habilitados. Uma recarga concorrente não mistura snapshots no resultado.
func (s *Service) Summaries(kinds ...domain.ReportKind) (*domain.ReportSet, error) {
	if len(kinds) == 0 {
		kinds = s.reports
	}

	for _, kind := range kinds {
		if !s.Enabled(kind) {
			return nil, fmt.Errorf("%w: %s", ErrReportDisabled, kind)
		}
	}

	s.mu.RLock()
	ds := s.snapshot
	s.mu.RUnlock()

	if ds == nil {
		return nil, ErrDatasetNotLoaded
	}

	set := &domain.ReportSet{
		DatasetID: ds.ID,
		LoadedAt:  ds.LoadedAt,
		Reports:   append([]domain.ReportKind(nil), kinds...),
	}

	for _, kind := range kinds {
		switch kind {
		case domain.ReportPaymentMethods:
			set.PaymentMethods = SummarizePaymentMethods(ds.Payments)
			observe(kind, ds.ID, len(set.PaymentMethods))
		case domain.ReportOrderStatus:
			set.OrderStatus = SummarizeOrderStatus(ds.Orders)
			observe(kind, ds.ID, len(set.OrderStatus))
		case domain.ReportMonthlyTrend:
			set.MonthlyTrend = SummarizeMonthlyTrend(ds.Orders, ds.Payments)
			observe(kind, ds.ID, len(set.MonthlyTrend))
		case domain.ReportGeo:
			set.Geo = SummarizeGeo(ds.Geolocations, ds.Customers)
			observe(kind, ds.ID, len(set.Geo))
		}
	}

	return set, nil
}

// observe registra a métrica do resumo e avisa quando não há dados para exibir
func observe(kind domain.ReportKind, datasetID string, rows int) {
	metrics.ObserveReport(string(kind), rows)

	if rows == 0 {
		logrus.WithFields(logrus.Fields{
			"report":     kind,
			"dataset_id": datasetID,
		}).Warn("Resumo sem dados: nenhuma linha após agrupamento ou junção")
	}
}
