// Package csvloader carrega as tabelas do dashboard a partir de arquivos CSV
package csvloader

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/dataset"
	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
)

// Nomes das tabelas usados em logs e erros
const (
	customersTable    = "customers"
	ordersTable       = "orders"
	paymentsTable     = "payments"
	geolocationsTable = "geolocation"
)

type Loader struct {
	cfg config.Dataset
}

// New cria um Loader que lê os arquivos configurados dentro de cfg.Dir
func New(cfg config.Dataset) *Loader {
	return &Loader{cfg: cfg}
}

// Load lê as quatro tabelas. Um arquivo de geolocalização não configurado resulta em tabela vazia.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	startTime := time.Now()

	customers, err := l.loadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := l.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := l.loadPayments(ctx)
	if err != nil {
		return nil, err
	}

	geolocations, err := l.loadGeolocations(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dir":          l.cfg.Dir,
		"customers":    len(customers),
		"orders":       len(orders),
		"payments":     len(payments),
		"geolocations": len(geolocations),
		"duration":     time.Since(startTime).String(),
	}).Info("Tabelas CSV carregadas")

	return &domain.Dataset{
		Source:       domain.DatasetSourceCSV,
		Orders:       orders,
		Payments:     payments,
		Customers:    customers,
		Geolocations: geolocations,
	}, nil
}

func (l *Loader) path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(l.cfg.Dir, file)
}

func (l *Loader) loadCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0)
	required := []string{
		domain.CustomerIDColumn,
		domain.CustomerZipCodePrefixColumn,
		domain.CustomerCityColumn,
	}

	err := readTable(ctx, l.path(l.cfg.CustomersFile), customersTable, required, func(_ int, row record) error {
		customer := domain.Customer{
			CustomerID:    row.get(domain.CustomerIDColumn),
			ZipCodePrefix: row.get(domain.CustomerZipCodePrefixColumn),
			City:          row.get(domain.CustomerCityColumn),
		}
		if _, ok := row.index[domain.CustomerUniqueIDColumn]; ok {
			customer.UniqueID = row.get(domain.CustomerUniqueIDColumn)
		}
		if _, ok := row.index[domain.CustomerStateColumn]; ok {
			customer.State = row.get(domain.CustomerStateColumn)
		}

		customers = append(customers, customer)
		return nil
	})

	return customers, err
}

func (l *Loader) loadOrders(ctx context.Context) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	required := []string{
		domain.OrderIDColumn,
		domain.OrderCustomerIDColumn,
		domain.OrderStatusColumn,
		domain.OrderPurchaseTimestampColumn,
		domain.OrderApprovedAtColumn,
		domain.OrderDeliveredCarrierDateColumn,
		domain.OrderDeliveredCustomerDateColumn,
		domain.OrderEstimatedDeliveryDateColumn,
	}

	err := readTable(ctx, l.path(l.cfg.OrdersFile), ordersTable, required, func(_ int, row record) error {
		orders = append(orders, domain.Order{
			OrderID:               row.get(domain.OrderIDColumn),
			CustomerID:            row.get(domain.OrderCustomerIDColumn),
			Status:                row.get(domain.OrderStatusColumn),
			PurchaseTimestamp:     domain.Timestamp{Raw: row.get(domain.OrderPurchaseTimestampColumn)},
			ApprovedAt:            domain.Timestamp{Raw: row.get(domain.OrderApprovedAtColumn)},
			DeliveredCarrierDate:  domain.Timestamp{Raw: row.get(domain.OrderDeliveredCarrierDateColumn)},
			DeliveredCustomerDate: domain.Timestamp{Raw: row.get(domain.OrderDeliveredCustomerDateColumn)},
			EstimatedDeliveryDate: domain.Timestamp{Raw: row.get(domain.OrderEstimatedDeliveryDateColumn)},
		})
		return nil
	})

	return orders, err
}

func (l *Loader) loadPayments(ctx context.Context) ([]domain.Payment, error) {
	payments := make([]domain.Payment, 0)
	required := []string{
		domain.PaymentOrderIDColumn,
		domain.PaymentTypeColumn,
		domain.PaymentValueColumn,
	}

	err := readTable(ctx, l.path(l.cfg.PaymentsFile), paymentsTable, required, func(line int, row record) error {
		raw := row.get(domain.PaymentValueColumn)
		value, ok := dataset.ParsePaymentValue(raw)
		if !ok {
			return dataset.NewParseError(paymentsTable, line, domain.PaymentValueColumn, raw)
		}

		payment := domain.Payment{
			OrderID: row.get(domain.PaymentOrderIDColumn),
			Type:    row.get(domain.PaymentTypeColumn),
			Value:   value,
		}

		for column, target := range map[string]*int{
			domain.PaymentSequentialColumn:   &payment.Sequential,
			domain.PaymentInstallmentsColumn: &payment.Installments,
		} {
			if _, present := row.index[column]; !present {
				continue
			}
			parsed, ok := dataset.ParseInt(row.get(column))
			if !ok {
				return dataset.NewParseError(paymentsTable, line, column, row.get(column))
			}
			*target = parsed
		}

		payments = append(payments, payment)
		return nil
	})

	return payments, err
}

func (l *Loader) loadGeolocations(ctx context.Context) ([]domain.Geolocation, error) {
	geolocations := make([]domain.Geolocation, 0)
	if l.cfg.GeolocationFile == "" {
		logrus.Info("Arquivo de geolocalização não configurado, tabela ficará vazia")
		return geolocations, nil
	}

	required := []string{
		domain.GeolocationZipCodePrefixColumn,
		domain.GeolocationLatColumn,
		domain.GeolocationLngColumn,
	}

	err := readTable(ctx, l.path(l.cfg.GeolocationFile), geolocationsTable, required, func(line int, row record) error {
		rawLat := row.get(domain.GeolocationLatColumn)
		lat, ok := dataset.ParseFloat(rawLat)
		if !ok {
			return dataset.NewParseError(geolocationsTable, line, domain.GeolocationLatColumn, rawLat)
		}

		rawLng := row.get(domain.GeolocationLngColumn)
		lng, ok := dataset.ParseFloat(rawLng)
		if !ok {
			return dataset.NewParseError(geolocationsTable, line, domain.GeolocationLngColumn, rawLng)
		}

		geo := domain.Geolocation{
			ZipCodePrefix: row.get(domain.GeolocationZipCodePrefixColumn),
			Lat:           lat,
			Lng:           lng,
		}
		if _, present := row.index[domain.GeolocationCityColumn]; present {
			geo.City = row.get(domain.GeolocationCityColumn)
		}
		if _, present := row.index[domain.GeolocationStateColumn]; present {
			geo.State = row.get(domain.GeolocationStateColumn)
		}

		geolocations = append(geolocations, geo)
		return nil
	})

	return geolocations, err
}
