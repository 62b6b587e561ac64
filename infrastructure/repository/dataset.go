// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/dataset"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
)

// Tabelas criadas pelo script de importação
const (
	CustomersTable    = "customers"
	OrdersTable       = "orders"
	PaymentsTable     = "order_payments"
	GeolocationsTable = "geolocation"
)

const rawTimestampLayout = "2006-01-02 15:04:05"

type datasetRepository struct {
	conn postgres.Queryer
}

// NewDatasetRepository cria um dataset.Loader que lê as tabelas importadas no PostgreSQL
func NewDatasetRepository(conn postgres.Queryer) dataset.Loader {
	return &datasetRepository{
		conn: conn,
	}
}

func (r *datasetRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	startTime := time.Now()

	customers, err := r.listCustomers(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := r.listOrders(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := r.listPayments(ctx)
	if err != nil {
		return nil, err
	}

	geolocations, err := r.listGeolocations(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customers":    len(customers),
		"orders":       len(orders),
		"payments":     len(payments),
		"geolocations": len(geolocations),
		"duration":     time.Since(startTime).String(),
	}).Info("Tabelas carregadas do PostgreSQL")

	return &domain.Dataset{
		Source:       domain.DatasetSourcePostgres,
		Orders:       orders,
		Payments:     payments,
		Customers:    customers,
		Geolocations: geolocations,
	}, nil
}

// query executa o select ordenado pela ordem de importação
func (r *datasetRepository) query(ctx context.Context, table string, columns ...string) (*sql.Rows, error) {
	sqlQuery, args, err := squirrel.
		Select(columns...).
		From(table).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query em %s: %w", table, err)
	}

	return rows, nil
}

func (r *datasetRepository) listCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.query(ctx, CustomersTable,
		domain.CustomerIDColumn,
		domain.CustomerUniqueIDColumn,
		domain.CustomerZipCodePrefixColumn,
		domain.CustomerCityColumn,
		domain.CustomerStateColumn,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var (
			customer                       domain.Customer
			uniqueID, zip, city, stateCode sql.NullString
		)

		if err := rows.Scan(&customer.CustomerID, &uniqueID, &zip, &city, &stateCode); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}

		customer.UniqueID = uniqueID.String
		customer.ZipCodePrefix = zip.String
		customer.City = city.String
		customer.State = stateCode.String
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de clientes: %w", err)
	}

	return customers, nil
}

func (r *datasetRepository) listOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.query(ctx, OrdersTable,
		domain.OrderIDColumn,
		domain.OrderCustomerIDColumn,
		domain.OrderStatusColumn,
		domain.OrderPurchaseTimestampColumn,
		domain.OrderApprovedAtColumn,
		domain.OrderDeliveredCarrierDateColumn,
		domain.OrderDeliveredCustomerDateColumn,
		domain.OrderEstimatedDeliveryDateColumn,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var (
			order              domain.Order
			customerID, status sql.NullString
			timestamps         [5]sql.NullTime
		)

		err := rows.Scan(
			&order.OrderID,
			&customerID,
			&status,
			&timestamps[0],
			&timestamps[1],
			&timestamps[2],
			&timestamps[3],
			&timestamps[4],
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}

		order.CustomerID = customerID.String
		order.Status = status.String
		// Datas nulas viram valores ausentes e são removidas na limpeza
		for i, field := range order.TimestampFields() {
			if timestamps[i].Valid {
				field.Value.Raw = timestamps[i].Time.UTC().Format(rawTimestampLayout)
			}
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de pedidos: %w", err)
	}

	return orders, nil
}

func (r *datasetRepository) listPayments(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.query(ctx, PaymentsTable,
		domain.PaymentOrderIDColumn,
		domain.PaymentSequentialColumn,
		domain.PaymentTypeColumn,
		domain.PaymentInstallmentsColumn,
		domain.PaymentValueColumn,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var (
			payment                   domain.Payment
			sequential, installments  sql.NullInt64
			paymentType, paymentValue sql.NullString
		)

		if err := rows.Scan(&payment.OrderID, &sequential, &paymentType, &installments, &paymentValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamento: %w", err)
		}

		value, ok := dataset.ParsePaymentValue(paymentValue.String)
		if !paymentValue.Valid || !ok {
			return nil, dataset.NewParseError(PaymentsTable, 0, domain.PaymentValueColumn, paymentValue.String)
		}

		payment.Sequential = int(sequential.Int64)
		payment.Installments = int(installments.Int64)
		payment.Type = paymentType.String
		payment.Value = value
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de pagamentos: %w", err)
	}

	return payments, nil
}

func (r *datasetRepository) listGeolocations(ctx context.Context) ([]domain.Geolocation, error) {
	rows, err := r.query(ctx, GeolocationsTable,
		domain.GeolocationZipCodePrefixColumn,
		domain.GeolocationLatColumn,
		domain.GeolocationLngColumn,
		domain.GeolocationCityColumn,
		domain.GeolocationStateColumn,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	geolocations := make([]domain.Geolocation, 0)
	for rows.Next() {
		var (
			geo             domain.Geolocation
			lat, lng        sql.NullFloat64
			city, stateCode sql.NullString
		)

		if err := rows.Scan(&geo.ZipCodePrefix, &lat, &lng, &city, &stateCode); err != nil {
			return nil, fmt.Errorf("erro ao escanear geolocalização: %w", err)
		}

		if !lat.Valid {
			return nil, dataset.NewParseError(GeolocationsTable, 0, domain.GeolocationLatColumn, "")
		}
		if !lng.Valid {
			return nil, dataset.NewParseError(GeolocationsTable, 0, domain.GeolocationLngColumn, "")
		}

		geo.Lat = lat.Float64
		geo.Lng = lng.Float64
		geo.City = city.String
		geo.State = stateCode.String
		geolocations = append(geolocations, geo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de geolocalização: %w", err)
	}

	return geolocations, nil
}
