// Script de importação: copia os arquivos CSV do dataset para as tabelas do PostgreSQL
// usadas quando DATA_SOURCE=postgres. Recria as tabelas a cada execução.
package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/dataset/csvloader"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/repository"
	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
)

var schema = []string{
	`DROP TABLE IF EXISTS ` + repository.CustomersTable,
	`DROP TABLE IF EXISTS ` + repository.OrdersTable,
	`DROP TABLE IF EXISTS ` + repository.PaymentsTable,
	`DROP TABLE IF EXISTS ` + repository.GeolocationsTable,
	`CREATE TABLE ` + repository.CustomersTable + ` (
		id BIGSERIAL PRIMARY KEY,
		customer_id TEXT NOT NULL,
		customer_unique_id TEXT,
		customer_zip_code_prefix TEXT,
		customer_city TEXT,
		customer_state TEXT
	)`,
	`CREATE TABLE ` + repository.OrdersTable + ` (
		id BIGSERIAL PRIMARY KEY,
		order_id TEXT NOT NULL,
		customer_id TEXT,
		order_status TEXT,
		order_purchase_timestamp TIMESTAMP,
		order_approved_at TIMESTAMP,
		order_delivered_carrier_date TIMESTAMP,
		order_delivered_customer_date TIMESTAMP,
		order_estimated_delivery_date TIMESTAMP
	)`,
	`CREATE TABLE ` + repository.PaymentsTable + ` (
		id BIGSERIAL PRIMARY KEY,
		order_id TEXT NOT NULL,
		payment_sequential INTEGER,
		payment_type TEXT,
		payment_installments INTEGER,
		payment_value NUMERIC NOT NULL
	)`,
	`CREATE TABLE ` + repository.GeolocationsTable + ` (
		id BIGSERIAL PRIMARY KEY,
		geolocation_zip_code_prefix TEXT NOT NULL,
		geolocation_lat DOUBLE PRECISION NOT NULL,
		geolocation_lng DOUBLE PRECISION NOT NULL,
		geolocation_city TEXT,
		geolocation_state TEXT
	)`,
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de importação do dataset...")

	ctx := context.Background()
	startTime := time.Now()

	ds, err := csvloader.New(cfg.Dataset).Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler arquivos CSV")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return err
			}
		}

		if err := copyCustomers(ctx, tx, ds.Customers); err != nil {
			return err
		}
		if err := copyOrders(ctx, tx, ds.Orders); err != nil {
			return err
		}
		if err := copyPayments(ctx, tx, ds.Payments); err != nil {
			return err
		}
		return copyGeolocations(ctx, tx, ds.Geolocations)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao importar dataset, transação revertida")
	}

	logrus.WithFields(logrus.Fields{
		"customers":    len(ds.Customers),
		"orders":       len(ds.Orders),
		"payments":     len(ds.Payments),
		"geolocations": len(ds.Geolocations),
		"duration":     time.Since(startTime).String(),
	}).Info("Importação concluída com sucesso")
}

// copyRows usa COPY para inserir as linhas em lote
func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, count int, row func(i int) []any) error {
	logrus.Infof("Copiando %d linhas para %s...", count, table)

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			stmt.Close()
			return err
		}
		if i > 0 && i%50000 == 0 {
			logrus.Infof("Progresso: %d/%d linhas em %s", i, count, table)
		}
	}

	// Exec sem argumentos envia os dados pendentes do COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return err
	}

	return stmt.Close()
}

func copyCustomers(ctx context.Context, tx *sql.Tx, customers []domain.Customer) error {
	columns := []string{
		domain.CustomerIDColumn,
		domain.CustomerUniqueIDColumn,
		domain.CustomerZipCodePrefixColumn,
		domain.CustomerCityColumn,
		domain.CustomerStateColumn,
	}

	return copyRows(ctx, tx, repository.CustomersTable, columns, len(customers), func(i int) []any {
		c := customers[i]
		return []any{c.CustomerID, c.UniqueID, c.ZipCodePrefix, c.City, c.State}
	})
}

func copyOrders(ctx context.Context, tx *sql.Tx, orders []domain.Order) error {
	columns := []string{
		domain.OrderIDColumn,
		domain.OrderCustomerIDColumn,
		domain.OrderStatusColumn,
		domain.OrderPurchaseTimestampColumn,
		domain.OrderApprovedAtColumn,
		domain.OrderDeliveredCarrierDateColumn,
		domain.OrderDeliveredCustomerDateColumn,
		domain.OrderEstimatedDeliveryDateColumn,
	}

	return copyRows(ctx, tx, repository.OrdersTable, columns, len(orders), func(i int) []any {
		o := &orders[i]
		values := []any{o.OrderID, o.CustomerID, o.Status}
		for _, field := range o.TimestampFields() {
			if field.Value.Missing() {
				values = append(values, nil)
				continue
			}
			values = append(values, field.Value.Raw)
		}
		return values
	})
}

func copyPayments(ctx context.Context, tx *sql.Tx, payments []domain.Payment) error {
	columns := []string{
		domain.PaymentOrderIDColumn,
		domain.PaymentSequentialColumn,
		domain.PaymentTypeColumn,
		domain.PaymentInstallmentsColumn,
		domain.PaymentValueColumn,
	}

	return copyRows(ctx, tx, repository.PaymentsTable, columns, len(payments), func(i int) []any {
		p := payments[i]
		return []any{p.OrderID, p.Sequential, p.Type, p.Installments, p.Value.String()}
	})
}

func copyGeolocations(ctx context.Context, tx *sql.Tx, geolocations []domain.Geolocation) error {
	columns := []string{
		domain.GeolocationZipCodePrefixColumn,
		domain.GeolocationLatColumn,
		domain.GeolocationLngColumn,
		domain.GeolocationCityColumn,
		domain.GeolocationStateColumn,
	}

	return copyRows(ctx, tx, repository.GeolocationsTable, columns, len(geolocations), func(i int) []any {
		g := geolocations[i]
		return []any{g.ZipCodePrefix, g.Lat, g.Lng, g.City, g.State}
	})
}
