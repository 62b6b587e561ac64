package domain

import "time"

// Origens possíveis de um snapshot
const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
)

// Dataset é um snapshot completo das tabelas usadas pelo dashboard
type Dataset struct {
	ID           string
	Source       string
	LoadedAt     time.Time
	Orders       []Order
	Payments     []Payment
	Customers    []Customer
	Geolocations []Geolocation
}

// DatasetInfo resume um snapshot carregado
type DatasetInfo struct {
	ID                string    `json:"id"`
	Source            string    `json:"source"`
	LoadedAt          time.Time `json:"loaded_at"`
	OrdersLoaded      int       `json:"orders_loaded"`
	OrdersDropped     int       `json:"orders_dropped"`
	OrdersCount       int       `json:"orders_count"`
	PaymentsCount     int       `json:"payments_count"`
	CustomersCount    int       `json:"customers_count"`
	GeolocationsCount int       `json:"geolocations_count"`
}
