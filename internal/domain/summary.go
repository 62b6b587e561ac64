package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryCount é uma linha de resumo agrupada por uma categoria (tipo de pagamento, status do pedido)
type CategoryCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// MonthlyTrend é uma linha do resumo mensal. Month é o primeiro instante do mês em UTC
type MonthlyTrend struct {
	Month      time.Time       `json:"month"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// Period retorna o mês no formato yyyy-mm
func (m MonthlyTrend) Period() string {
	return m.Month.Format("2006-01")
}

// CityDensity é uma linha do resumo geográfico de compradores
type CityDensity struct {
	City  string  `json:"city"`
	Count int     `json:"count"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// ReportSet reúne resumos calculados sobre um único snapshot.
// Só os relatórios listados em Reports são preenchidos, os demais ficam nil.
type ReportSet struct {
	DatasetID      string
	LoadedAt       time.Time
	Reports        []ReportKind
	PaymentMethods []CategoryCount
	OrderStatus    []CategoryCount
	MonthlyTrend   []MonthlyTrend
	Geo            []CityDensity
}

