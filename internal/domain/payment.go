package domain

import "github.com/shopspring/decimal"

// Colunas do arquivo de pagamentos
const (
	PaymentOrderIDColumn      = "order_id"
	PaymentSequentialColumn   = "payment_sequential"
	PaymentTypeColumn         = "payment_type"
	PaymentInstallmentsColumn = "payment_installments"
	PaymentValueColumn        = "payment_value"
)

type Payment struct {
	OrderID      string          `json:"order_id"`
	Sequential   int             `json:"payment_sequential"`
	Type         string          `json:"payment_type"`
	Installments int             `json:"payment_installments"`
	Value        decimal.Decimal `json:"payment_value"`
}
