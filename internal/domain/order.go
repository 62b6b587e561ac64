package domain

import (
	"strings"
	"time"
)

// Colunas do arquivo de pedidos
const (
	OrderIDColumn                    = "order_id"
	OrderCustomerIDColumn            = "customer_id"
	OrderStatusColumn                = "order_status"
	OrderPurchaseTimestampColumn     = "order_purchase_timestamp"
	OrderApprovedAtColumn            = "order_approved_at"
	OrderDeliveredCarrierDateColumn  = "order_delivered_carrier_date"
	OrderDeliveredCustomerDateColumn = "order_delivered_customer_date"
	OrderEstimatedDeliveryDateColumn = "order_estimated_delivery_date"
)

// Timestamp guarda o valor textual lido da origem e o instante já convertido
type Timestamp struct {
	Raw  string    `json:"raw"`
	Time time.Time `json:"time"`
}

// Missing indica que a origem não trouxe valor para o campo
func (t Timestamp) Missing() bool {
	return strings.TrimSpace(t.Raw) == ""
}

// Parsed indica que o valor textual já foi convertido
func (t Timestamp) Parsed() bool {
	return !t.Time.IsZero()
}

type Order struct {
	OrderID               string    `json:"order_id"`
	CustomerID            string    `json:"customer_id"`
	Status                string    `json:"order_status"`
	PurchaseTimestamp     Timestamp `json:"order_purchase_timestamp"`
	ApprovedAt            Timestamp `json:"order_approved_at"`
	DeliveredCarrierDate  Timestamp `json:"order_delivered_carrier_date"`
	DeliveredCustomerDate Timestamp `json:"order_delivered_customer_date"`
	EstimatedDeliveryDate Timestamp `json:"order_estimated_delivery_date"`
}

// TimestampFields retorna ponteiros para os cinco campos de data do pedido, na ordem das colunas
func (o *Order) TimestampFields() []TimestampField {
	return []TimestampField{
		{Column: OrderPurchaseTimestampColumn, Value: &o.PurchaseTimestamp},
		{Column: OrderApprovedAtColumn, Value: &o.ApprovedAt},
		{Column: OrderDeliveredCarrierDateColumn, Value: &o.DeliveredCarrierDate},
		{Column: OrderDeliveredCustomerDateColumn, Value: &o.DeliveredCustomerDate},
		{Column: OrderEstimatedDeliveryDateColumn, Value: &o.EstimatedDeliveryDate},
	}
}

// HasMissingField indica se alguma coluna do pedido está vazia
func (o *Order) HasMissingField() bool {
	if strings.TrimSpace(o.OrderID) == "" ||
		strings.TrimSpace(o.CustomerID) == "" ||
		strings.TrimSpace(o.Status) == "" {
		return true
	}

	for _, field := range o.TimestampFields() {
		if field.Value.Missing() {
			return true
		}
	}

	return false
}

type TimestampField struct {
	Column string
	Value  *Timestamp
}
