// Package cleaning prepara a tabela de pedidos antes de qualquer agregação
package cleaning

import (
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/pkg/utils"
)

// Clean remove, no próprio slice, os pedidos com qualquer coluna vazia e converte as cinco colunas
// de data para time.Time. Não valida a cronologia das datas (aprovação antes da compra é aceita).
// Uma data que não pode ser convertida aborta a limpeza com *TimestampError.
// Chamar Clean de novo sobre uma tabela já limpa não altera nada.
func Clean(orders *[]domain.Order) error {
	if orders == nil {
		return nil
	}

	rows := *orders
	kept := rows[:0]

	for _, order := range rows {
		if order.HasMissingField() {
			continue
		}
		kept = append(kept, order)
	}

	// Zera a cauda para não manter referências a linhas removidas
	for i := len(kept); i < len(rows); i++ {
		rows[i] = domain.Order{}
	}
	*orders = kept

	for i := range kept {
		if err := parseTimestamps(&kept[i]); err != nil {
			return err
		}
	}

	return nil
}

func parseTimestamps(order *domain.Order) error {
	for _, field := range order.TimestampFields() {
		parsed, err := utils.ParseTimestamp(field.Value.Raw)
		if err != nil {
			return &TimestampError{
				OrderID: order.OrderID,
				Column:  field.Column,
				Value:   field.Value.Raw,
				Err:     err,
			}
		}
		field.Value.Time = parsed
	}

	return nil
}
