// Package dataset define o contrato de carregamento das tabelas do dashboard
package dataset

import (
	"context"

	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
)

// Loader carrega um snapshot completo das tabelas. Pedidos são devolvidos sem limpeza,
// com as datas apenas no formato textual.
type Loader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}
