package reporting

import (
	"context"

	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
)

// Reporter é a interface usada pela camada HTTP para obter os resumos do snapshot atual
type Reporter interface {
	// Reports retorna os relatórios habilitados na ordem das abas
	Reports() []domain.ReportKind

	// Enabled indica se o relatório está habilitado
	Enabled(kind domain.ReportKind) bool

	// Info retorna os metadados do snapshot atual
	Info() (*domain.DatasetInfo, error)

	// Summaries calcula os relatórios pedidos (todos os habilitados quando vazio)
	// sobre um único snapshot. ReportSet.DatasetID identifica o snapshot usado.
	Summaries(kinds ...domain.ReportKind) (*domain.ReportSet, error)
}

// Reloader recarrega o snapshot a partir da origem configurada
type Reloader interface {
	Reload(ctx context.Context) (*domain.DatasetInfo, error)
}
