package reporting

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SnapshotProvider entrega o snapshot corrente das tabelas de origem
type SnapshotProvider interface {
	Current() (*domain.Snapshot, error)
}

// Reporter monta as cargas do dashboard a partir do snapshot corrente.
type Reporter interface {
	// BuildDashboard executa o pipeline completo (filtrar, juntar, derivar,
	// agregar) e devolve métricas, séries de gráficos e tabelas
	BuildDashboard(filters *domain.ReportFilters) (*domain.DashboardReport, error)

	// FilterOptions devolve o intervalo de datas e os nomes de funcionários
	// disponíveis para os filtros da UI
	FilterOptions() (*domain.FilterOptions, error)

	// ListTransactions devolve apenas a tabela de transações filtrada
	ListTransactions(filters *domain.ReportFilters) ([]domain.TransactionRow, error)
}
