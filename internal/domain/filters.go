package domain

import "time"

// ReportFilters são os filtros escolhidos pelo usuário no dashboard.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time

	// StaffNames nil significa "todos os funcionários" (o padrão da UI);
	// um conjunto vazio não seleciona nada.
	StaffNames []string
}

// FilterOptions são os valores disponíveis para montar os filtros da UI:
// o intervalo de datas coberto pelas transações carregadas e os nomes de
// funcionários presentes após o join.
type FilterOptions struct {
	MinDate    string   `json:"min_date"`
	MaxDate    string   `json:"max_date"`
	StaffNames []string `json:"staff_names"`
}

// AppliedFilters ecoa na resposta os filtros efetivamente aplicados,
// já resolvidos para os padrões quando o cliente não informou nada.
type AppliedFilters struct {
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	StaffNames []string `json:"staff_names"`
}
