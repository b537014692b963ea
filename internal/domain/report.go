package domain

// DashboardReport é a carga completa do dashboard: métricas, séries dos
// gráficos e tabelas, todas derivadas do mesmo conjunto filtrado. A
// renderização em si fica a cargo do front-end.
type DashboardReport struct {
	Summary         Summary          `json:"summary"`
	SalesByStaff    []StaffSales     `json:"sales_by_staff"`
	ProfitByItem    []ItemProfit     `json:"profit_by_item"`
	SalesByCustomer []CustomerSales  `json:"sales_by_customer"`
	Transactions    []TransactionRow `json:"transactions"`
	Filters         AppliedFilters   `json:"filters"`
	Warnings        []string         `json:"warnings,omitempty"`
}

type Summary struct {
	TotalSales          float64    `json:"total_sales"`
	TotalSalesFormatted string     `json:"total_sales_formatted"`
	TransactionCount    int        `json:"transaction_count"`
	TopSeller           *TopSeller `json:"top_seller,omitempty"`
}

type TopSeller struct {
	Name           string  `json:"name"`
	Sales          float64 `json:"sales"`
	SalesFormatted string  `json:"sales_formatted"`
}

// StaffSales alimenta o gráfico de vendas por funcionário e a tabela de
// resumo de pagamento (Pay = percentual configurado sobre as vendas).
type StaffSales struct {
	StaffName      string  `json:"staff_name"`
	Sales          float64 `json:"sales"`
	Pay            float64 `json:"pay"`
	SalesFormatted string  `json:"sales_formatted"`
	PayFormatted   string  `json:"pay_formatted"`
}

type ItemProfit struct {
	Item            string  `json:"item"`
	Profit          float64 `json:"profit"`
	QuantitySold    float64 `json:"quantity_sold"`
	ProfitFormatted string  `json:"profit_formatted"`
}

type CustomerSales struct {
	Customer       string  `json:"customer"`
	Sales          float64 `json:"sales"`
	SalesFormatted string  `json:"sales_formatted"`
}

// TransactionRow é a linha da tabela de transações exibida no dashboard.
// Sales fica nulo quando a quantidade ou o preço do item está ausente.
type TransactionRow struct {
	Timestamp      string   `json:"timestamp"`
	StaffName      string   `json:"staff_name,omitempty"`
	Food           string   `json:"food"`
	Customer       string   `json:"customer"`
	Sales          *float64 `json:"sales"`
	SalesFormatted string   `json:"sales_formatted,omitempty"`
}
