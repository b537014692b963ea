package domain

// Item é uma linha da tabela de preços. Os valores monetários chegam como
// strings formatadas ("$1,234.56"); aqui já estão convertidos, com nil para
// valores que não puderam ser interpretados.
type Item struct {
	Name         string   `json:"name"`
	MaterialCost *float64 `json:"material_cost"`
	RRP          *float64 `json:"rrp"`
	MatesRates   *float64 `json:"mates_rates"`
}
