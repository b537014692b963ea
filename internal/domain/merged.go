package domain

// MergedRow é a linha desnormalizada: a transação enriquecida com o item e
// o funcionário correspondentes (left join — campos nulos quando não há
// correspondência) mais as colunas derivadas Sales e Profit.
type MergedRow struct {
	Transaction
	Item  *Item
	Staff *Staff

	Sales  *float64
	Profit *float64
}

// Derive calcula Sales e Profit da linha. É função pura dos campos de
// entrada: reaplicar sobre uma linha já derivada produz o mesmo resultado.
// Qualquer insumo ausente deixa o valor derivado ausente, nunca zero.
func (r *MergedRow) Derive() {
	r.Sales = nil
	r.Profit = nil

	if r.Amount == nil || r.Item == nil || r.Item.RRP == nil {
		return
	}

	sales := *r.Amount * *r.Item.RRP
	r.Sales = &sales

	if r.Item.MaterialCost == nil {
		return
	}

	profit := (*r.Item.RRP - *r.Item.MaterialCost) * *r.Amount
	r.Profit = &profit
}

// StaffName retorna o nome do funcionário da linha, ou vazio quando o join
// não encontrou correspondência.
func (r *MergedRow) StaffName() string {
	if r.Staff == nil {
		return ""
	}
	return r.Staff.Name
}
