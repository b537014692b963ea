package reporting

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ErrInvalidDateRange indica filtro com data inicial posterior à final
var ErrInvalidDateRange = errors.New("a data inicial não pode ser posterior à data final")

// Service implementa o pipeline de relatório sobre um snapshot imutável.
// Cada chamada recomputa tudo do zero: o pipeline é barato e totalmente
// rederivável, então não há estado escondido entre requisições.
type Service struct {
	cfg       *config.Config
	snapshots SnapshotProvider
}

func NewService(cfg *config.Config, snapshots SnapshotProvider) Reporter {
	return &Service{
		cfg:       cfg,
		snapshots: snapshots,
	}
}

func (s *Service) BuildDashboard(filters *domain.ReportFilters) (*domain.DashboardReport, error) {
	snapshot, err := s.snapshots.Current()
	if err != nil {
		return nil, err
	}

	resolved, err := resolveFilters(snapshot, filters)
	if err != nil {
		return nil, err
	}

	rows := mergeRows(snapshot, resolved)

	report := &domain.DashboardReport{
		Summary:         summarize(rows),
		SalesByStaff:    salesByStaff(rows, s.cfg.Report.PayRate),
		ProfitByItem:    profitByItem(rows, s.cfg.Report.TopLimit),
		SalesByCustomer: salesByCustomer(rows, s.cfg.Report.TopLimit),
		Transactions:    transactionRows(rows),
		Filters:         resolved.applied(),
		Warnings:        snapshot.Warnings,
	}

	return report, nil
}

func (s *Service) FilterOptions() (*domain.FilterOptions, error) {
	snapshot, err := s.snapshots.Current()
	if err != nil {
		return nil, err
	}

	options := &domain.FilterOptions{
		StaffNames: staffNamesAfterJoin(snapshot),
	}

	minDate, maxDate, ok := timestampRange(snapshot)
	if ok {
		options.MinDate = minDate.Format(time.DateOnly)
		options.MaxDate = maxDate.Format(time.DateOnly)
	}

	return options, nil
}

func (s *Service) ListTransactions(filters *domain.ReportFilters) ([]domain.TransactionRow, error) {
	snapshot, err := s.snapshots.Current()
	if err != nil {
		return nil, err
	}

	resolved, err := resolveFilters(snapshot, filters)
	if err != nil {
		return nil, err
	}

	return transactionRows(mergeRows(snapshot, resolved)), nil
}

// resolvedFilters é o filtro do usuário já resolvido para os padrões:
// intervalo completo quando não há datas, todos os funcionários quando a
// seleção não foi informada.
type resolvedFilters struct {
	start    time.Time
	end      time.Time
	hasRange bool

	allStaff bool
	staffSet map[string]struct{}

	appliedStaff []string
}

func resolveFilters(snapshot *domain.Snapshot, filters *domain.ReportFilters) (*resolvedFilters, error) {
	if filters == nil {
		filters = &domain.ReportFilters{}
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, ErrInvalidDateRange
	}

	resolved := &resolvedFilters{}

	minDate, maxDate, ok := timestampRange(snapshot)
	if ok {
		resolved.start = minDate
		resolved.end = maxDate
		resolved.hasRange = true
	}

	if filters.StartDate != nil {
		resolved.start = utils.DateOnly(*filters.StartDate)
		resolved.hasRange = true
	}
	if filters.EndDate != nil {
		resolved.end = utils.DateOnly(*filters.EndDate)
		resolved.hasRange = true
	}

	if filters.StaffNames == nil {
		// Seleção padrão da UI: todos os nomes presentes após o join
		resolved.allStaff = true
		resolved.appliedStaff = staffNamesAfterJoin(snapshot)
		return resolved, nil
	}

	// Conjunto explícito — vazio não seleciona nada, e não "todos"
	resolved.staffSet = make(map[string]struct{}, len(filters.StaffNames))
	for _, name := range filters.StaffNames {
		resolved.staffSet[name] = struct{}{}
		resolved.appliedStaff = append(resolved.appliedStaff, name)
	}

	return resolved, nil
}

func (f *resolvedFilters) applied() domain.AppliedFilters {
	applied := domain.AppliedFilters{
		StaffNames: f.appliedStaff,
	}

	if f.hasRange {
		applied.StartDate = f.start.Format(time.DateOnly)
		applied.EndDate = f.end.Format(time.DateOnly)
	}

	if applied.StaffNames == nil {
		applied.StaffNames = []string{}
	}

	return applied
}

// mergeRows é o coração do pipeline: filtra as transações pelo período
// (inclusivo nas duas pontas, comparando só a porção de data), faz o left
// join com itens e funcionários, deriva Sales/Profit e então aplica o filtro
// de funcionários. Cada execução produz linhas novas; o snapshot nunca é
// alterado.
func mergeRows(snapshot *domain.Snapshot, filters *resolvedFilters) []domain.MergedRow {
	rows := make([]domain.MergedRow, 0, len(snapshot.Transactions))

	for _, tx := range snapshot.Transactions {
		if filters.hasRange {
			date := utils.DateOnly(tx.Timestamp)
			if date.Before(filters.start) || date.After(filters.end) {
				continue
			}
		}

		row := domain.MergedRow{Transaction: tx}
		row.Item = snapshot.ItemByName[tx.Food]
		row.Staff = snapshot.StaffByEmail[tx.User]
		row.Derive()

		// O filtro de funcionários é um conjunto de nomes: linhas sem
		// correspondência na escala não pertencem a nenhum conjunto.
		if row.Staff == nil {
			continue
		}
		if !filters.allStaff {
			if _, ok := filters.staffSet[row.Staff.Name]; !ok {
				continue
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// summarize calcula as métricas escalares do topo do dashboard. Valores
// ausentes ficam fora das somas, nunca são tratados como zero.
func summarize(rows []domain.MergedRow) domain.Summary {
	summary := domain.Summary{
		TransactionCount: len(rows),
	}

	salesByName := map[string]float64{}
	for _, row := range rows {
		if row.Sales == nil {
			continue
		}
		summary.TotalSales += *row.Sales
		salesByName[row.StaffName()] += *row.Sales
	}
	summary.TotalSalesFormatted = utils.FormatMoney(summary.TotalSales)

	if len(salesByName) == 0 {
		return summary
	}

	// Desempate determinístico: percorre os nomes em ordem e fica com o
	// primeiro máximo encontrado
	names := make([]string, 0, len(salesByName))
	for name := range salesByName {
		names = append(names, name)
	}
	sort.Strings(names)

	top := domain.TopSeller{Name: names[0], Sales: salesByName[names[0]]}
	for _, name := range names[1:] {
		if salesByName[name] > top.Sales {
			top = domain.TopSeller{Name: name, Sales: salesByName[name]}
		}
	}
	top.SalesFormatted = utils.FormatMoney(top.Sales)
	summary.TopSeller = &top

	return summary
}

// salesByStaff alimenta o gráfico de vendas por funcionário e a tabela de
// resumo de pagamento. Sem limite de posições, ordenado pelas vendas.
func salesByStaff(rows []domain.MergedRow, payRate float64) []domain.StaffSales {
	totals := map[string]float64{}
	for _, row := range rows {
		name := row.StaffName()
		if _, seen := totals[name]; !seen {
			totals[name] = 0
		}
		if row.Sales != nil {
			totals[name] += *row.Sales
		}
	}

	result := make([]domain.StaffSales, 0, len(totals))
	for name, sales := range totals {
		pay := utils.RoundWithTwoDecimalPlace(sales * payRate)
		result = append(result, domain.StaffSales{
			StaffName:      name,
			Sales:          sales,
			Pay:            pay,
			SalesFormatted: utils.FormatMoney(sales),
			PayFormatted:   utils.FormatMoney(pay),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Sales != result[j].Sales {
			return result[i].Sales > result[j].Sales
		}
		return result[i].StaffName < result[j].StaffName
	})

	return result
}

// profitByItem agrupa o lucro e a quantidade vendida por item, limitado às
// primeiras `limit` posições. Linhas sem correspondência na tabela de preços
// não têm chave de item e ficam fora do agrupamento.
func profitByItem(rows []domain.MergedRow, limit int) []domain.ItemProfit {
	type itemTotals struct {
		profit   float64
		quantity float64
	}

	totals := map[string]*itemTotals{}
	for _, row := range rows {
		if row.Item == nil {
			continue
		}

		entry, ok := totals[row.Item.Name]
		if !ok {
			entry = &itemTotals{}
			totals[row.Item.Name] = entry
		}
		if row.Profit != nil {
			entry.profit += *row.Profit
		}
		if row.Amount != nil {
			entry.quantity += *row.Amount
		}
	}

	result := make([]domain.ItemProfit, 0, len(totals))
	for name, entry := range totals {
		result = append(result, domain.ItemProfit{
			Item:            name,
			Profit:          entry.profit,
			QuantitySold:    entry.quantity,
			ProfitFormatted: utils.FormatMoney(entry.profit),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Profit != result[j].Profit {
			return result[i].Profit > result[j].Profit
		}
		return result[i].Item < result[j].Item
	})

	return truncateItems(result, limit)
}

// salesByCustomer agrupa as vendas por cliente, limitado às primeiras
// `limit` posições.
func salesByCustomer(rows []domain.MergedRow, limit int) []domain.CustomerSales {
	totals := map[string]float64{}
	for _, row := range rows {
		if row.Sales == nil {
			continue
		}
		totals[row.Customer] += *row.Sales
	}

	result := make([]domain.CustomerSales, 0, len(totals))
	for customer, sales := range totals {
		result = append(result, domain.CustomerSales{
			Customer:       customer,
			Sales:          sales,
			SalesFormatted: utils.FormatMoney(sales),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Sales != result[j].Sales {
			return result[i].Sales > result[j].Sales
		}
		return result[i].Customer < result[j].Customer
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result
}

func truncateItems(items []domain.ItemProfit, limit int) []domain.ItemProfit {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// transactionRows monta a tabela de transações exibida no dashboard, com a
// coluna de vendas já formatada em moeda.
func transactionRows(rows []domain.MergedRow) []domain.TransactionRow {
	result := make([]domain.TransactionRow, 0, len(rows))

	for _, row := range rows {
		display := domain.TransactionRow{
			Timestamp: row.Timestamp.Format(time.DateTime),
			StaffName: row.StaffName(),
			Food:      row.Food,
			Customer:  row.Customer,
			Sales:     row.Sales,
		}
		if row.Sales != nil {
			display.SalesFormatted = utils.FormatMoney(*row.Sales)
		}

		result = append(result, display)
	}

	return result
}

// staffNamesAfterJoin devolve, em ordem alfabética, os nomes de
// funcionários que aparecem em pelo menos uma transação após o join — a
// mesma lista que a UI usa como seleção padrão.
func staffNamesAfterJoin(snapshot *domain.Snapshot) []string {
	seen := map[string]struct{}{}
	for _, tx := range snapshot.Transactions {
		if member, ok := snapshot.StaffByEmail[tx.User]; ok {
			seen[member.Name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// timestampRange devolve as datas (sem hora) da transação mais antiga e
// mais recente do snapshot.
func timestampRange(snapshot *domain.Snapshot) (time.Time, time.Time, bool) {
	if len(snapshot.Transactions) == 0 {
		return time.Time{}, time.Time{}, false
	}

	minDate := utils.DateOnly(snapshot.Transactions[0].Timestamp)
	maxDate := minDate

	for _, tx := range snapshot.Transactions[1:] {
		date := utils.DateOnly(tx.Timestamp)
		if date.Before(minDate) {
			minDate = date
		}
		if date.After(maxDate) {
			maxDate = date
		}
	}

	return minDate, maxDate, true
}
