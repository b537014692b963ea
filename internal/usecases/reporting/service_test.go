package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func testReportConfig() *config.Config {
	return &config.Config{
		Report: config.Report{
			PayRate:  0.30,
			TopLimit: 10,
		},
	}
}

// newSnapshot monta um snapshot de teste com os índices de join, do mesmo
// jeito que o carregamento faria
func newSnapshot(
	transactions []domain.Transaction,
	items []domain.Item,
	staff []domain.Staff,
) *domain.Snapshot {
	snapshot := &domain.Snapshot{
		ID:           "test",
		LoadedAt:     time.Now(),
		Transactions: transactions,
		Items:        items,
		Staff:        staff,
		ItemByName:   make(map[string]*domain.Item, len(items)),
		StaffByEmail: make(map[string]*domain.Staff, len(staff)),
	}

	for i := range items {
		snapshot.ItemByName[items[i].Name] = &items[i]
	}
	for i := range staff {
		snapshot.StaffByEmail[staff[i].Email] = &staff[i]
	}

	return snapshot
}

func newService(t *testing.T, snapshot *domain.Snapshot) Reporter {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Current().Return(snapshot, nil).AnyTimes()

	return NewService(testReportConfig(), provider)
}

// O cenário de referência: Cod a $5.00 com custo $2.00, duas unidades
// vendidas pela Alice para o Bob
func TestBuildDashboardScenario(t *testing.T) {
	snapshot := newSnapshot(
		[]domain.Transaction{
			{
				Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Food:      "Cod",
				User:      "a@x.com",
				Customer:  "Bob",
				Amount:    floatPtr(2),
			},
		},
		[]domain.Item{
			{Name: "Cod", MaterialCost: floatPtr(2), RRP: floatPtr(5)},
		},
		[]domain.Staff{
			{Email: "a@x.com", Name: "Alice"},
		},
	)

	report, err := newService(t, snapshot).BuildDashboard(nil)
	require.NoError(t, err)

	assert.Equal(t, 10.0, report.Summary.TotalSales)
	assert.Equal(t, "$10.00", report.Summary.TotalSalesFormatted)
	assert.Equal(t, 1, report.Summary.TransactionCount)

	require.NotNil(t, report.Summary.TopSeller)
	assert.Equal(t, "Alice", report.Summary.TopSeller.Name)
	assert.Equal(t, "$10.00", report.Summary.TopSeller.SalesFormatted)

	require.Len(t, report.SalesByStaff, 1)
	assert.Equal(t, "Alice", report.SalesByStaff[0].StaffName)
	assert.Equal(t, 10.0, report.SalesByStaff[0].Sales)
	assert.Equal(t, 3.0, report.SalesByStaff[0].Pay) // 30% de comissão

	require.Len(t, report.ProfitByItem, 1)
	assert.Equal(t, "Cod", report.ProfitByItem[0].Item)
	assert.Equal(t, 6.0, report.ProfitByItem[0].Profit)
	assert.Equal(t, 2.0, report.ProfitByItem[0].QuantitySold)

	require.Len(t, report.SalesByCustomer, 1)
	assert.Equal(t, "Bob", report.SalesByCustomer[0].Customer)
	assert.Equal(t, 10.0, report.SalesByCustomer[0].Sales)

	require.Len(t, report.Transactions, 1)
	assert.Equal(t, "Alice", report.Transactions[0].StaffName)
	assert.Equal(t, "$10.00", report.Transactions[0].SalesFormatted)

	assert.Equal(t, "2024-01-01", report.Filters.StartDate)
	assert.Equal(t, "2024-01-01", report.Filters.EndDate)
	assert.Equal(t, []string{"Alice"}, report.Filters.StaffNames)
}

// Quantidade ilegível ("N/A" na planilha) fica fora das somas, sem quebrar
// e sem virar zero
func TestBuildDashboardMissingAmountExcludedFromSums(t *testing.T) {
	snapshot := newSnapshot(
		[]domain.Transaction{
			{
				Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Food:      "Cod",
				User:      "a@x.com",
				Customer:  "Bob",
				Amount:    floatPtr(2),
			},
			{
				Timestamp: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
				Food:      "Cod",
				User:      "a@x.com",
				Customer:  "Carol",
				Amount:    nil, // era "N/A" na origem
			},
		},
		[]domain.Item{
			{Name: "Cod", MaterialCost: floatPtr(2), RRP: floatPtr(5)},
		},
		[]domain.Staff{
			{Email: "a@x.com", Name: "Alice"},
		},
	)

	report, err := newService(t, snapshot).BuildDashboard(nil)
	require.NoError(t, err)

	// A linha conta como transação, mas não entra nas somas
	assert.Equal(t, 10.0, report.Summary.TotalSales)
	assert.Equal(t, 2, report.Summary.TransactionCount)

	require.Len(t, report.Transactions, 2)
	var carolRow domain.TransactionRow
	for _, row := range report.Transactions {
		if row.Customer == "Carol" {
			carolRow = row
		}
	}
	assert.Nil(t, carolRow.Sales)
	assert.Empty(t, carolRow.SalesFormatted)
}

// Seleção explícita vazia de funcionários não seleciona nada: métricas
// zeradas e gráficos vazios, sem erro
func TestBuildDashboardEmptyStaffSelection(t *testing.T) {
	snapshot := scenarioSnapshot()

	report, err := newService(t, snapshot).BuildDashboard(&domain.ReportFilters{
		StaffNames: []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.Summary.TotalSales)
	assert.Equal(t, "$0.00", report.Summary.TotalSalesFormatted)
	assert.Equal(t, 0, report.Summary.TransactionCount)
	assert.Nil(t, report.Summary.TopSeller)
	assert.Empty(t, report.SalesByStaff)
	assert.Empty(t, report.ProfitByItem)
	assert.Empty(t, report.SalesByCustomer)
	assert.Empty(t, report.Transactions)
}

// O filtro de período é inclusivo nas duas pontas e compara apenas a data
func TestBuildDashboardDateRangeInclusive(t *testing.T) {
	snapshot := newSnapshot(
		[]domain.Transaction{
			{Timestamp: time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC), Food: "Cod", User: "a@x.com", Customer: "Bob", Amount: floatPtr(1)},
			{Timestamp: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), Food: "Cod", User: "a@x.com", Customer: "Bob", Amount: floatPtr(1)},
			{Timestamp: time.Date(2024, 1, 3, 23, 59, 59, 0, time.UTC), Food: "Cod", User: "a@x.com", Customer: "Bob", Amount: floatPtr(1)},
			{Timestamp: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), Food: "Cod", User: "a@x.com", Customer: "Bob", Amount: floatPtr(1)},
		},
		[]domain.Item{{Name: "Cod", RRP: floatPtr(5)}},
		[]domain.Staff{{Email: "a@x.com", Name: "Alice"}},
	)

	report, err := newService(t, snapshot).BuildDashboard(&domain.ReportFilters{
		StartDate: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:   timePtr(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	// As pontas entram, mesmo com hora tardia no último dia
	assert.Equal(t, 3, report.Summary.TransactionCount)
}

// Estreitar o período nunca adiciona linhas ao resultado
func TestBuildDashboardMonotonicNarrowing(t *testing.T) {
	snapshot := scenarioSnapshot()
	service := newService(t, snapshot)

	full, err := service.BuildDashboard(nil)
	require.NoError(t, err)

	narrow, err := service.BuildDashboard(&domain.ReportFilters{
		StartDate: timePtr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
		EndDate:   timePtr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, narrow.Summary.TransactionCount, full.Summary.TransactionCount)
	assert.LessOrEqual(t, narrow.Summary.TotalSales, full.Summary.TotalSales)

	// Toda transação do conjunto estreito está no conjunto completo
	fullSet := map[string]bool{}
	for _, row := range full.Transactions {
		fullSet[row.Timestamp+row.Customer] = true
	}
	for _, row := range narrow.Transactions {
		assert.True(t, fullSet[row.Timestamp+row.Customer])
	}
}

// O Top Seller tem vendas somadas maiores ou iguais às de qualquer outro
// funcionário do conjunto filtrado
func TestBuildDashboardTopSellerDominance(t *testing.T) {
	snapshot := scenarioSnapshot()

	report, err := newService(t, snapshot).BuildDashboard(nil)
	require.NoError(t, err)

	require.NotNil(t, report.Summary.TopSeller)
	for _, staffSales := range report.SalesByStaff {
		assert.GreaterOrEqual(t, report.Summary.TopSeller.Sales, staffSales.Sales)
	}

	// Total Sales é exatamente a soma das vendas por linha
	var sum float64
	for _, row := range report.Transactions {
		if row.Sales != nil {
			sum += *row.Sales
		}
	}
	assert.InDelta(t, sum, report.Summary.TotalSales, 0.0001)
}

func TestBuildDashboardInvalidDateRange(t *testing.T) {
	report, err := newService(t, scenarioSnapshot()).BuildDashboard(&domain.ReportFilters{
		StartDate: timePtr(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:   timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

// Rankings de cliente e item respeitam o limite configurado
func TestBuildDashboardTopLimit(t *testing.T) {
	transactions := make([]domain.Transaction, 0, 12)
	for i := 0; i < 12; i++ {
		transactions = append(transactions, domain.Transaction{
			Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			Food:      "Cod",
			User:      "a@x.com",
			Customer:  fmt.Sprintf("Customer %02d", i),
			Amount:    floatPtr(float64(i + 1)),
		})
	}

	snapshot := newSnapshot(
		transactions,
		[]domain.Item{{Name: "Cod", MaterialCost: floatPtr(2), RRP: floatPtr(5)}},
		[]domain.Staff{{Email: "a@x.com", Name: "Alice"}},
	)

	report, err := newService(t, snapshot).BuildDashboard(nil)
	require.NoError(t, err)

	assert.Len(t, report.SalesByCustomer, 10)
	// Ordenado do maior para o menor
	assert.Equal(t, "Customer 11", report.SalesByCustomer[0].Customer)
	assert.Equal(t, 60.0, report.SalesByCustomer[0].Sales)
}

// Linha cujo prato não está na tabela de preços sobrevive ao join (left
// join), aparece na tabela, mas não tem vendas derivadas
func TestBuildDashboardUnmatchedItem(t *testing.T) {
	snapshot := newSnapshot(
		[]domain.Transaction{
			{Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Food: "Cod", User: "a@x.com", Customer: "Bob", Amount: floatPtr(2)},
			{Timestamp: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC), Food: "Misterioso", User: "a@x.com", Customer: "Bob", Amount: floatPtr(1)},
		},
		[]domain.Item{{Name: "Cod", MaterialCost: floatPtr(2), RRP: floatPtr(5)}},
		[]domain.Staff{{Email: "a@x.com", Name: "Alice"}},
	)

	report, err := newService(t, snapshot).BuildDashboard(nil)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TransactionCount)
	assert.Equal(t, 10.0, report.Summary.TotalSales)

	// O item sem correspondência não tem chave para o agrupamento de lucro
	require.Len(t, report.ProfitByItem, 1)
	assert.Equal(t, "Cod", report.ProfitByItem[0].Item)
}

func TestFilterOptions(t *testing.T) {
	options, err := newService(t, scenarioSnapshot()).FilterOptions()
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", options.MinDate)
	assert.Equal(t, "2024-01-03", options.MaxDate)
	assert.Equal(t, []string{"Alice", "Bruno"}, options.StaffNames)
}

func TestListTransactions(t *testing.T) {
	transactions, err := newService(t, scenarioSnapshot()).ListTransactions(&domain.ReportFilters{
		StaffNames: []string{"Bruno"},
	})
	require.NoError(t, err)

	require.Len(t, transactions, 1)
	assert.Equal(t, "Bruno", transactions[0].StaffName)
}

func TestBuildDashboardPropagatesSnapshotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Current().Return(nil, assert.AnError)

	service := NewService(testReportConfig(), provider)

	_, err := service.BuildDashboard(nil)
	assert.ErrorIs(t, err, assert.AnError)
}

// scenarioSnapshot tem dois funcionários, três dias de vendas e um cliente
// recorrente — suficiente para os rankings e os filtros
func scenarioSnapshot() *domain.Snapshot {
	return newSnapshot(
		[]domain.Transaction{
			{Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Food: "Cod", User: "a@x.com", Customer: "Bob", Amount: floatPtr(2)},
			{Timestamp: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), Food: "Prawns", User: "b@x.com", Customer: "Carol", Amount: floatPtr(1)},
			{Timestamp: time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC), Food: "Cod", User: "a@x.com", Customer: "Bob", Amount: floatPtr(3)},
		},
		[]domain.Item{
			{Name: "Cod", MaterialCost: floatPtr(2), RRP: floatPtr(5)},
			{Name: "Prawns", MaterialCost: floatPtr(10), RRP: floatPtr(25)},
		},
		[]domain.Staff{
			{Email: "a@x.com", Name: "Alice"},
			{Email: "b@x.com", Name: "Bruno"},
		},
	)
}
