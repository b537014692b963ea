package gsheet

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Layouts aceitos para a coluna Timestamp. A planilha de origem usa datas
// com o dia na frente (formulário em locale australiano); os demais layouts
// cobrem células reformatadas manualmente.
var timestampLayouts = []string{
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.DateOnly,
}

// Colunas obrigatórias da aba de transações, resolvidas pelo cabeçalho
const (
	colTimestamp = "Timestamp"
	colFood      = "Food"
	colUser      = "User"
	colCustomer  = "Customer"
	colAmount    = "Amount"
)

// normalizeTransactions converte a matriz CSV da aba de transações em linhas
// tipadas. Timestamps ilegíveis descartam a linha (contabilizada, nunca
// fatal); Amount inválido vira ausente.
func normalizeTransactions(rows [][]string) ([]domain.Transaction, domain.TableStats, error) {
	stats := domain.TableStats{}

	if len(rows) == 0 {
		return nil, stats, errors.New("a planilha não retornou nenhuma linha")
	}

	header := rows[0]
	indexes := map[string]int{}
	for i, name := range header {
		indexes[strings.ToLower(strings.TrimSpace(name))] = i
	}

	required := []string{colTimestamp, colFood, colUser, colCustomer, colAmount}
	for _, name := range required {
		if _, ok := indexes[strings.ToLower(name)]; !ok {
			return nil, stats, errors.Errorf("coluna obrigatória %q ausente no cabeçalho", name)
		}
	}

	transactions := make([]domain.Transaction, 0, len(rows)-1)

	for _, row := range rows[1:] {
		stats.Rows++

		rawTimestamp := cell(row, indexes[strings.ToLower(colTimestamp)])
		timestamp, err := parseTimestamp(rawTimestamp)
		if err != nil {
			// Sem timestamp a linha não pode ser filtrada por período
			stats.SkippedRows++
			stats.ParseIssues++
			logrus.WithFields(logrus.Fields{
				"value": rawTimestamp,
			}).Debug("Transação descartada: timestamp ilegível")
			continue
		}

		rawAmount := cell(row, indexes[strings.ToLower(colAmount)])
		amount := utils.ParseAmount(rawAmount)
		if amount == nil && strings.TrimSpace(rawAmount) != "" {
			stats.ParseIssues++
		}

		transactions = append(transactions, domain.Transaction{
			Timestamp: timestamp,
			Food:      strings.TrimSpace(cell(row, indexes[strings.ToLower(colFood)])),
			User:      strings.TrimSpace(cell(row, indexes[strings.ToLower(colUser)])),
			Customer:  strings.TrimSpace(cell(row, indexes[strings.ToLower(colCustomer)])),
			Amount:    amount,
		})
	}

	return transactions, stats, nil
}

// normalizeItems converte a tabela de preços. As colunas chegam sem nomes
// confiáveis e são renomeadas posicionalmente para
// {Item, Material Cost, RRP, Mates Rates}, como no dashboard original.
func normalizeItems(rows [][]string) ([]domain.Item, domain.TableStats, error) {
	stats := domain.TableStats{}

	if len(rows) < 2 {
		return nil, stats, errors.New("a tabela de preços não tem linhas de dados")
	}

	items := make([]domain.Item, 0, len(rows)-1)

	for _, row := range rows[1:] {
		stats.Rows++

		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			stats.SkippedRows++
			continue
		}

		item := domain.Item{
			Name:         name,
			MaterialCost: utils.ParseMoney(cell(row, 1)),
			RRP:          utils.ParseMoney(cell(row, 2)),
			MatesRates:   utils.ParseMoney(cell(row, 3)),
		}

		for _, parsed := range []struct {
			raw   string
			value *float64
		}{
			{cell(row, 1), item.MaterialCost},
			{cell(row, 2), item.RRP},
			{cell(row, 3), item.MatesRates},
		} {
			if parsed.value == nil && strings.TrimSpace(parsed.raw) != "" {
				stats.ParseIssues++
			}
		}

		items = append(items, item)
	}

	return items, stats, nil
}

// normalizeStaff converte a escala de funcionários. A aba tem uma região de
// cabeçalho irregular fixa: skipRows linhas decorativas, depois a linha de
// títulos, e só as duas primeiras colunas carregam dados.
func normalizeStaff(rows [][]string, skipRows int) ([]domain.Staff, domain.TableStats, error) {
	stats := domain.TableStats{}

	// skipRows linhas decorativas + 1 linha de títulos
	dataStart := skipRows + 1
	if len(rows) <= dataStart {
		return nil, stats, errors.Errorf("a escala de funcionários tem menos de %d linhas", dataStart+1)
	}

	staff := make([]domain.Staff, 0, len(rows)-dataStart)

	for _, row := range rows[dataStart:] {
		stats.Rows++

		email := strings.TrimSpace(cell(row, 0))
		if email == "" {
			stats.SkippedRows++
			continue
		}

		staff = append(staff, domain.Staff{
			Email: email,
			Name:  strings.TrimSpace(cell(row, 1)),
		})
	}

	return staff, stats, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// cell lê uma célula com tolerância a linhas mais curtas que o cabeçalho
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
