package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// GetDashboard devolve a carga completa do dashboard para os filtros
// informados (ou para os padrões: intervalo inteiro, todos os funcionários)
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: parâmetros de filtro inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.BuildDashboard(filters)
		if err != nil {
			writeReportError(w, logger, err, "dashboard: falha ao montar o relatório")
			return
		}

		logger.WithFields(log.Fields{
			"transaction_count": report.Summary.TransactionCount,
			"staff_count":       len(report.SalesByStaff),
		}).Info("dashboard: relatório montado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetFilterOptions devolve o intervalo de datas disponível e os nomes de
// funcionários, usados pela UI para montar os filtros
func GetFilterOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.FilterOptions()
		if err != nil {
			writeReportError(w, logger, err, "dashboard: falha ao obter as opções de filtro")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListTransactions devolve somente a tabela de transações filtrada
func ListTransactions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("transactions: parâmetros de filtro inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		transactions, err := service.ListTransactions(filters)
		if err != nil {
			writeReportError(w, logger, err, "transactions: falha ao listar transações")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(transactions); err != nil {
			logger.WithError(err).Error("transactions: falha ao serializar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseReportFilters lê os filtros da query string. O parâmetro staff pode
// se repetir; quando presente e vazio, a seleção é o conjunto vazio (nenhum
// funcionário), diferente de ausente (todos).
func parseReportFilters(r *http.Request) (*domain.ReportFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, errors.Wrap(err, "start_date inválido")
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, errors.Wrap(err, "end_date inválido")
	}

	filters := &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if staffValues, ok := r.URL.Query()["staff"]; ok {
		names := make([]string, 0, len(staffValues))
		for _, name := range staffValues {
			if name != "" {
				names = append(names, name)
			}
		}
		filters.StaffNames = names
	}

	return filters, nil
}

// writeReportError mapeia os erros do pipeline para a taxonomia da API
func writeReportError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	switch {
	case errors.Is(err, reporting.ErrInvalidDateRange):
		logger.WithError(err).Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
	case errors.Is(err, snapshotting.ErrNoSnapshot):
		logger.WithError(err).Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrSnapshotNotLoaded, err.Error(), nil)
	default:
		logger.WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
