package gsheet

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheet/gsheetclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Nomes das fontes, usados em erros e logs para apontar qual aba falhou
const (
	SourceTransactions = "transactions"
	SourceItems        = "items"
	SourceStaff        = "staff"
)

// SheetIntegrator carrega e normaliza as três tabelas de origem.
type SheetIntegrator interface {
	FetchTransactions(ctx context.Context) ([]domain.Transaction, domain.TableStats, error)
	FetchItems(ctx context.Context) ([]domain.Item, domain.TableStats, error)
	FetchStaff(ctx context.Context) ([]domain.Staff, domain.TableStats, error)
}

type GSheetService struct {
	cfg    *config.Config
	Client gsheetclient.Client
}

func New(cfg *config.Config, client gsheetclient.Client) SheetIntegrator {
	return &GSheetService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GSheetService) FetchTransactions(ctx context.Context) ([]domain.Transaction, domain.TableStats, error) {
	ref := gsheetclient.SheetRef{Name: SourceTransactions, GID: s.cfg.Sheets.TransactionsGID}

	rows, err := s.Client.FetchTable(ctx, ref)
	if err != nil {
		return nil, domain.TableStats{}, &domain.SourceFetchError{Source: ref.Name, Err: err}
	}

	transactions, stats, err := normalizeTransactions(rows)
	if err != nil {
		return nil, stats, &domain.SourceFetchError{Source: ref.Name, Err: err}
	}

	return transactions, stats, nil
}

func (s *GSheetService) FetchItems(ctx context.Context) ([]domain.Item, domain.TableStats, error) {
	ref := gsheetclient.SheetRef{Name: SourceItems, GID: s.cfg.Sheets.ItemsGID}

	rows, err := s.Client.FetchTable(ctx, ref)
	if err != nil {
		return nil, domain.TableStats{}, &domain.SourceFetchError{Source: ref.Name, Err: err}
	}

	items, stats, err := normalizeItems(rows)
	if err != nil {
		return nil, stats, &domain.SourceFetchError{Source: ref.Name, Err: err}
	}

	return items, stats, nil
}

func (s *GSheetService) FetchStaff(ctx context.Context) ([]domain.Staff, domain.TableStats, error) {
	ref := gsheetclient.SheetRef{Name: SourceStaff, GID: s.cfg.Sheets.StaffGID}

	rows, err := s.Client.FetchTable(ctx, ref)
	if err != nil {
		return nil, domain.TableStats{}, &domain.SourceFetchError{Source: ref.Name, Err: err}
	}

	staff, stats, err := normalizeStaff(rows, s.cfg.Sheets.StaffSkipRows)
	if err != nil {
		return nil, stats, &domain.SourceFetchError{Source: ref.Name, Err: err}
	}

	return staff, stats, nil
}
