package snapshotting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ErrNoSnapshot indica que nenhum carregamento completou ainda
var ErrNoSnapshot = errors.New("nenhum snapshot de dados carregado ainda")

// Store guarda o snapshot corrente das três tabelas de origem. O snapshot é
// trocado por inteiro a cada Refresh; as requisições leem a referência sob
// RLock e nunca mutam o conteúdo.
type Store struct {
	integrator gsheet.SheetIntegrator

	mu      sync.RWMutex
	current *domain.Snapshot
}

func NewStore(integrator gsheet.SheetIntegrator) *Store {
	return &Store{
		integrator: integrator,
	}
}

// Current retorna o snapshot mais recente, ou ErrNoSnapshot antes do
// primeiro carregamento bem-sucedido.
func (s *Store) Current() (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoSnapshot
	}

	return s.current, nil
}

// Refresh recarrega as três tabelas do provedor e troca o snapshot. O
// carregamento é tudo-ou-nada: qualquer falha de fonte preserva o snapshot
// anterior e devolve o erro (que nomeia a aba que falhou).
func (s *Store) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	startedAt := time.Now()

	transactions, txStats, err := s.integrator.FetchTransactions(ctx)
	if err != nil {
		return nil, err
	}

	items, itemStats, err := s.integrator.FetchItems(ctx)
	if err != nil {
		return nil, err
	}

	staff, staffStats, err := s.integrator.FetchStaff(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := buildSnapshot(transactions, items, staff)
	snapshot.Stats = domain.LoadStats{
		Transactions: txStats,
		Items:        itemStats,
		Staff:        staffStats,
	}

	s.mu.Lock()
	s.current = snapshot
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id":  snapshot.ID,
		"transactions": len(transactions),
		"items":        len(items),
		"staff":        len(staff),
		"warnings":     len(snapshot.Warnings),
		"duration_ms":  time.Since(startedAt).Milliseconds(),
	}).Info("Snapshot das planilhas atualizado")

	return snapshot, nil
}

// buildSnapshot monta os índices de join e valida a unicidade das chaves.
// Chaves duplicadas não bloqueiam a renderização: o índice mantém a primeira
// ocorrência e o usuário é avisado.
func buildSnapshot(
	transactions []domain.Transaction,
	items []domain.Item,
	staff []domain.Staff,
) *domain.Snapshot {
	id, _ := utils.GenerateID()

	snapshot := &domain.Snapshot{
		ID:           id,
		LoadedAt:     time.Now(),
		Transactions: transactions,
		Items:        items,
		Staff:        staff,
		ItemByName:   make(map[string]*domain.Item, len(items)),
		StaffByEmail: make(map[string]*domain.Staff, len(staff)),
	}

	for i := range items {
		item := &items[i]
		if _, exists := snapshot.ItemByName[item.Name]; exists {
			warning := fmt.Sprintf("tabela de preços tem o item %q duplicado; mantendo a primeira ocorrência", item.Name)
			snapshot.Warnings = append(snapshot.Warnings, warning)
			logrus.Warn(warning)
			continue
		}
		snapshot.ItemByName[item.Name] = item
	}

	for i := range staff {
		member := &staff[i]
		if _, exists := snapshot.StaffByEmail[member.Email]; exists {
			warning := fmt.Sprintf("escala de funcionários tem o e-mail %q duplicado; mantendo a primeira ocorrência", member.Email)
			snapshot.Warnings = append(snapshot.Warnings, warning)
			logrus.Warn(warning)
			continue
		}
		snapshot.StaffByEmail[member.Email] = member
	}

	return snapshot
}
