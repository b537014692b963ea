package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gsheetmocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheet/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	schedulermocks "github.com/vfg2006/sales-dashboard-api/internal/scheduler/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/snapshotting"
	"go.uber.org/mock/gomock"
)

func newSyncService(refresher scheduler.SnapshotRefresher) *scheduler.SheetSyncService {
	return scheduler.NewSheetSyncService(refresher, &config.Config{
		SheetSync: config.SheetSync{CronSchedule: "*/30 * * * *", Enabled: false},
	})
}

func TestRefreshSheetsSynchronous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := gsheetmocks.NewMockSheetIntegrator(ctrl)
	integrator.EXPECT().FetchTransactions(gomock.Any()).Return([]domain.Transaction{}, domain.TableStats{}, nil)
	integrator.EXPECT().FetchItems(gomock.Any()).Return([]domain.Item{}, domain.TableStats{}, nil)
	integrator.EXPECT().FetchStaff(gomock.Any()).Return([]domain.Staff{}, domain.TableStats{}, nil)

	store := snapshotting.NewStore(integrator)
	refresher := schedulermocks.NewMockSnapshotRefresher(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/sheets/refresh", nil)
	rec := httptest.NewRecorder()

	RefreshSheets(store, newSyncService(refresher)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response["snapshot_id"])
}

func TestRefreshSheetsSourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := gsheetmocks.NewMockSheetIntegrator(ctrl)
	integrator.EXPECT().
		FetchTransactions(gomock.Any()).
		Return(nil, domain.TableStats{}, &domain.SourceFetchError{Source: "transactions", Err: assert.AnError})

	store := snapshotting.NewStore(integrator)
	refresher := schedulermocks.NewMockSnapshotRefresher(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/sheets/refresh", nil)
	rec := httptest.NewRecorder()

	RefreshSheets(store, newSyncService(refresher)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRC_001")
	assert.Contains(t, rec.Body.String(), "transactions")
}

// ?async=true delega a recarga ao agendador e responde 202 na hora
func TestRefreshSheetsAsync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// O caminho síncrono não roda: nenhuma expectativa no integrador
	store := snapshotting.NewStore(gsheetmocks.NewMockSheetIntegrator(ctrl))

	done := make(chan struct{})
	refresher := schedulermocks.NewMockSnapshotRefresher(ctrl)
	refresher.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(_ context.Context) (*domain.Snapshot, error) {
			close(done)
			return &domain.Snapshot{ID: "abc123"}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/sheets/refresh?async=true", nil)
	rec := httptest.NewRecorder()

	RefreshSheets(store, newSyncService(refresher)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response, "sync")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("a recarga em segundo plano não foi disparada")
	}
}

func TestSheetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhum snapshot carregado ainda
	store := snapshotting.NewStore(gsheetmocks.NewMockSheetIntegrator(ctrl))
	refresher := schedulermocks.NewMockSnapshotRefresher(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/sheets/status", nil)
	rec := httptest.NewRecorder()

	SheetStatus(store, newSyncService(refresher)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Nil(t, response["snapshot"])
	assert.Contains(t, response, "sync")
}
