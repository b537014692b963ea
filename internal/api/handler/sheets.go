package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// RefreshSheets recarrega o snapshot das planilhas. Por padrão a recarga é
// síncrona: uma falha de fonte responde 502 nomeando a aba que falhou e o
// snapshot anterior permanece válido. Com ?async=true a recarga é delegada
// ao agendador e a resposta é 202 com o estado corrente da sincronização.
func RefreshSheets(store *snapshotting.Store, syncService *scheduler.SheetSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("sheets: atualização manual do snapshot solicitada")

		if r.URL.Query().Get("async") == "true" {
			syncService.TriggerManualSync()

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			response := map[string]any{
				"message": "Atualização do snapshot iniciada",
				"sync":    syncService.GetStatus(),
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				logger.WithError(err).Error("sheets: falha ao serializar a resposta")
			}
			return
		}

		snapshot, err := store.Refresh(r.Context())
		if err != nil {
			var fetchErr *domain.SourceFetchError
			if errors.As(err, &fetchErr) {
				logger.WithError(err).Error("sheets: fonte de dados falhou")
				apiErrors.WriteError(w, apiErrors.ErrSourceFetch, err.Error(), map[string]any{
					"source": fetchErr.Source,
				})
				return
			}

			logger.WithError(err).Error("sheets: falha ao atualizar o snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		response := map[string]any{
			"message":     "Snapshot atualizado com sucesso",
			"snapshot_id": snapshot.ID,
			"loaded_at":   snapshot.LoadedAt,
			"stats":       snapshot.Stats,
			"warnings":    snapshot.Warnings,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("sheets: falha ao serializar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SheetStatus retorna o estado do snapshot corrente e do agendador
func SheetStatus(store *snapshotting.Store, syncService *scheduler.SheetSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"sync": syncService.GetStatus(),
		}

		snapshot, err := store.Current()
		if err != nil {
			status["snapshot"] = nil
		} else {
			status["snapshot"] = map[string]any{
				"id":        snapshot.ID,
				"loaded_at": snapshot.LoadedAt,
				"stats":     snapshot.Stats,
				"warnings":  snapshot.Warnings,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("sheets: falha ao serializar a resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
