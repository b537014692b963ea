package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/snapshotting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service),
		},
	}
}

func Sheets(store *snapshotting.Store, syncService *scheduler.SheetSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sheets/refresh",
			Method:  http.MethodPost,
			Handler: RefreshSheets(store, syncService),
		},
		{
			Path:    "/v1/sheets/status",
			Method:  http.MethodGet,
			Handler: SheetStatus(store, syncService),
		},
	}
}
