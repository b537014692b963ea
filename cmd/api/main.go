package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheet"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheet/gsheetclient"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/snapshotting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetClient := gsheetclient.NewClient(cfg)
	sheetIntegrator := gsheet.New(cfg, sheetClient)

	snapshotStore := snapshotting.NewStore(sheetIntegrator)

	// Carga inicial: sem as três planilhas não há dashboard para servir
	if _, err := snapshotStore.Refresh(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as planilhas de origem")
	}

	reportService := reporting.NewService(cfg, snapshotStore)

	sheetSyncService := scheduler.NewSheetSyncService(snapshotStore, cfg)
	if err := sheetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização das planilhas")
	} else {
		logrus.Info("Agendador de atualização das planilhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		snapshotStore,
		sheetSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
