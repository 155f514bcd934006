package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-patient-vault/internal/adapter"
	"github.com/MKhiriev/go-patient-vault/internal/client"
	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/MKhiriev/go-patient-vault/internal/tui"
	"github.com/MKhiriev/go-patient-vault/internal/workers"
	"github.com/MKhiriev/go-patient-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	log := logger.NewClientLogger("patient-vault")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	connector := store.NewConnector(cfg.Storage.DB, log, nil)
	defer connector.Close()

	storages, err := store.NewStorages(context.Background(), connector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	feed, err := adapter.NewHTTPFeedAdapter(cfg.Feed, log)
	if err != nil {
		if !errors.Is(err, adapter.ErrOffline) {
			log.Fatal().Err(err).Msg("create feed adapter")
		}
		log.Info().Msg("no feed address configured, running offline")
		feed = nil
	}

	sess := session.New()
	keyChain := crypto.NewKeyChain(crypto.WithIterations(cfg.Crypto.KDFIterations))
	services := service.NewServices(storages, keyChain, sess, feed, cfg)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(workers.NewBackupWorker(services.BackupJob, cfg.Workers)), sess, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
