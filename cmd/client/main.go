package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fahim1105/seu-matrimony/internal/adapter"
	"github.com/fahim1105/seu-matrimony/internal/client"
	"github.com/fahim1105/seu-matrimony/internal/config"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/internal/service"
	"github.com/fahim1105/seu-matrimony/internal/store"
	"github.com/fahim1105/seu-matrimony/internal/tui"
	"github.com/fahim1105/seu-matrimony/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const toastBuffer = 32

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("sync-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	toasts := notify.NewChan(toastBuffer)
	notifier := notify.Multi{notify.NewLogNotifier(log), toasts}

	services := service.NewClientServices(storages, serverAdapter, notifier, cfg, log)
	ui := tui.New(services.Session, toasts.C(), buildInfo, log)

	app, err := client.NewApp(services, ui, cfg.App.IDToken, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
