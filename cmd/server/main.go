package main

import (
	"context"
	"fmt"

	"github.com/ndanilkin/go-vault-server/internal/config"
	myHTTP "github.com/ndanilkin/go-vault-server/internal/handler/http"
	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/mail"
	"github.com/ndanilkin/go-vault-server/internal/notify"
	"github.com/ndanilkin/go-vault-server/internal/server"
	"github.com/ndanilkin/go-vault-server/internal/service"
	"github.com/ndanilkin/go-vault-server/internal/store"
	"github.com/ndanilkin/go-vault-server/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	notifier := notify.NewNotifier(cfg.Push, log)
	mailer := mail.NewMailer(cfg.Mail, log)

	services := service.NewServices(*storages, storages.DB, notifier, mailer, *cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(services, cfg.Workers, log)
	background.Run()
	defer background.Stop()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
