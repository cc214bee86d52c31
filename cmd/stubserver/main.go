package main

import (
	"fmt"
	"os"

	"github.com/fahim1105/seu-matrimony/internal/config"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/server"
	"github.com/fahim1105/seu-matrimony/internal/stubserver"
	"github.com/fahim1105/seu-matrimony/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("stub-server")
	cfg, err := config.GetStubConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	mode, err := stubserver.ParseMode(cfg.Mode)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid stub mode")
	}

	backend := stubserver.NewBackend(cfg.InstitutionalDomain)
	backend.SeedBiodata(demoBiodata...)

	handler := stubserver.NewHandler(backend, mode, log)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

var demoBiodata = []stubserver.Biodata{
	{BiodataID: "1001", ObjectID: "6650a1f0c1d2e3f4a5b6c701", Email: "rahim@seu.edu.bd", Name: "Rahim"},
	{BiodataID: "1002", ObjectID: "6650a1f0c1d2e3f4a5b6c702", Email: "karim@seu.edu.bd", Name: "Karim"},
	{BiodataID: "1003", ObjectID: "6650a1f0c1d2e3f4a5b6c703", Email: "nusrat@seu.edu.bd", Name: "Nusrat"},
	{BiodataID: "1004", ObjectID: "6650a1f0c1d2e3f4a5b6c704", Email: "farzana@seu.edu.bd", Name: "Farzana"},
}
