package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy"
	"github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/legacyclient"
	"github.com/vfg2006/sales-sync-api/infrastructure/repository"
	"github.com/vfg2006/sales-sync-api/internal/api"
	"github.com/vfg2006/sales-sync-api/internal/config"
	"github.com/vfg2006/sales-sync-api/internal/scheduler"
	"github.com/vfg2006/sales-sync-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-sync-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-sync-api/internal/usecases/synchronizing"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeRepo := repository.NewStoreRepository(pgConn)
	exchangeRepo := repository.NewExchangeRepository(pgConn)
	dailyRepo := repository.NewDailySalesRepository(pgConn)
	monthlyRepo := repository.NewMonthlySalesRepository(pgConn)
	yearlyRepo := repository.NewYearlySalesRepository(pgConn)

	repos := synchronizing.Repositories{
		Stores:        storeRepo,
		References:    repository.NewReferenceRepository(pgConn),
		Sales:         repository.NewSaleRepository(pgConn),
		Products:      repository.NewProductRepository(pgConn),
		Exchanges:     exchangeRepo,
		Collaborators: repository.NewCollaboratorRepository(pgConn),
		DailySales:    dailyRepo,
	}

	legacyClient := legacyclient.NewClient(cfg)
	legacyIntegrator := legacy.New(cfg, legacyClient)

	maintainer := aggregating.NewService(dailyRepo, monthlyRepo, yearlyRepo)
	synchronizer := synchronizing.NewService(cfg, legacyIntegrator, pgConn, repos, maintainer)
	reporter := reporting.NewService(storeRepo, exchangeRepo, dailyRepo, monthlyRepo, yearlyRepo)
	validator := authenticating.NewService(cfg)

	legacySyncService := scheduler.NewLegacySyncService(synchronizer, reporter, cfg)
	if err := legacySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização com o legado")
	} else {
		logrus.Info("Agendador de sincronização com o legado iniciado com sucesso")
	}

	server, err := api.New(cfg, synchronizer, reporter, validator, legacySyncService, pgConn)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
