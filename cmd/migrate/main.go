package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-sync-api/infrastructure/migration"
	"github.com/vfg2006/sales-sync-api/internal/config"
)

func main() {
	skipSeeds := flag.Bool("skip-seeds", false, "não insere os códigos de referência iniciais")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	applied, err := migration.Apply(ctx, conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
	logrus.WithField("applied", applied).Info("Migrações concluídas")

	if !*skipSeeds {
		inserted, existing, err := migration.ApplySeeds(ctx, conn, migration.DefaultSeeds())
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao inserir códigos de referência")
		}
		logrus.WithFields(logrus.Fields{
			"inserted": inserted,
			"existing": existing,
		}).Info("Códigos de referência iniciais verificados")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Banco de dados pronto")
}
