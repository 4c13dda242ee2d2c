package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-admin-api/infrastructure/dataset"
	"github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats"
	"github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats/statsclient"
	"github.com/vfg2006/customer-admin-api/infrastructure/repository"
	"github.com/vfg2006/customer-admin-api/internal/api"
	"github.com/vfg2006/customer-admin-api/internal/config"
	"github.com/vfg2006/customer-admin-api/internal/scheduler"
	"github.com/vfg2006/customer-admin-api/internal/usecases/dashboarding"
	"github.com/vfg2006/customer-admin-api/internal/usecases/storing"
	"github.com/vfg2006/customer-admin-api/internal/usecases/viewing"
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

	source := customerSource(ctx, cfg)

	customers, err := source.LoadCustomers()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a coleção inicial de clientes")
	}
	logrus.WithField("customers", len(customers)).Info("Coleção de clientes carregada com sucesso")

	store, err := storing.New(customers)
	if err != nil {
		logrus.WithError(err).Fatal("Coleção de clientes inválida")
	}

	viewService := viewing.NewService(store, viewing.AutoConfirm{}, cfg.Pagination.DefaultPageSize)

	statsClient := statsclient.NewClient(cfg)
	statsIntegrator := stats.New(cfg, statsClient)

	dashboardService := dashboarding.NewService(cfg, statsIntegrator)

	// Inicializa o agendador de snapshot do dashboard
	dashboardSnapshotService := scheduler.NewDashboardSnapshotService(dashboardService, cfg)

	if err := dashboardSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do dashboard")
	} else {
		logrus.Info("Agendador de snapshot do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		viewService,
		dashboardService,
		dashboardSnapshotService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// customerSource escolhe a fonte da coleção de clientes conforme a
// configuração: arquivo JSON local ou banco PostgreSQL
func customerSource(ctx context.Context, cfg *config.Config) dataset.CustomerSource {
	if cfg.Dataset.Source == "postgres" {
		return repository.NewCustomerRepository(pgconn(ctx, cfg.Database))
	}

	return dataset.NewFileSource(cfg.Dataset.Path)
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
