package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/dataset"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/dataset/csvloader"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/repository"
	"github.com/vfg2006/ecommerce-dashboard/internal/api"
	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/internal/scheduler"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports, err := domain.ParseReportKinds(cfg.Dashboard.Reports)
	if err != nil {
		logrus.WithError(err).Fatal("DASHBOARD_REPORTS inválido")
	}
	if len(reports) == 0 {
		logrus.Fatal("DASHBOARD_REPORTS deve habilitar pelo menos um relatório")
	}

	loader, closeLoader := newLoader(ctx, cfg)
	defer closeLoader()

	reportingService := reporting.NewService(loader, reports)

	// Sem snapshot inicial o dashboard não tem o que exibir
	if _, err := reportingService.Reload(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset inicial")
	}

	reloadService := scheduler.NewDatasetReloadService(reportingService, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	authenticator := authenticating.NewService(cfg)
	if cfg.Auth.Secret == "" {
		logrus.Warn("AUTH_SECRET vazio: rotas administrativas vão rejeitar todos os tokens")
	}

	server, err := api.New(cfg, reportingService, reloadService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz os caminhos relativos (.env, DATA_DIR) partirem do diretório do main
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// newLoader escolhe a origem do dataset conforme DATA_SOURCE
func newLoader(ctx context.Context, cfg *config.Config) (dataset.Loader, func()) {
	if cfg.Dataset.Source != domain.DatasetSourcePostgres {
		logrus.WithField("dir", cfg.Dataset.Dir).Info("Dataset será lido dos arquivos CSV")
		return csvloader.New(cfg.Dataset), func() {}
	}

	conn := pgconn(ctx, cfg.Database)
	return repository.NewDatasetRepository(conn), func() { conn.Close() }
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
