package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/infrastructure/database/postgres"
	"github.com/iqol/brand-pulse-api/infrastructure/repository"
	"github.com/iqol/brand-pulse-api/internal/api"
	"github.com/iqol/brand-pulse-api/internal/config"
	"github.com/iqol/brand-pulse-api/internal/scheduler"
	"github.com/iqol/brand-pulse-api/internal/usecases/authenticating"
	"github.com/iqol/brand-pulse-api/internal/usecases/brandpicking"
	"github.com/iqol/brand-pulse-api/internal/usecases/reporting"
	"github.com/iqol/brand-pulse-api/internal/usecases/tasking"
	"github.com/iqol/brand-pulse-api/internal/usecases/tracking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	userRepo := repository.NewUserRepository(pgConn)
	brandRepo := repository.NewBrandRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	blogRepo := repository.NewBlogRepository(pgConn)
	postRepo := repository.NewSocialPostRepository(pgConn)
	actionItemRepo := repository.NewActionItemRepository(pgConn)
	snapshotRepo := repository.NewBrandSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, brandRepo, cfg)
	brandPicker := brandpicking.NewService(brandRepo)
	reporter := reporting.NewService(brandRepo, metricRepo, blogRepo, postRepo)
	tracker := tracking.NewService(metricRepo, blogRepo, postRepo)
	tasker := tasking.NewService(actionItemRepo)

	digestSyncService := scheduler.NewBrandDigestSyncService(
		brandRepo,
		metricRepo,
		snapshotRepo,
		cfg,
	)

	if err := digestSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de digest de marcas")
	} else {
		logrus.Info("Agendador de digest de marcas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		brandPicker,
		reporter,
		tracker,
		tasker,
		digestSyncService,
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
