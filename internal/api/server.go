package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/internal/api/handler"
	"github.com/iqol/brand-pulse-api/internal/api/handler/router"
	"github.com/iqol/brand-pulse-api/internal/config"
	"github.com/iqol/brand-pulse-api/internal/scheduler"
	"github.com/iqol/brand-pulse-api/internal/usecases/authenticating"
	"github.com/iqol/brand-pulse-api/internal/usecases/brandpicking"
	"github.com/iqol/brand-pulse-api/internal/usecases/reporting"
	"github.com/iqol/brand-pulse-api/internal/usecases/tasking"
	"github.com/iqol/brand-pulse-api/internal/usecases/tracking"
	"github.com/iqol/brand-pulse-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	brandPicker brandpicking.BrandPicker,
	reporter reporting.Reporter,
	tracker tracking.Tracker,
	tasker tasking.Tasker,
	digestSyncService *scheduler.BrandDigestSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		BrandDigestSyncService: digestSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.UserBrands(authenticator)...),
		router.WithRoutes(handler.Brands(brandPicker)...),
		router.WithRoutes(handler.Dashboard(reporter)...),
		router.WithRoutes(handler.Metrics(tracker)...),
		router.WithRoutes(handler.Blogs(tracker)...),
		router.WithRoutes(handler.SocialPosts(tracker)...),
		router.WithRoutes(handler.ActionItems(tasker)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	hndl := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           hndl,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
