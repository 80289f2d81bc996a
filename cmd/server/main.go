package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/template-api/internal/api"
	"github.com/janisto/template-api/internal/http/health"
	"github.com/janisto/template-api/internal/http/v1/routes"
	"github.com/janisto/template-api/internal/platform/config"
	applog "github.com/janisto/template-api/internal/platform/logging"
	appmiddleware "github.com/janisto/template-api/internal/platform/middleware"
	"github.com/janisto/template-api/internal/platform/respond"
	"github.com/janisto/template-api/internal/service/greeting"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "1.0.0"

func main() {
	logger := applog.Logger()
	defer func() { _ = applog.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("ignoring log level", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(greeting.NewService()),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("version", Version),
			zap.Stringer("logLevel", applog.Level()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		logger.Error("listen failed", zap.Error(err), zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		logger.Info("shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server exited")
}

// newRouter assembles the middleware stack, the root health check and the v1 routes.
func newRouter(greetings greeting.Service) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(api.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; deploy behind a trusted proxy only.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	humaAPI := humachi.New(router, api.NewConfig(Version))
	api.AdvertiseCBOR(humaAPI)

	health.Register(humaAPI)
	routes.Register(humaAPI, greetings)

	return router
}
