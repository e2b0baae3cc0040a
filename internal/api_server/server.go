package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/config"
	handlers "github.com/elecreview/voltage-planner/internal/handlers/v1alpha1"
	"github.com/elecreview/voltage-planner/internal/service"
	"github.com/elecreview/voltage-planner/internal/store"
	"github.com/elecreview/voltage-planner/pkg/metrics"
	"github.com/elecreview/voltage-planner/pkg/middleware"
	"go.uber.org/zap"
)

const gracefulShutdownTimeout = 5 * time.Second

type Server struct {
	cfg      *config.Config
	store    store.Store
	settings *api.Settings
	listener net.Listener
}

// New returns a new instance of a voltage-planner server.
func New(cfg *config.Config, store store.Store, settings *api.Settings, listener net.Listener) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		settings: settings,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	calcSrv := service.NewCalculationService(s.store, s.settings)
	handler := handlers.NewCalculationHandler(calcSrv)
	handler.RegisterRoutes(router)
	router.Get("/api/v1alpha1/info", handler.GetInfo)
	router.Get("/health", handler.Health)

	srv := &http.Server{
		Addr:    s.cfg.Service.Address,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
