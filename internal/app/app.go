package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/haguru/dispatcher/config"
	"github.com/haguru/dispatcher/internal/dispatch"
	"github.com/haguru/dispatcher/internal/gate"
	"github.com/haguru/dispatcher/internal/interfaces"
	"github.com/haguru/dispatcher/internal/middleware"
	"github.com/haguru/dispatcher/internal/pages"
	"github.com/haguru/dispatcher/internal/routes"
	"github.com/haguru/dispatcher/internal/server"
	"github.com/haguru/dispatcher/pkg/metrics"
	"github.com/haguru/dispatcher/pkg/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultShutdownTimeout = 5 * time.Second

// App represents the main application, containing server and configuration.
// It initializes with a config file, validates settings, and manages routes.
type App struct {
	Server     interfaces.Server
	Config     *config.ServiceConfig
	Logger     interfaces.Logger
	Metrics    interfaces.Metrics
	Dispatcher *dispatch.Dispatcher
}

// NewApp reads the config file, applies DISPATCHER_* environment overrides
// and builds the application.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnvOverrides(cfg, os.Environ()); err != nil {
		return nil, err
	}

	return NewAppFromConfig(cfg, zerolog.NewZerologLogger(cfg.ServiceName))
}

// NewAppFromConfig validates cfg and wires every component of the service.
func NewAppFromConfig(cfg *config.ServiceConfig, logger interfaces.Logger) (*App, error) {
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		var validationErrors structValidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validation error: %s", validationErrors)
		}
		return nil, fmt.Errorf("validation error: %w", err)
	}

	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.Metrics = app.initializeMetrics()

	loginForm, err := pages.LoginForm()
	if err != nil {
		return nil, fmt.Errorf("failed to load login form: %w", err)
	}

	if err := app.initializeDispatcher(loginForm); err != nil {
		return nil, fmt.Errorf("failed to initialize dispatcher: %w", err)
	}

	app.Server = server.NewServer(cfg.Host, cfg.Port,
		server.Timeouts{
			Read:  cfg.Server.ReadTimeout,
			Write: cfg.Server.WriteTimeout,
			Idle:  cfg.Server.IdleTimeout,
		},
		logger,
		middleware.RequestLogger(logger),
		middleware.InFlight(app.Metrics, routes.InFlightRequests),
	)

	if err := app.initializeRoutes(loginForm); err != nil {
		return nil, err
	}

	return app, nil
}

// Run serves until ctx is cancelled and then shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := app.Config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Handler returns the fully wired HTTP handler.
func (app *App) Handler() http.Handler {
	return app.Server.Handler()
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	appMetrics.RegisterCounter(routes.GateRequestsTotal, routes.GateRequestsTotalHelp)
	appMetrics.RegisterCounterVec(routes.GateOutcomesTotal, routes.GateOutcomesTotalHelp,
		[]string{routes.GateOutcomeLabel})
	appMetrics.RegisterHistogram(
		routes.GateDurationSeconds,
		routes.GateDurationSecondsHelp,
		routes.GateDurationSecondsBuckets)
	appMetrics.RegisterGauge(routes.InFlightRequests, routes.InFlightRequestsHelp)

	return appMetrics
}

func (app *App) initializeDispatcher(loginForm http.Handler) error {
	app.Dispatcher = dispatch.NewDispatcher()
	if err := app.Dispatcher.Register(app.Config.Gate.ForwardTarget, pages.FwdDemo()); err != nil {
		return err
	}
	return app.Dispatcher.Register(app.Config.Gate.IncludeTarget, loginForm)
}

func (app *App) initializeRoutes(loginForm http.Handler) error {
	g := gate.NewGate(gate.Settings{
		Login:          app.Config.Gate.Login,
		Password:       app.Config.Gate.Password,
		ForwardTarget:  app.Config.Gate.ForwardTarget,
		IncludeTarget:  app.Config.Gate.IncludeTarget,
		FailureMessage: app.Config.Gate.FailureMessage,
	})
	route := routes.NewRoute(g, app.Dispatcher, app.Metrics, app.Logger)

	metricsHandler := promhttp.HandlerFor(
		app.Metrics.GetRegistry(),
		promhttp.HandlerOpts{})

	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)
	tracedGateHandler := otelhttp.NewHandler(http.HandlerFunc(route.Login), routes.GateRouteAPI)

	err := app.Server.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP)
	if err != nil {
		return fmt.Errorf("failed to add metrics route: %w", err)
	}

	err = app.Server.AddRoute(routes.GateRouteAPI, tracedGateHandler.ServeHTTP)
	if err != nil {
		return fmt.Errorf("failed to add gate route: %w", err)
	}

	err = app.Server.AddRoute(http.MethodGet+" "+routes.LoginFormRouteAPI, loginForm.ServeHTTP)
	if err != nil {
		return fmt.Errorf("failed to add login form route: %w", err)
	}

	err = app.Server.AddRoute(http.MethodGet+" "+routes.RootRouteAPI+"{$}", loginForm.ServeHTTP)
	if err != nil {
		return fmt.Errorf("failed to add root route: %w", err)
	}

	return nil
}
