package app

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/signup/config"
	memoryAccountRepo "github.com/haguru/signup/internal/accountrepo/memory"
	mongoAccountRepo "github.com/haguru/signup/internal/accountrepo/mongo"
	postgresAccountRepo "github.com/haguru/signup/internal/accountrepo/postgres"
	"github.com/haguru/signup/internal/auth"
	"github.com/haguru/signup/internal/controllers/signup"
	"github.com/haguru/signup/internal/emailvalidator"
	"github.com/haguru/signup/internal/hasher"
	"github.com/haguru/signup/internal/interfaces"
	signupMetrics "github.com/haguru/signup/internal/metrics"
	"github.com/haguru/signup/internal/middleware"
	"github.com/haguru/signup/internal/routes"
	"github.com/haguru/signup/internal/server"
	"github.com/haguru/signup/internal/usecases/addaccount"
	"github.com/haguru/signup/pkg/databases/mongo"
	"github.com/haguru/signup/pkg/databases/postgres"
	"github.com/haguru/signup/pkg/metrics"
	"github.com/haguru/signup/pkg/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ConnectTimeout bounds connecting to the database and creating its indices.
	ConnectTimeout = 30 * time.Second
	// ShutdownTimeout bounds draining in-flight requests on shutdown.
	ShutdownTimeout = 15 * time.Second
)

// App represents the main application, containing server and configuration.
type App struct {
	Server     interfaces.Server
	Config     *config.ServiceConfig
	Logger     interfaces.Logger
	Metrics    interfaces.Metrics
	repository interfaces.AccountRepository
	privateKey *ecdsa.PrivateKey
}

// NewApp reads and validates the configuration at configPath and builds the
// application from it.
func NewApp(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	return NewAppWithConfig(ctx, cfg, logger)
}

// NewAppWithConfig builds the application from an already loaded configuration.
func NewAppWithConfig(ctx context.Context, cfg *config.ServiceConfig, logger interfaces.Logger) (*App, error) {
	validator := structValidator.New()
	if err := cfg.Validate(validator); err != nil {
		return nil, err
	}

	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.Metrics = app.initializeMetrics()

	if err := app.initializePrivateKey(); err != nil {
		return nil, fmt.Errorf("failed to initialize private key: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	repository, err := app.initializeAccountRepo(connectCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize account repository: %w", err)
	}
	app.repository = repository

	bcryptAdapter, err := hasher.NewBcryptAdapter(cfg.Hasher.Cost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hasher: %w", err)
	}

	addAccount := addaccount.NewDBAddAccount(bcryptAdapter, repository, logger)
	controller := signup.NewController(emailvalidator.NewEmailValidatorAdapter(validator), addAccount, logger)
	route := routes.NewRoute(app.Metrics, controller, repository, app.privateKey, logger)

	serverInstance := server.NewServer(cfg.Host, cfg.Port, logger)
	app.Server = serverInstance

	if err := app.addRoutes(route); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *App) addRoutes(route *routes.Route) error {
	limiter := middleware.NewLimiter(app.Config.RateLimit.RequestsPerSecond, app.Config.RateLimit.Burst)
	signupHandler := middleware.RateLimitMiddleware(limiter, app.Metrics)(http.HandlerFunc(route.Signup))

	metricsHandler := promhttp.HandlerFor(
		app.Metrics.GetRegistry(),
		promhttp.HandlerOpts{})

	handlers := []struct {
		route   string
		handler http.Handler
	}{
		{routes.SignupRouteAPI, otelhttp.NewHandler(signupHandler, routes.SignupRouteAPI)},
		{routes.MetricsRouteAPI, otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)},
		{routes.HealthRouteAPI, http.HandlerFunc(route.HealthCheck)},
	}

	for _, h := range handlers {
		if err := app.Server.AddRoute(h.route, h.handler); err != nil {
			return fmt.Errorf("failed to add route %s: %w", h.route, err)
		}
	}

	return nil
}

// Run serves until ctx is cancelled, then shuts the server down and closes
// the repository.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		app.close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	err := app.Server.Shutdown(shutdownCtx)
	app.close()
	if err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return <-errCh
}

func (app *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := app.repository.Close(ctx); err != nil {
		app.Logger.Warn("Failed to close account repository", "error", err)
	}
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	signupMetrics.RegisterSignupMetrics(appMetrics)
	return appMetrics
}

func (app *App) initializeDBClient(ctx context.Context) (interfaces.DBClient, error) {
	var dbClient interfaces.DBClient

	switch app.Config.Database.Type {
	case config.DatabaseTypeMongo:
		mongoClient, err := mongo.NewMongoDB(app.Config.Database.MongoDB, app.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
		}
		if err := mongoClient.Connect(ctx, app.Config.Database.MongoDB.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		dbClient = mongoClient

	case config.DatabaseTypePostgres:
		postgresClient := postgres.NewPostgresDatabaseClient(app.Config.Database.Postgres, app.Logger)
		if err := postgresClient.Connect(ctx, app.Config.Database.Postgres.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		dbClient = postgresClient

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	return dbClient, nil
}

func (app *App) initializeAccountRepo(ctx context.Context) (interfaces.AccountRepository, error) {
	if app.Config.Database.Type == config.DatabaseTypeMemory {
		app.Logger.Warn("Using in-memory account storage, accounts are lost on restart")
		return memoryAccountRepo.NewMemoryAccountRepository(), nil
	}

	dbClient, err := app.initializeDBClient(ctx)
	if err != nil {
		return nil, err
	}

	var accountRepo interfaces.AccountRepository
	switch app.Config.Database.Type {
	case config.DatabaseTypeMongo:
		accountRepo, err = mongoAccountRepo.NewMongoAccountRepository(dbClient, app.Logger)
	case config.DatabaseTypePostgres:
		accountRepo, err = postgresAccountRepo.NewPostgresAccountRepository(dbClient, app.Logger)
	}
	if err != nil {
		return nil, err
	}

	if err = accountRepo.EnsureIndices(ctx); err != nil {
		_ = accountRepo.Close(ctx)
		return nil, fmt.Errorf("failed to ensure indices: %w", err)
	}

	return accountRepo, nil
}

// initializePrivateKey loads the session signing key. Without a configured
// path no session cookie is issued.
func (app *App) initializePrivateKey() error {
	if app.Config.PrivateKeyPath == "" {
		app.Logger.Warn("No private key configured, session tokens are disabled")
		return nil
	}

	privateKey, err := auth.LoadECDSAPrivateKey(app.Config.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("failed to load private key: %w", err)
	}

	app.privateKey = privateKey
	return nil
}
