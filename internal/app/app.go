package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/adapter/handler/http"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/adapter/logger"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/adapter/postgres"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/adapter/prometheus"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/adapter/redis"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/adapter/s3"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/config"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to connect to database:%w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("Failed to ping database:%w", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		return nil, fmt.Errorf("Failed to run migrations:%w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Blob storage
	storage, err := s3.NewStorage(ctx, cfg.S3)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize blob storage: %w", err)
	}

	// Repositories
	vehicleRepo := postgres.NewVehicleRepository(db)
	tripRepo := postgres.NewTripRepository(db)
	recordRepo := postgres.NewMaintenanceRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)

	// Services
	sessions := services.NewSessionStore(cacheAdapter, loggerAdapter)
	vehicleService := services.NewVehicleService(vehicleRepo, sessions, storage, loggerAdapter, validate)
	odometerService := services.NewOdometerService(vehicleRepo, tripRepo, loggerAdapter)
	maintenanceService := services.NewMaintenanceService(recordRepo, vehicleRepo, odometerService, loggerAdapter, validate)
	documentService := services.NewDocumentService(documentRepo, loggerAdapter)
	dashboardService := services.NewDashboardService(vehicleRepo, documentRepo, loggerAdapter)

	// HTTP Handlers
	vehicleHandler := http.NewVehicleHandler(vehicleService, loggerAdapter, metrics)
	odometerHandler := http.NewOdometerHandler(odometerService, loggerAdapter, metrics)
	maintenanceHandler := http.NewMaintenanceHandler(maintenanceService, loggerAdapter, metrics)
	dashboardHandler := http.NewDashboardHandler(dashboardService, documentService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		sessions,
		loggerAdapter,
		vehicleHandler,
		odometerHandler,
		maintenanceHandler,
		dashboardHandler,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
	}, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
