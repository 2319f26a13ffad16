package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	connectionUseCase "github.com/schemaflow/migration-engine/internal/domain/usecase/connection"
	executionUseCase "github.com/schemaflow/migration-engine/internal/domain/usecase/execution"
	migrationUseCase "github.com/schemaflow/migration-engine/internal/domain/usecase/migration"
	rollbackUseCase "github.com/schemaflow/migration-engine/internal/domain/usecase/rollback"
	schedulerUseCase "github.com/schemaflow/migration-engine/internal/domain/usecase/scheduler"
	snapshotUseCase "github.com/schemaflow/migration-engine/internal/domain/usecase/snapshot"

	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/api/handler"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/api/routes"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/crypto"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/database"
	executorAdapter "github.com/schemaflow/migration-engine/internal/infrastructure/adapter/dbexec"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/event"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/logger"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/schemaflow/migration-engine/internal/infrastructure/adapter/time"
	"github.com/schemaflow/migration-engine/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(parseLogLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the engine store
	dbConfig := database.CreateConfigFromViperConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to engine store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Bring the engine store schema up to date
	if err := dbManager.SchemaManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to migrate engine store schema", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Cipher for stored connection passwords
	secretCipher, err := crypto.NewAESCipher(cfg.Engine.EncryptionSecret)
	if err != nil {
		appLogger.Error("Failed to initialize secret cipher", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	db := dbManager.DB()
	connectionRepo := repository.NewConnectionRepository(db, appLogger)
	migrationRepo := repository.NewMigrationRepository(db, appLogger)
	executionRepo := repository.NewExecutionRepository(db, appLogger)
	rollbackRepo := repository.NewRollbackRepository(db, appLogger)
	snapshotRepo := repository.NewSnapshotRepository(db, appLogger)
	scheduleRepo := repository.NewScheduleRepository(db, appLogger)

	// Target database executors
	executors := executorAdapter.NewFactory(cfg.Engine.ExecutorConnectTimeout, tp, appLogger)

	// Audit trail and notifications
	emitter := event.NewAuditEmitter(appLogger)
	notifier := event.NewLogNotifier(appLogger)

	// Initialize use cases
	connectionSvc := connectionUseCase.NewService(connectionRepo, executors, secretCipher, tp, appLogger)
	migrationSvc := migrationUseCase.NewService(migrationRepo, connectionRepo, executionRepo, tp, appLogger, emitter)
	dispatcher := executionUseCase.NewDispatcher(
		migrationRepo, connectionRepo, executionRepo,
		executors, secretCipher, tp, appLogger, emitter,
	)
	rollbackEngine := rollbackUseCase.NewEngine(
		migrationRepo, connectionRepo, executionRepo, rollbackRepo,
		executors, secretCipher, tp, appLogger, emitter,
	)
	snapshotSvc := snapshotUseCase.NewService(
		migrationRepo, connectionRepo, snapshotRepo,
		executors, secretCipher, tp, appLogger,
	)
	scheduler := schedulerUseCase.NewScheduler(
		scheduleRepo, migrationRepo, dispatcher,
		tp, appLogger, emitter, notifier,
	)

	// Initialize API handlers
	migrationHandler := handler.NewMigrationHandler(migrationSvc, dispatcher, rollbackEngine, appLogger)
	connectionHandler := handler.NewConnectionHandler(connectionSvc, appLogger)
	scheduleHandler := handler.NewScheduleHandler(scheduler, appLogger)
	snapshotHandler := handler.NewSnapshotHandler(snapshotSvc, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, migrationHandler, connectionHandler, scheduleHandler, snapshotHandler)

	// Background sweep for due scheduled executions
	sweeper := cron.New()
	_, err = sweeper.AddFunc(cfg.Engine.SchedulerSpec, func() {
		ctx, cancel := dbManager.WithTimeout(context.Background())
		defer cancel()
		if err := scheduler.ProcessDue(ctx); err != nil {
			appLogger.Error("Due-schedule sweep failed", map[string]any{
				"error": err.Error(),
			})
		}
	})
	if err != nil {
		appLogger.Error("Invalid scheduler spec", map[string]any{
			"spec":  cfg.Engine.SchedulerSpec,
			"error": err.Error(),
		})
		os.Exit(1)
	}
	sweeper.Start()

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Let an in-flight sweep finish before the store goes away
	<-sweeper.Stop().Done()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("ME_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or ME_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database")
	}

	if cfg.Engine.EncryptionSecret == "" {
		missingConfigs = append(missingConfigs, "ME_ENGINE_ENCRYPTION_SECRET environment variable")
	}
	if cfg.Engine.SchedulerSpec == "" {
		missingConfigs = append(missingConfigs, "engine.schedulerSpec")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingConfigs, ", "))
	}
	return nil
}

func parseLogLevel(level string) coreport.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return coreport.LogLevelDebug
	case "warn":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}
