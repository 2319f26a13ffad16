package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/api/handler"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	migrationHandler *handler.MigrationHandler,
	connectionHandler *handler.ConnectionHandler,
	scheduleHandler *handler.ScheduleHandler,
	snapshotHandler *handler.SnapshotHandler,
) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.TeamContext())
	{
		migrations := v1.Group("/migrations")
		{
			migrations.POST("", migrationHandler.Create)
			migrations.GET("", migrationHandler.List)
			migrations.GET("/:migrationId", migrationHandler.Get)
			migrations.GET("/:migrationId/history", migrationHandler.History)
			migrations.POST("/:migrationId/execute", migrationHandler.Execute)
			migrations.POST("/:migrationId/rollback", migrationHandler.Rollback)
			migrations.GET("/:migrationId/can-rollback", migrationHandler.CanRollback)
			migrations.POST("/:migrationId/snapshot", snapshotHandler.Create)
			migrations.GET("/:migrationId/snapshot", snapshotHandler.Get)
			migrations.GET("/:migrationId/snapshot/preview", snapshotHandler.Preview)
		}

		connections := v1.Group("/connections")
		{
			connections.POST("", connectionHandler.Create)
			connections.GET("", connectionHandler.List)
			connections.GET("/:connectionId", connectionHandler.Get)
			connections.POST("/:connectionId/test", connectionHandler.Test)
			connections.POST("/:connectionId/detect-orm", connectionHandler.DetectORM)
			connections.GET("/:connectionId/pitr", snapshotHandler.ProviderCapability)
		}

		schedules := v1.Group("/schedules")
		{
			schedules.POST("", scheduleHandler.Create)
			schedules.GET("", scheduleHandler.List)
			schedules.DELETE("/:scheduleId", scheduleHandler.Cancel)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
