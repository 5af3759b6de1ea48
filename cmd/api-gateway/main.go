package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/sgpa-records-api/api/swagger"
	"github.com/noah-isme/sgpa-records-api/internal/handler"
	"github.com/noah-isme/sgpa-records-api/internal/middleware"
	"github.com/noah-isme/sgpa-records-api/internal/repository"
	"github.com/noah-isme/sgpa-records-api/internal/service"
	"github.com/noah-isme/sgpa-records-api/pkg/config"
	"github.com/noah-isme/sgpa-records-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sgpa-records-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sgpa-records-api/pkg/middleware/requestid"
)

// @title SGPA Records API
// @version 1.0.0
// @description Record store and statistics engine for SGPA submissions
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	records, err := repository.NewFileRecordRepository(cfg.Store.DataFile, logr)
	if err != nil {
		// A corrupt collection must stop the process instead of being
		// silently replaced by an empty one.
		logr.Sugar().Fatalw("failed to open record collection", "error", err)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	validate := validator.New()
	recordSvc := service.NewRecordService(records, metricsSvc, validate, logr, cfg.Records)
	statsSvc := service.NewStatsService(recordSvc, cfg.Records.RecentLimit, logr)
	sgpaSvc := service.NewSGPAService(validate, logr)
	exportSvc := service.NewExportService(recordSvc, logr)

	recordHandler := handler.NewRecordHandler(recordSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	sgpaHandler := handler.NewSGPAHandler(sgpaSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsSvc != nil {
		metricsHandler := handler.NewMetricsHandler(metricsSvc)
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/records", recordHandler.Create)
		api.GET("/records", recordHandler.List)
		api.GET("/records/stats", statsHandler.Summary)
		if cfg.Export.Enabled {
			api.GET("/records/export", exportHandler.Download)
		}
		api.DELETE("/records/:id", recordHandler.Delete)
		api.POST("/sgpa/compute", sgpaHandler.Compute)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "data_file", cfg.Store.DataFile)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
