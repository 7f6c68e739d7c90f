package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/kanaka-pac/pac-api/api/swagger"
	"github.com/kanaka-pac/pac-api/internal/handler"
	"github.com/kanaka-pac/pac-api/internal/middleware"
	"github.com/kanaka-pac/pac-api/internal/service"
	"github.com/kanaka-pac/pac-api/internal/store"
	"github.com/kanaka-pac/pac-api/internal/store/jsonfile"
	pgstore "github.com/kanaka-pac/pac-api/internal/store/postgres"
	"github.com/kanaka-pac/pac-api/pkg/config"
	"github.com/kanaka-pac/pac-api/pkg/database"
	"github.com/kanaka-pac/pac-api/pkg/logger"
	corsmiddleware "github.com/kanaka-pac/pac-api/pkg/middleware/cors"
	reqidmiddleware "github.com/kanaka-pac/pac-api/pkg/middleware/requestid"
	"github.com/kanaka-pac/pac-api/pkg/storage"
)

// @title Kanaka PAC API
// @version 1.0.0
// @description Parent Advisory Council site backend
// @BasePath /api
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	st, err := newStore(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open store", "backend", cfg.Data.Backend, "error", err)
	}
	defer st.Close() //nolint:errcheck
	st = store.Instrument(st, metricsSvc)

	blobs, err := newBlobStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to open upload storage", "backend", cfg.Uploads.Backend, "error", err)
	}

	validate := validator.New()

	authSvc := service.NewAuthService(service.AuthConfig{
		AdminPassword:     cfg.Session.AdminPassword,
		AdminPasswordHash: cfg.Session.AdminPasswordHash,
		Secret:            cfg.Session.Secret,
		TTL:               cfg.Session.TTL,
	}, logr)
	eventSvc := service.NewEventService(st.Events(), logr)
	minutesSvc := service.NewMinutesService(st.Minutes(), logr)
	announcementSvc := service.NewAnnouncementService(st.Announcements(), logr)
	policySvc := service.NewPolicyService(st.Policies(), validate, logr)
	teamSvc := service.NewTeamService(st.Team(), validate, logr)
	subscriberSvc := service.NewSubscriberService(st.Subscribers(), validate, logr)
	settingsSvc := service.NewSettingsService(st.Settings(), logr)
	uploadSvc := service.NewUploadService(blobs, cfg.Uploads.MaxSizeBytes, logr)

	authHandler := handler.NewAuthHandler(authSvc, cfg.Env == config.EnvProduction)
	eventHandler := handler.NewEventHandler(eventSvc)
	minutesHandler := handler.NewMinutesHandler(minutesSvc)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc)
	policyHandler := handler.NewPolicyHandler(policySvc)
	teamHandler := handler.NewTeamHandler(teamSvc)
	subscriberHandler := handler.NewSubscriberHandler(subscriberSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.Uploads.Backend == config.UploadLocal {
		r.Static("/uploads", cfg.Uploads.Dir)
	}

	admin := middleware.Session(authSvc)
	api := r.Group("/api")
	{
		api.GET("/auth", authHandler.Check)
		api.POST("/auth", authHandler.Login)
		api.DELETE("/auth", authHandler.Logout)

		api.GET("/events", eventHandler.Get)
		api.POST("/events", admin, eventHandler.Create)
		api.PUT("/events", admin, eventHandler.Update)
		api.DELETE("/events", admin, eventHandler.Delete)

		api.GET("/minutes", minutesHandler.Get)
		api.POST("/minutes", admin, minutesHandler.Create)
		api.PUT("/minutes", admin, minutesHandler.Update)
		api.DELETE("/minutes", admin, minutesHandler.Delete)

		api.GET("/announcements", announcementHandler.Get)
		api.POST("/announcements", admin, announcementHandler.Create)
		api.PUT("/announcements", admin, announcementHandler.Update)
		api.DELETE("/announcements", admin, announcementHandler.Delete)

		api.GET("/policies", policyHandler.Get)
		api.POST("/policies", admin, policyHandler.Create)
		api.PUT("/policies", admin, policyHandler.Update)
		api.DELETE("/policies", admin, policyHandler.Delete)

		api.GET("/team", teamHandler.List)
		api.POST("/team", admin, teamHandler.Create)
		api.PUT("/team", admin, teamHandler.Update)
		api.PUT("/team/reorder", admin, teamHandler.Reorder)
		api.DELETE("/team", admin, teamHandler.Delete)

		api.GET("/subscribe", admin, subscriberHandler.List)
		api.POST("/subscribe", subscriberHandler.Subscribe)
		api.DELETE("/subscribe", admin, subscriberHandler.Unsubscribe)
		api.GET("/subscribe/export", admin, subscriberHandler.Export)

		api.GET("/settings", settingsHandler.Get)
		api.POST("/settings", admin, settingsHandler.Update)

		api.POST("/upload", admin, uploadHandler.Upload)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", cfg.Data.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newStore(cfg *config.Config, logr *zap.Logger) (store.Store, error) {
	switch cfg.Data.Backend {
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		st := pgstore.New(db, logr)
		if err := st.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		return st, nil
	default:
		return jsonfile.New(cfg.Data.Dir, logr)
	}
}

func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	if cfg.Uploads.Backend == config.UploadS3 {
		return storage.NewMinioStore(
			cfg.Uploads.S3Endpoint,
			cfg.Uploads.S3AccessKey,
			cfg.Uploads.S3SecretKey,
			cfg.Uploads.S3Bucket,
			cfg.Uploads.PublicBaseURL,
			cfg.Uploads.S3UseSSL,
		)
	}
	return storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL)
}
