package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-price-service/internal/adapters/primary/http/handlers"
	"car-price-service/internal/adapters/primary/http/middleware"
	"car-price-service/internal/adapters/secondary/artifact"
	"car-price-service/internal/adapters/secondary/dataset"
	"car-price-service/internal/adapters/secondary/kube"
	"car-price-service/internal/adapters/secondary/postgres"
	"car-price-service/internal/config"
	output "car-price-service/internal/core/ports/output"
	"car-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// The model is required: without it no prediction is possible.
	source, err := newArtifactSource(cfg)
	if err != nil {
		log.Fatalf("artifact source: %v", err)
	}
	model, err := artifact.Load(context.Background(), source)
	if err != nil {
		log.Fatalf("load model: %v", err)
	}

	estimator, err := services.NewPriceEstimator(model)
	if err != nil {
		log.Fatalf("create estimator: %v", err)
	}

	// The dataset only backs the exploration views, so failures here are not fatal.
	datasetRepo, closeDataset := newDatasetRepository(cfg)
	defer closeDataset()
	datasetSvc := services.NewDatasetService(datasetRepo)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(estimator, datasetSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(handlers.Templates())

	h.RegisterViews(router)
	api := router.Group("/api/v1/car-price")
	h.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "model": model.Info().Fingerprint})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func newArtifactSource(cfg *config.Config) (output.ArtifactSource, error) {
	switch cfg.Model.Source {
	case "configmap":
		return kube.NewConfigMapSource(&cfg.Kubernetes, &cfg.Model)
	case "http":
		return artifact.NewHTTPSource(cfg.Model.URL, cfg.Model.FetchTimeout), nil
	default:
		return artifact.NewFileSource(cfg.Model.Path), nil
	}
}

func newDatasetRepository(cfg *config.Config) (output.DatasetRepository, func()) {
	switch cfg.Dataset.Source {
	case "none":
		log.Info("dataset views disabled")
		return dataset.NewUnavailable(), func() {}
	case "postgres":
		pool, err := newPool(cfg)
		if err != nil {
			log.WithError(err).Warn("dataset database unavailable (data views will report errors)")
			return dataset.NewUnavailable(), func() {}
		}
		log.Info("database connection established")
		return postgres.NewDatasetRepository(pool, cfg.Dataset.Table, cfg.Dataset.OrderBy, cfg.Dataset.MaxRows), pool.Close
	default:
		log.Infof("dataset file %s", cfg.Dataset.Path)
		return dataset.NewFileRepository(cfg.Dataset.Path), func() {}
	}
}

func newPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
