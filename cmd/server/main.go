package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tobacco-dashboard-service/internal/config"
	"tobacco-dashboard-service/internal/dataset"
	"tobacco-dashboard-service/internal/dto"
	"tobacco-dashboard-service/internal/handler"
	"tobacco-dashboard-service/internal/middleware"
	"tobacco-dashboard-service/internal/repository"
	"tobacco-dashboard-service/internal/usecase"
	"tobacco-dashboard-service/web"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Load the static datasets. A missing file or malformed schema is
	// fatal at startup.
	ds, err := dataset.Load(cfg.Data.TobaccoPath, cfg.Data.MortalityPath)
	if err != nil {
		log.Fatalf("load datasets: %v", err)
	}

	store := repository.New(ds.Tobacco, ds.Mortality, ds.Meta)

	// Use cases
	dashboardUC := usecase.NewDashboardUseCase(store)
	seriesUC := usecase.NewTimeSeriesUseCase(store)

	// HTTP handlers
	h := handler.New(dashboardUC, seriesUC, cfg.Dashboard)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/dashboard")
	h.RegisterRoutes(api)

	// Dashboard page
	router.GET("/", web.Index())

	// Health check with loaded table sizes
	router.GET("/healthz", func(c *gin.Context) {
		counts, err := store.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Counts: counts})
	})

	// Start server
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
