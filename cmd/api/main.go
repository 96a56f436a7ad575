package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/serenity-service/internal/config"
	"github.com/Dan9191/serenity-service/internal/handler"
	"github.com/Dan9191/serenity-service/internal/middleware"
	"github.com/Dan9191/serenity-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	bootLog := logrus.New()
	bootLog.SetFormatter(&logrus.JSONFormatter{})

	// Load .env for local runs; absent in containers
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		bootLog.Warnf("Failed to load .env: %v", err)
	}

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		bootLog.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.NewLogger()

	// Initialize layers
	svc := service.NewService(logger, service.WithLocation(cfg.Location()))
	h := handler.NewHandler(svc, cfg)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	h.Register(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("Shutting down server")
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
