package main

import (
	"context"
	"log"
	"medadmin-service/internal/app/bootstrap"
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/app/drivers/database"
	"medadmin-service/internal/app/drivers/logger"
	"medadmin-service/internal/app/drivers/messaging"
	"medadmin-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	accessLogger := logger.NewLogrusLogger(driverConfig, internalConfig)

	if internalConfig.JWT.Secret == "" {
		zapLogger.Warn("JWT_SECRET is not configured, login and authenticated routes will fail")
	}

	ctx := context.Background()
	redis, err := database.NewRedisClient(ctx, driverConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	chiRouter := chi.NewRouter()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	bootstrapConfig := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redis,
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		Registry:       registry,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.App.StorageDriver == constvars.StorageDriverMongo {
		bootstrapConfig.MongoDB, err = database.NewMongoDB(ctx, driverConfig, internalConfig.MongoDB.DbName, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to mongo", zap.Error(err))
		}
	}
	if internalConfig.App.MailerDriver == constvars.MailerDriverRabbitMQ {
		bootstrapConfig.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to rabbitmq", zap.Error(err))
		}
	}

	if _, err := bootstrap.BootstrapingTheApp(ctx, bootstrapConfig); err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", server.Addr),
			zap.String("version", internalConfig.App.Version),
			zap.String("storage", internalConfig.App.StorageDriver),
			zap.String("mailer", internalConfig.App.MailerDriver),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Draining in-flight requests before shutdown")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrapConfig.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to release drivers", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
