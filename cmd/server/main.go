package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/banksynth/internal/adapter/grpc"
	"github.com/simaogato/banksynth/internal/adapter/repository/memory"
	"github.com/simaogato/banksynth/internal/adapter/rest"
	"github.com/simaogato/banksynth/internal/app"
	"github.com/simaogato/banksynth/internal/config"
	"github.com/simaogato/banksynth/internal/metrics"
	"github.com/simaogato/banksynth/internal/usecase/pipeline"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Log, false)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Stores and sinks
	store := memory.NewDatasetStore(cfg.Store.Capacity)
	sinks, err := app.BuildSinks(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build sinks", zap.Error(err))
	}

	// 3. Pipeline
	m := metrics.New()
	svc := pipeline.NewService(logger, m, store, sinks...)

	// 4. gRPC server
	grpcServer := grpclib.NewServer(grpclib.ChainUnaryInterceptor(
		grpcadapter.LoggingInterceptor(logger),
		grpcadapter.AuthInterceptor(cfg.Auth.Token),
	))
	grpcadapter.RegisterGeneratorServiceServer(grpcServer, grpcadapter.NewServer(svc, store))

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		logger.Fatal("Failed to listen", zap.String("addr", cfg.GRPC.Addr), zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPC.Addr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("Failed to serve gRPC", zap.Error(err))
		}
	}()

	// 5. HTTP server
	gin.SetMode(gin.ReleaseMode)
	handler := rest.NewDatasetHandler(svc, store, logger)
	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           rest.NewRouter(logger, handler, m.Handler(), cfg.Auth.Token),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve HTTP", zap.Error(err))
		}
	}()

	waitForShutdown(logger, grpcServer, httpServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully stops both servers
func waitForShutdown(logger *zap.Logger, grpcServer *grpclib.Server, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("Shutting down gracefully", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	logger.Info("Servers stopped")
}
