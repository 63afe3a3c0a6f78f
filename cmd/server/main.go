package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ivline11/nft-rental-dapp/internal/config"
	"github.com/ivline11/nft-rental-dapp/internal/logger"
	"github.com/ivline11/nft-rental-dapp/internal/server"
)

func main() {
	// .env is for local development; in a deployed environment the
	// variables come from the runtime.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.InitLogger("")
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Sync() }()

	router := server.NewRouter(cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("rpc_url", cfg.RPCURL),
			zap.String("package_id", cfg.PackageID))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
}
