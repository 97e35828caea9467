package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/http/controller"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/http/middleware"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/http/router"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/notifier"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/repository/memory"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/config"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/logger"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/usecase/service_interfaces"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/usecase/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", err, nil)
		return
	}
	logger.SetLevel(cfg.LogLevel)

	accountRepo := memory.NewAccountRepository()
	guard := services.NewAccountGuard()
	accountService := services.NewAccountService(accountRepo, guard)

	var notifications service_interfaces.NotificationService
	if cfg.WebhookURL != "" {
		notifications = notifier.NewWebhookNotifier(cfg.WebhookURL)
	} else {
		notifications = notifier.NewLogNotifier()
	}

	transferService := services.NewTransferService(
		accountService,
		guard,
		notifications,
		cfg.LockMaxAttempts,
		cfg.LockRetryDelay,
	)

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	mux := router.New(
		controller.NewAccountController(accountService),
		controller.NewTransferController(transferService),
		authMiddleware,
	)

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", logger.Fields{"addr": cfg.ServerAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", err, nil)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", err, nil)
		return
	}
	logger.Info("server stopped", nil)
}
