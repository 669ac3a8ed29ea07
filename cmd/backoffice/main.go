// Package main запускает HTTP-сервер API бэк-офиса.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/backoffice-system/internal/config"
	"github.com/mmeshcher/backoffice-system/internal/handler"
	"github.com/mmeshcher/backoffice-system/internal/repository"
	"github.com/mmeshcher/backoffice-system/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	store, err := repository.NewStore(cfg.DatabaseURI)
	if err != nil {
		sugar.Fatalw("database initialization error", "error", err.Error())
	}
	defer store.Close()

	services := handler.Services{
		Bids:        service.NewBidService(store.Bids(), cfg.AuditActor),
		Trades:      service.NewTradeService(store.Trades(), cfg.AuditActor),
		CurvePoints: service.NewCurvePointService(store.CurvePoints(), cfg.AuditActor),
		Ratings:     service.NewRatingService(store.Ratings(), cfg.AuditActor),
		RuleNames:   service.NewRuleNameService(store.RuleNames(), cfg.AuditActor),
		Users:       service.NewUserService(store.Users(), cfg.AuditActor),
	}

	h := handler.NewHandler(services, logger)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: h.SetupRouter(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting backoffice server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
