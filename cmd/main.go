package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/therajusah/Ecommerce-app/internal/app"
	"github.com/therajusah/Ecommerce-app/internal/auth"
	"github.com/therajusah/Ecommerce-app/internal/catalog"
	"github.com/therajusah/Ecommerce-app/internal/checkout"
	"github.com/therajusah/Ecommerce-app/internal/config"
	h "github.com/therajusah/Ecommerce-app/internal/http"
	"github.com/therajusah/Ecommerce-app/internal/logger"
	"github.com/therajusah/Ecommerce-app/internal/telemetry"
	"github.com/therajusah/Ecommerce-app/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shop: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	var spanOut io.Writer
	if cfg.TracesStdout {
		spanOut = os.Stdout
	}
	tp, err := telemetry.Setup("shop-api", spanOut)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	shop := app.NewShop(catalog.Default(), auth.NewAuthenticator(), checkout.NewService(log))

	orderTracker := tracker.New(func() []tracker.OrderBook {
		stores := shop.OrderStores()
		books := make([]tracker.OrderBook, len(stores))
		for i, s := range stores {
			books[i] = s
		}
		return books
	}, cfg.TrackingInterval, log)

	srv := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: h.NewRouter(shop, h.RouterConfig{
			RequestTimeout:     cfg.RequestTimeout,
			MaxRequestBodySize: cfg.MaxRequestBodySize,
			TracerProvider:     tp,
		}, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return orderTracker.Run(gctx)
	})

	g.Go(func() error {
		log.Info("shop API starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}
