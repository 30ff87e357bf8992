// Package server boots the HTTP process: config, stores, logging, routes,
// and a graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/routes"
	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/internal/store"
	"github.com/shashiranjanraj/bistro/pkg/cache"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/payments"
	"github.com/shashiranjanraj/bistro/pkg/reqid"
	"github.com/shashiranjanraj/bistro/pkg/router"
)

const shutdownTimeout = 10 * time.Second

func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, db, err := store.Connect(ctx)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Disconnect(ctx) //nolint:errcheck
	}()

	// Cache is best effort, routes degrade to store reads without it.
	if err := cache.Connect(context.Background()); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}

	var mongoLog *logger.MongoHandler
	if config.LogToMongo() {
		mongoLog = logger.NewMongoHandler(db.Collection("logs"))
		logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), mongoLog))
		defer mongoLog.Close()
	}

	r := router.New()
	r.Use(
		middleware.Recovery,
		middleware.CORS(middleware.DefaultCORSOptions()),
		reqid.Middleware(),
		middleware.Logger,
		metrics.Middleware(),
		middleware.RateLimit(300, time.Minute),
	)

	routes.RegisterAPI(r, routes.Deps{
		Users:        repositories.NewMongoUserRepository(db),
		Menu:         repositories.NewMongoMenuRepository(db),
		Carts:        repositories.NewMongoCartRepository(db),
		Payments:     repositories.NewMongoPaymentRepository(db),
		Testimonials: repositories.NewMongoTestimonialRepository(db),
		Recommends:   repositories.NewMongoRecommendRepository(db),
		Intents:      payments.NewStripe(config.StripeSecretKey()),
	})

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bistro listening", slog.String("addr", srv.Addr), slog.String("env", config.AppEnv()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
