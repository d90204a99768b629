// Package server assembles and runs the storefront HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modece/storefront/app/controllers"
	"github.com/modece/storefront/app/graph"
	"github.com/modece/storefront/app/repositories"
	"github.com/modece/storefront/app/routes"
	"github.com/modece/storefront/app/services"
	"github.com/modece/storefront/config"
	"github.com/modece/storefront/pkg/auth"
	"github.com/modece/storefront/pkg/cache"
	"github.com/modece/storefront/pkg/logger"
	"github.com/modece/storefront/pkg/metrics"
	"github.com/modece/storefront/pkg/middleware"
	"github.com/modece/storefront/pkg/reqid"
	"github.com/modece/storefront/pkg/router"
	"github.com/modece/storefront/pkg/storage"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	rateLimitMax    = 120
	rateLimitWindow = time.Minute
)

// Run boots the server and blocks until SIGINT/SIGTERM, then drains
// in-flight requests before returning.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg.AppEnv)

	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("server: mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("server: mongo ping: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Warn("mongo disconnect failed", "error", err)
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	users := repositories.NewMongoUserRepository(db)
	if err := users.EnsureIndexes(connectCtx); err != nil {
		return fmt.Errorf("server: ensure indexes: %w", err)
	}
	products := repositories.NewMongoProductRepository(db)
	orders := repositories.NewMongoOrderRepository(db)

	c, err := cache.New(cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, serving without cache", "error", err)
	}

	disks, err := storage.NewManager(cfg.Storage)
	if err != nil {
		return fmt.Errorf("server: storage: %w", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)
	authSvc := services.NewAuthService(users, tokens, cfg)
	catalog := services.NewCatalogService(products, disks.Default(), c)
	orderSvc := services.NewOrderService(orders, catalog)

	gql, err := graph.NewHandler(catalog)
	if err != nil {
		return fmt.Errorf("server: graphql schema: %w", err)
	}

	r := router.New()
	r.Use(
		reqid.Middleware(),
		metrics.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(cfg.AllowedOrigins)),
		middleware.RateLimit(rateLimitMax, rateLimitWindow),
	)
	routes.RegisterAPI(r, routes.Controllers{
		Auth:    controllers.NewAuthController(authSvc),
		Product: controllers.NewProductController(catalog),
		Order:   controllers.NewOrderController(orderSvc),
		GraphQL: gql,
		Tokens:  tokens,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
	}

	return nil
}

// BuildRouter assembles a router with zero-value dependencies so route
// metadata can be inspected without connecting to any backend.
func BuildRouter() *router.Router {
	tokens := auth.NewTokenService("inspect")
	catalog := &services.CatalogService{}
	gql := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotImplemented) }

	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Auth:    controllers.NewAuthController(&services.AuthService{}),
		Product: controllers.NewProductController(catalog),
		Order:   controllers.NewOrderController(&services.OrderService{}),
		GraphQL: gql,
		Tokens:  tokens,
	})
	return r
}
